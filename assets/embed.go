// assets/embed.go
//
// Embedded default word list. Used when no word file path is configured,
// so the game can always start from a clean checkout.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed words_en.txt
var FS embed.FS

// DefaultWordFile is the name of the embedded word list.
const DefaultWordFile = "words_en.txt"

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// WordLines returns the raw synonym lines of the embedded word list.
func WordLines() ([]string, error) {
	return readLines(DefaultWordFile)
}
