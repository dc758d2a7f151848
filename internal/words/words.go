// internal/words/words.go
//
// Word list loading for the game.
//
// File format:
//   - One line per level.
//   - Each line is a comma-separated group of synonyms, e.g. "house,home".
//   - Blank lines and lines starting with '#' are ignored.
//
// For every game one synonym is picked per group at random and uppercased.
// Loading is split in two steps so a replay can draw a fresh sample without
// reading the file again:
//   Groups(path)        -> [][]string   (file or embedded default)
//   Sample(groups, rng) -> []string     (one uppercase word per group)
//
// A missing word file is fatal for the game and is reported as a *LoadError
// wrapping ErrNotFound.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/robalobadob/scrambled-words/assets"
)

var (
	// ErrNotFound is wrapped by LoadError when the word file does not exist.
	ErrNotFound = errors.New("word file not found")
	// ErrEmpty is returned when a word list has no usable lines.
	ErrEmpty = errors.New("word list is empty")
)

// LoadError describes a failure to read the word file at Path.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("word file %s could not be read: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads the word file at path and returns one random uppercase word per
// line. An empty path selects the embedded default list.
func Load(path string, rng *rand.Rand) ([]string, error) {
	groups, err := Groups(path)
	if err != nil {
		return nil, err
	}
	return Sample(groups, rng), nil
}

// Groups returns the synonym groups of the word file at path, or of the
// embedded default list when path is empty.
func Groups(path string) ([][]string, error) {
	if path == "" {
		lines, err := assets.WordLines()
		if err != nil {
			return nil, &LoadError{Path: assets.DefaultWordFile, Err: err}
		}
		return toGroups(assets.DefaultWordFile, lines)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: ErrNotFound}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return toGroups(path, lines)
}

// Sample picks one synonym per group uniformly at random and uppercases it.
func Sample(groups [][]string, rng *rand.Rand) []string {
	return lo.Map(groups, func(group []string, _ int) string {
		return strings.ToUpper(group[rng.IntN(len(group))])
	})
}

// readLines returns the trimmed, non-blank, non-comment lines of r.
func readLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// toGroups splits each line on commas, dropping empty synonyms.
func toGroups(path string, lines []string) ([][]string, error) {
	groups := lo.FilterMap(lines, func(line string, _ int) ([]string, bool) {
		group := lo.Compact(lo.Map(strings.Split(line, ","), func(w string, _ int) string {
			return strings.TrimSpace(w)
		}))
		return group, len(group) > 0
	})
	if len(groups) == 0 {
		return nil, &LoadError{Path: path, Err: ErrEmpty}
	}
	log.Debug().Str("path", path).Int("groups", len(groups)).Msg("word list loaded")
	return groups, nil
}
