// internal/highscore/file.go
//
// File-backed Store.
//
// Two encodings, chosen by file extension:
//   - ".json": a list of [score, name] pairs with the score written as text,
//              e.g. [["80","Ann"],["40","Bob"]].
//   - other:   one "score;name" line per entry.
//
// Save writes to a temporary file in the target directory and renames it over
// the old list, so an interrupted write leaves the previous list intact.

package highscore

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// FileStore persists a highscore list to a single file.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) isJSON() bool {
	return strings.EqualFold(filepath.Ext(f.Path), ".json")
}

// Load reads the list. A missing file yields an empty list.
func (f *FileStore) Load(ctx context.Context) ([]Entry, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", f.Path).Msg("no highscore file yet")
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	var list []Entry
	if f.isJSON() {
		list, err = decodeJSON(data)
	} else {
		list, err = decodeLines(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	return Normalize(list), nil
}

// Save atomically replaces the file with list.
func (f *FileStore) Save(ctx context.Context, list []Entry) error {
	var (
		data []byte
		err  error
	)
	if f.isJSON() {
		data, err = encodeJSON(list)
	} else {
		data = encodeLines(list)
	}
	if err != nil {
		return fmt.Errorf("encode highscores: %w", err)
	}

	dir := filepath.Dir(f.Path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("rename to %s: %w", f.Path, err)
	}
	log.Debug().Str("path", f.Path).Int("entries", len(list)).Msg("highscores saved")
	return nil
}

func encodeJSON(list []Entry) ([]byte, error) {
	pairs := make([][2]string, 0, len(list))
	for _, e := range list {
		pairs = append(pairs, [2]string{strconv.Itoa(e.Score), e.Name})
	}
	return json.Marshal(pairs)
}

func decodeJSON(data []byte) ([]Entry, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Entry{}, nil
	}
	var pairs [][2]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(pairs))
	for i, p := range pairs {
		score, err := strconv.Atoi(strings.Trim(string(p[0]), `"`))
		if err != nil {
			return nil, fmt.Errorf("entry %d: bad score %s", i, p[0])
		}
		var name string
		if err := json.Unmarshal(p[1], &name); err != nil {
			return nil, fmt.Errorf("entry %d: bad name: %w", i, err)
		}
		out = append(out, Entry{Score: score, Name: name})
	}
	return out, nil
}

func encodeLines(list []Entry) []byte {
	var b bytes.Buffer
	for _, e := range list {
		fmt.Fprintf(&b, "%d;%s\n", e.Score, e.Name)
	}
	return b.Bytes()
}

func decodeLines(data []byte) ([]Entry, error) {
	out := []Entry{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		scoreText, name, ok := strings.Cut(line, ";")
		if !ok {
			return nil, fmt.Errorf("line %d: missing ';'", n)
		}
		score, err := strconv.Atoi(strings.TrimSpace(scoreText))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad score %q", n, scoreText)
		}
		out = append(out, Entry{Score: score, Name: name})
	}
	return out, sc.Err()
}
