package highscore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	for _, name := range []string{"highscores.json", "highscores.txt"} {
		fs := NewFileStore(filepath.Join(t.TempDir(), name))
		list, err := fs.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, list)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	list := []Entry{{80, "Ann"}, {60, "Bob; the builder"}, {60, "Cy"}, {20, "Dee Dee"}}
	for _, name := range []string{"highscores.json", "scores.txt", "nested/dir/scores.csv"} {
		t.Run(name, func(t *testing.T) {
			fs := NewFileStore(filepath.Join(t.TempDir(), name))
			require.NoError(t, fs.Save(context.Background(), list))

			got, err := fs.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, list, got)

			entries, err := os.ReadDir(filepath.Dir(fs.Path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary files must be cleaned up")
		})
	}
}

func TestFileStoreJSONFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.json")
	fs := NewFileStore(path)
	require.NoError(t, fs.Save(context.Background(), []Entry{{80, "Ann"}, {40, "Bob"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[["80","Ann"],["40","Bob"]]`, string(data))
}

func TestFileStoreReadsUnsortedAndNumericScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.json")
	require.NoError(t, os.WriteFile(path, []byte(`[["10","Low"],[90,"High"]]`), 0o644))

	got, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Entry{{90, "High"}, {10, "Low"}}, got)
}

func TestFileStoreLineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.txt")
	require.NoError(t, os.WriteFile(path, []byte("30;Ann\n\n50;Bob\n"), 0o644))

	got, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Entry{{50, "Bob"}, {30, "Ann"}}, got)
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "bad.json")
	linePath := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(jsonPath, []byte("not json"), 0o644))
	require.NoError(t, os.WriteFile(linePath, []byte("forty;Ann\n"), 0o644))

	_, err := NewFileStore(jsonPath).Load(context.Background())
	assert.Error(t, err)
	_, err = NewFileStore(linePath).Load(context.Background())
	assert.Error(t, err)
}

func TestFileStoreSaveKeepsOldListOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "highscores.json")
	fs := NewFileStore(path)
	require.NoError(t, fs.Save(context.Background(), []Entry{{10, "Ann"}}))

	// A directory where the rename target should go makes the rename fail.
	bad := NewFileStore(filepath.Join(dir, "sub"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "child"), 0o755))
	assert.Error(t, bad.Save(context.Background(), []Entry{{20, "Bob"}}))

	got, err := fs.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Entry{{10, "Ann"}}, got)
}
