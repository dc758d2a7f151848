package words

import (
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPicksOneUppercaseWordPerLine(t *testing.T) {
	path := writeWordFile(t, "cat,dog\nhouse, mouse \n\n# comment\n")
	rng := rand.New(rand.NewPCG(1, 2))

	got, err := Load(path, rng)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Contains(t, []string{"CAT", "DOG"}, got[0])
	assert.Contains(t, []string{"HOUSE", "MOUSE"}, got[1])
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")

	_, err := Load(path, rand.New(rand.NewPCG(1, 2)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, path, le.Path)
	assert.Contains(t, err.Error(), path)
}

func TestGroupsEmptyFile(t *testing.T) {
	path := writeWordFile(t, "\n , ,\n# only a comment\n")

	_, err := Groups(path)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestGroupsEmbeddedDefault(t *testing.T) {
	groups, err := Groups("")
	require.NoError(t, err)
	assert.NotEmpty(t, groups)
	for _, g := range groups {
		assert.NotEmpty(t, g)
		for _, w := range g {
			assert.Equal(t, strings.TrimSpace(w), w)
		}
	}
}

func TestSampleIsDeterministicForSeed(t *testing.T) {
	groups := [][]string{{"a", "b", "c"}, {"d", "e"}, {"f"}}

	first := Sample(groups, rand.New(rand.NewPCG(7, 7)))
	second := Sample(groups, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, first, second)
	assert.Equal(t, "F", first[2])
}

func TestSampleCoversAllSynonyms(t *testing.T) {
	groups := [][]string{{"cat", "dog"}}
	rng := rand.New(rand.NewPCG(3, 4))
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Sample(groups, rng)[0]] = true
	}
	assert.True(t, seen["CAT"])
	assert.True(t, seen["DOG"])
}
