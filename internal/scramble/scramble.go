// internal/scramble/scramble.go
//
// Letter permutations for the game.
//   - Scramble: full shuffle of a word, guaranteed to differ from the word.
//   - Hint:     keeps the first HintPrefix letters and shuffles the rest.
//
// A word with fewer than two distinct letters ("A", "AAAA") has no
// permutation that differs from itself; such input is returned unchanged
// instead of looping. MaxAttempts bounds the retry loop as a second guard.

package scramble

import (
	"errors"
	"math/rand/v2"

	"github.com/samber/lo"
)

const (
	// HintPrefix is the number of leading letters a hint keeps in place.
	HintPrefix = 3
	// HintMinLength is the shortest word that can be hinted.
	HintMinLength = HintPrefix + 2
	// MaxAttempts bounds the shuffle retry loop.
	MaxAttempts = 1000
)

// ErrHintTooShort is returned by Hint for words shorter than HintMinLength.
var ErrHintTooShort = errors.New("word is too short for a hint")

// Scrambler produces random permutations from an injected source.
type Scrambler struct {
	rng *rand.Rand
}

// New returns a Scrambler drawing from rng.
func New(rng *rand.Rand) *Scrambler {
	return &Scrambler{rng: rng}
}

// Scramble returns a permutation of word's letters that differs from word.
func (s *Scrambler) Scramble(word string) string {
	return string(s.shuffle([]rune(word)))
}

// All scrambles every word of words.
func (s *Scrambler) All(words []string) []string {
	return lo.Map(words, func(w string, _ int) string { return s.Scramble(w) })
}

// CanHint reports whether word is long enough for Hint.
func CanHint(word string) bool {
	return len([]rune(word)) >= HintMinLength
}

// Hint returns word with its first HintPrefix letters fixed and the remaining
// letters shuffled into a different order.
func (s *Scrambler) Hint(word string) (string, error) {
	if !CanHint(word) {
		return "", ErrHintTooShort
	}
	letters := []rune(word)
	suffix := s.shuffle(letters[HintPrefix:])
	return string(letters[:HintPrefix]) + string(suffix), nil
}

// shuffle returns a shuffled copy of letters that differs from letters,
// or an unchanged copy when no different ordering exists.
func (s *Scrambler) shuffle(letters []rune) []rune {
	out := make([]rune, len(letters))
	copy(out, letters)
	if len(lo.Uniq(letters)) < 2 {
		return out
	}
	for i := 0; i < MaxAttempts; i++ {
		s.rng.Shuffle(len(out), func(a, b int) { out[a], out[b] = out[b], out[a] })
		if string(out) != string(letters) {
			return out
		}
	}
	return out
}
