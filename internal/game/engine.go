// internal/game/engine.go
//
// Game engine for a Scrambled Words session.
// Responsibilities:
//   - Create sessions from a sampled word list (scrambling every word).
//   - Start levels in order and run each level's guess loop.
//   - Hint and guess-budget bookkeeping, level time capture.
//   - Reset a session for a replay.
//
// Level state transitions:
//   - exact match (case-insensitive)     → solved, time recorded.
//   - "H" with hint available, len > 4    → display replaced by a hint, no guess used.
//   - "H" otherwise                       → ErrHintUsed / ErrHintTooShort, no change.
//   - anything else                       → one guess used; 0 left → exhausted, time 0.
//
// Every finished level appends exactly one entry to Session.Times.

package game

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scrambled-words/internal/scramble"
)

var (
	ErrHintUsed      = errors.New("hint already used in this game")
	ErrHintTooShort  = scramble.ErrHintTooShort
	ErrLevelFinished = errors.New("level finished")
	ErrNoLevel       = errors.New("no level in progress")
	ErrNoMoreLevels  = errors.New("no more levels")
)

// NewSession scrambles words and returns a session ready for its first level.
func NewSession(words []string, sc *scramble.Scrambler, maxGuesses int) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		MaxGuesses: maxGuesses,
		Now:        time.Now,
		scrambler:  sc,
	}
	s.Reset(words)
	return s
}

// Reset starts a new round with words: fresh scrambles, level index zeroed,
// times cleared and the hint restored.
func (s *Session) Reset(words []string) {
	s.Words = append([]string(nil), words...)
	s.Scrambled = s.scrambler.All(s.Words)
	s.Times = []float64{}
	s.Index = 0
	s.HintAvailable = true
	s.Continue = false
	s.current = nil
	log.Debug().Str("session", s.ID).Int("levels", len(s.Words)).Msg("session reset")
}

// Levels returns the number of levels in the session.
func (s *Session) Levels() int { return len(s.Words) }

// Done reports whether every level has been started and finished.
func (s *Session) Done() bool {
	return s.Index >= s.Levels() && (s.current == nil || s.current.State.Finished())
}

// Current returns the level in progress, or nil.
func (s *Session) Current() *Level { return s.current }

// Start begins the next level and starts its clock.
func (s *Session) Start() (*Level, error) {
	if s.current != nil && !s.current.State.Finished() {
		return nil, errors.New("level still in progress")
	}
	if s.Index >= s.Levels() {
		return nil, ErrNoMoreLevels
	}
	s.Index++
	s.current = &Level{
		Number:    s.Index,
		Word:      s.Words[s.Index-1],
		Display:   s.Scrambled[s.Index-1],
		Remaining: s.MaxGuesses,
		State:     AwaitingGuess,
		Started:   s.Now(),
	}
	log.Debug().Str("session", s.ID).Int("level", s.Index).Msg("level started")
	return s.current, nil
}

// Guess applies one line of player input to the level in progress.
func (s *Session) Guess(input string) (Outcome, error) {
	l := s.current
	if l == nil {
		return Outcome{}, ErrNoLevel
	}
	if l.State.Finished() {
		return l.outcome(), ErrLevelFinished
	}

	guess := strings.ToUpper(strings.TrimSpace(input))
	switch {
	case guess == l.Word:
		l.State = Solved
		l.Seconds = elapsed(l.Started, s.Now())
		s.Times = append(s.Times, l.Seconds)
		log.Debug().Str("session", s.ID).Int("level", l.Number).Float64("seconds", l.Seconds).Msg("level solved")

	case guess == HintToken:
		if !s.HintAvailable {
			return l.outcome(), ErrHintUsed
		}
		hint, err := s.scrambler.Hint(l.Word)
		if err != nil {
			return l.outcome(), err
		}
		l.Display = hint
		s.Scrambled[l.Number-1] = hint
		s.HintAvailable = false
		log.Debug().Str("session", s.ID).Int("level", l.Number).Msg("hint used")
		out := l.outcome()
		out.HintUsed = true
		return out, nil

	default:
		l.Remaining--
		if l.Remaining <= 0 {
			l.Remaining = 0
			l.State = Exhausted
			l.Seconds = 0
			s.Times = append(s.Times, 0)
			log.Debug().Str("session", s.ID).Int("level", l.Number).Msg("level exhausted")
		}
	}
	return l.outcome(), nil
}

func (l *Level) outcome() Outcome {
	return Outcome{
		State:     l.State,
		Remaining: l.Remaining,
		Display:   l.Display,
		Seconds:   l.Seconds,
	}
}

// elapsed returns the seconds between start and end rounded to one decimal.
// A solve never records 0, which is reserved for unsolved levels.
func elapsed(start, end time.Time) float64 {
	secs := math.Round(end.Sub(start).Seconds()*10) / 10
	if secs <= 0 {
		return 0.1
	}
	return secs
}
