// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - State:   lifecycle of a single level (awaiting/solved/exhausted).
//   - Level:   one word-guessing round.
//   - Outcome: what a single input did to a level.
//   - Session: state of a whole game (all levels, times, hint flag).

package game

import (
	"time"

	"github.com/robalobadob/scrambled-words/internal/scramble"
)

// State represents the lifecycle of a level.
//   - "awaiting":  the level accepts guesses.
//   - "solved":    the word was guessed; Seconds holds the solve time.
//   - "exhausted": the guess budget ran out; Seconds is 0.
type State string

const (
	AwaitingGuess State = "awaiting"
	Solved        State = "solved"
	Exhausted     State = "exhausted"
)

// HintToken is the input that requests a hint.
const HintToken = "H"

// Finished reports whether s is a terminal state.
func (s State) Finished() bool { return s == Solved || s == Exhausted }

// Level holds the state of one word-guessing round.
type Level struct {
	Number    int       // 1-based level number.
	Word      string    // The solution (uppercase).
	Display   string    // The scrambled word currently shown to the player.
	Remaining int       // Guesses left.
	State     State     // Current lifecycle state.
	Seconds   float64   // Solve time rounded to 0.1s; 0 means unsolved.
	Started   time.Time // When the level clock started.
}

// Outcome reports the effect of one input on a level.
type Outcome struct {
	State     State
	Remaining int
	Display   string
	Seconds   float64
	HintUsed  bool // True if this input revealed the hint.
}

// Session aggregates the state of one game.
type Session struct {
	ID            string    // Run identifier, used for log correlation.
	Words         []string  // One uppercase word per level.
	Scrambled     []string  // Scrambled form of each word, in level order.
	Times         []float64 // One entry per finished level; 0 = unsolved.
	Index         int       // Number of levels started so far.
	HintAvailable bool      // One hint per game, shared by all levels.
	Continue      bool      // Whether the player asked for another round.
	MaxGuesses    int       // Guess budget per level.

	// Now is the level clock. Defaults to time.Now.
	Now func() time.Time

	scrambler *scramble.Scrambler
	current   *Level
}
