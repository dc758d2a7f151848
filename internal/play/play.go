// internal/play/play.go
//
// Game loop for Scrambled Words.
// Sequence per round:
//   intro (optional) → for each level: countdown pause → level guess loop
//   → results table → highscore check / name entry → ranked list
//   → replay prompt (y/yes/n/no) → reset and repeat, or stop.
//
// The loop is single-threaded. It ends when the player declines a replay,
// the input closes, or ctx is cancelled.

package play

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scrambled-words/internal/config"
	"github.com/robalobadob/scrambled-words/internal/console"
	"github.com/robalobadob/scrambled-words/internal/game"
	"github.com/robalobadob/scrambled-words/internal/highscore"
	"github.com/robalobadob/scrambled-words/internal/scramble"
	"github.com/robalobadob/scrambled-words/internal/score"
	"github.com/robalobadob/scrambled-words/internal/words"
)

// ErrNotEnoughWords is returned when more levels are configured than the
// word list has lines.
var ErrNotEnoughWords = errors.New("not enough word groups for the configured levels")

var praise = []string{"Well done!", "Great!", "Awesome!"}

// Option customises a Game.
type Option func(*Game)

// WithClock replaces the level clock.
func WithClock(now func() time.Time) Option {
	return func(g *Game) { g.session.Now = now }
}

// Game runs rounds of the word game against a console and a highscore board.
type Game struct {
	cfg     config.Config
	groups  [][]string
	board   *highscore.Board
	con     *console.Console
	rng     *rand.Rand
	session *game.Session
	last    score.Result
}

// New prepares a game over the given word groups.
func New(cfg config.Config, groups [][]string, board *highscore.Board, con *console.Console, rng *rand.Rand, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Levels > len(groups) {
		return nil, fmt.Errorf("%w: %d groups for %d levels", ErrNotEnoughWords, len(groups), cfg.Levels)
	}
	if cfg.Levels > 0 {
		groups = groups[:cfg.Levels]
	}
	g := &Game{
		cfg:    cfg,
		groups: groups,
		board:  board,
		con:    con,
		rng:    rng,
	}
	g.session = game.NewSession(words.Sample(groups, rng), scramble.New(rng), cfg.MaxGuesses)
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Session exposes the current session.
func (g *Game) Session() *game.Session { return g.session }

// Last returns the score of the most recently finished round.
func (g *Game) Last() score.Result { return g.last }

// Reset draws a new word sample and starts the session over.
func (g *Game) Reset() {
	g.session.Reset(words.Sample(g.groups, g.rng))
	g.last = score.Result{}
}

// Run plays rounds until the player stops.
func (g *Game) Run(ctx context.Context) error {
	g.intro()
	for {
		if err := g.Round(ctx); err != nil {
			return err
		}
		again, err := g.con.Confirm(ctx, "\nDo you want to play again? (y/n)")
		if err != nil {
			return err
		}
		g.session.Continue = again
		if !again {
			g.con.Println("\nThanks for playing SCRAMBLED WORDS!")
			return nil
		}
		g.Reset()
	}
}

// Round plays every level of the session, then shows the score and highscores.
func (g *Game) Round(ctx context.Context) error {
	log.Info().Str("session", g.session.ID).Int("levels", g.session.Levels()).Msg("round started")
	for !g.session.Done() {
		if err := g.playLevel(ctx); err != nil {
			return err
		}
	}
	g.last = score.Compute(g.session.Times, g.cfg.TimeLimit)
	log.Info().Str("session", g.session.ID).Int("score", g.last.Total).Msg("round finished")

	g.con.Pause(g.cfg.Pace)
	g.showScore(g.last)
	return g.highscores(ctx, g.last.Total)
}

func (g *Game) intro() {
	g.con.Println("Welcome to SCRAMBLED WORDS.")
	if !g.cfg.ShowInstructions {
		return
	}
	g.con.Println("\nEarn points for each word you can unscramble.")
	g.con.Printf("If you can do it in %g seconds or less,\n", g.cfg.TimeLimit)
	g.con.Printf("you receive bonus points. Enter '%s' to see a hint.\n", game.HintToken)
	g.con.Println("\nDo your best and try to enter the highscore list!")
	g.con.Pause(g.cfg.Pace * 3 / 2)
}

func (g *Game) playLevel(ctx context.Context) error {
	g.con.Printf("\nGet ready for level %d ...\n", g.session.Index+1)
	g.con.Pause(g.cfg.Pace)

	l, err := g.session.Start()
	if err != nil {
		return err
	}
	g.con.Printf("\n== Level %d of %d (%d points) ==\n", l.Number, g.session.Levels(), l.Number*score.PointsPerLevel)

	for !l.State.Finished() {
		g.con.Printf("\n%s\n", l.Display)
		g.con.Printf("Remaining guesses: %d\n", l.Remaining)

		line, err := g.con.Prompt(ctx)
		if err != nil {
			return err
		}
		out, err := g.session.Guess(line)
		switch {
		case errors.Is(err, game.ErrHintUsed):
			g.con.Println("You already had one hint in this game.")
		case errors.Is(err, game.ErrHintTooShort):
			g.con.Println("This word is too short to use the hint option.")
			g.con.Println("Try to unscramble it on your own.")
		case err != nil:
			return err
		case out.HintUsed:
			g.con.Println("You requested a hint. Here it comes:")
		case out.State == game.AwaitingGuess:
			g.con.Println("\nTry again.")
		}
	}

	g.con.Printf("\nThe word was: %s\n", l.Word)
	if l.State == game.Solved {
		g.con.Printf("%s You finished this level in %.1f seconds.\n", praise[g.rng.IntN(len(praise))], l.Seconds)
	} else {
		g.con.Println("You didn't guess this one.")
	}
	return nil
}

func (g *Game) showScore(r score.Result) {
	g.con.Println("\n== Results: ==")
	g.con.Println("\nLvl\tPts\tBonus\tTime (sec)")
	for _, l := range r.Levels {
		t := "-"
		if l.Solved() {
			t = fmt.Sprintf("%.1f", l.Seconds)
		}
		g.con.Printf("%d\t%d\t%d\t%s\n", l.Number, l.Points, l.Bonus, t)
	}
	g.con.Printf("\nYour total score: %d\n", r.Total)
}

func (g *Game) highscores(ctx context.Context, total int) error {
	ok, err := g.board.Qualifies(ctx, total)
	if err != nil {
		return err
	}
	var list []highscore.Entry
	if ok {
		g.con.Println("\n** NEW HIGHSCORE **")
		g.con.Println("Please enter your name:")
		name, err := g.con.ReadName(ctx)
		if err != nil {
			return err
		}
		g.con.Printf("\nCongratulations, %s!\n", name)
		if _, list, err = g.board.Submit(ctx, total, name); err != nil {
			return err
		}
	} else if list, err = g.board.List(ctx); err != nil {
		return err
	}

	g.con.Pause(g.cfg.Pace)
	g.con.Printf("\n== Highscores: ==\n\n")
	if len(list) == 0 {
		g.con.Println("No entries yet.")
		g.con.Println("Start a new game and achieve the first highscore!")
		return nil
	}
	for _, e := range list {
		g.con.Printf("%d\t%s\n", e.Score, e.Name)
	}
	return nil
}
