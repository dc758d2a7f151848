package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/scrambled-words/internal/config"
	"github.com/robalobadob/scrambled-words/internal/console"
	"github.com/robalobadob/scrambled-words/internal/daily"
	"github.com/robalobadob/scrambled-words/internal/highscore"
	"github.com/robalobadob/scrambled-words/internal/httpserver"
	"github.com/robalobadob/scrambled-words/internal/play"
	"github.com/robalobadob/scrambled-words/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	groups, err := words.Groups(cfg.WordFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.WordFile).Msg("failed to load word list")
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open highscore store")
	}
	defer closeStore()
	board := highscore.NewBoard(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HTTPAddr != "" {
		srv := httpserver.New(board)
		go func() {
			if err := srv.Start(ctx, cfg.HTTPAddr); err != nil {
				log.Error().Err(err).Msg("highscore server exited")
			}
		}()
	}

	g, err := play.New(cfg, groups, board, console.New(os.Stdin, os.Stdout), newRand(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	if err := g.Run(ctx); err != nil && !errors.Is(err, console.ErrInputClosed) && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// openStore selects the SQLite store when a database is configured,
// otherwise the highscore file.
func openStore(cfg config.Config) (highscore.Store, func(), error) {
	if cfg.HighscoreDB != "" {
		s, err := highscore.OpenSQLStore(cfg.HighscoreDB)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}
	return highscore.NewFileStore(cfg.HighscoreFile), func() {}, nil
}

// newRand seeds the game's random source from today's date in daily mode,
// otherwise from the configured seed, falling back to the clock.
func newRand(cfg config.Config) *rand.Rand {
	seed := cfg.Seed
	switch {
	case cfg.Daily:
		seed = daily.Seed(time.Now(), cfg.DailySalt)
	case seed == 0:
		seed = uint64(time.Now().UnixNano())
	}
	log.Debug().Uint64("seed", seed).Msg("random source")
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
