// internal/config/config.go
//
// Runtime configuration, read once at startup from the environment
// (optionally seeded from a .env file by the caller via godotenv).
//
// Environment variables (defaults in brackets):
//   SCRAMBLE_INSTRUCTIONS    show instructions before the first level [true]
//   SCRAMBLE_LEVELS          levels per game, 0 = one per word-file line [0]
//   SCRAMBLE_MAX_GUESSES     guesses per level [2]
//   SCRAMBLE_TIME_LIMIT      bonus time limit in seconds [10]
//   SCRAMBLE_WORD_FILE       word list path, empty = embedded list []
//   SCRAMBLE_HIGHSCORE_FILE  highscore file (.json or score;name lines) [highscores.json]
//   SCRAMBLE_HIGHSCORE_DB    SQLite highscore database; overrides the file when set []
//   SCRAMBLE_PACE            pause between game phases [4s]
//   SCRAMBLE_SEED            random seed, 0 = time based [0]
//   SCRAMBLE_DAILY           derive the seed from today's date [false]
//   SCRAMBLE_DAILY_SALT      salt for the daily seed [local_dev_salt]
//   SCRAMBLE_HTTP_ADDR       listen address for the read-only leaderboard []
//   LOG_LEVEL                zerolog level [warn]
//
// Invalid values fall back to the default with a warning.

package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds every tunable of a game.
type Config struct {
	ShowInstructions bool
	Levels           int
	MaxGuesses       int
	TimeLimit        float64 // seconds
	WordFile         string
	HighscoreFile    string
	HighscoreDB      string
	Pace             time.Duration
	Seed             uint64
	Daily            bool
	DailySalt        string
	HTTPAddr         string
	LogLevel         string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ShowInstructions: true,
		Levels:           0,
		MaxGuesses:       2,
		TimeLimit:        10,
		HighscoreFile:    "highscores.json",
		Pace:             4 * time.Second,
		DailySalt:        "local_dev_salt",
		LogLevel:         "warn",
	}
}

// Load reads the configuration from the environment.
func Load() Config {
	d := Default()
	return Config{
		ShowInstructions: getEnvBool("SCRAMBLE_INSTRUCTIONS", d.ShowInstructions),
		Levels:           getEnvInt("SCRAMBLE_LEVELS", d.Levels),
		MaxGuesses:       getEnvInt("SCRAMBLE_MAX_GUESSES", d.MaxGuesses),
		TimeLimit:        getEnvFloat("SCRAMBLE_TIME_LIMIT", d.TimeLimit),
		WordFile:         getEnv("SCRAMBLE_WORD_FILE", d.WordFile),
		HighscoreFile:    getEnv("SCRAMBLE_HIGHSCORE_FILE", d.HighscoreFile),
		HighscoreDB:      getEnv("SCRAMBLE_HIGHSCORE_DB", d.HighscoreDB),
		Pace:             getEnvDuration("SCRAMBLE_PACE", d.Pace),
		Seed:             uint64(getEnvInt64("SCRAMBLE_SEED", int64(d.Seed))),
		Daily:            getEnvBool("SCRAMBLE_DAILY", d.Daily),
		DailySalt:        getEnv("SCRAMBLE_DAILY_SALT", d.DailySalt),
		HTTPAddr:         getEnv("SCRAMBLE_HTTP_ADDR", d.HTTPAddr),
		LogLevel:         getEnv("LOG_LEVEL", d.LogLevel),
	}
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.MaxGuesses < 1:
		return errors.New("config: max guesses must be at least 1")
	case c.TimeLimit <= 0:
		return errors.New("config: time limit must be positive")
	case c.Levels < 0:
		return errors.New("config: levels must not be negative")
	case c.Pace < 0:
		return errors.New("config: pace must not be negative")
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Bool("default", def).Msg("invalid bool, using default")
		return def
	}
	return b
}

func getEnvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Int("default", def).Msg("invalid int, using default")
		return def
	}
	return i
}

func getEnvInt64(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Int64("default", def).Msg("invalid int, using default")
		return def
	}
	return i
}

func getEnvFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Float64("default", def).Msg("invalid number, using default")
		return def
	}
	return f
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Dur("default", def).Msg("invalid duration, using default")
		return def
	}
	return d
}
