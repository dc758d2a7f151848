package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"SCRAMBLE_INSTRUCTIONS", "SCRAMBLE_LEVELS", "SCRAMBLE_WORD_FILE", "SCRAMBLE_MAX_GUESSES",
		"SCRAMBLE_TIME_LIMIT", "SCRAMBLE_HIGHSCORE_FILE", "SCRAMBLE_HIGHSCORE_DB",
		"SCRAMBLE_PACE", "SCRAMBLE_SEED", "SCRAMBLE_HTTP_ADDR", "LOG_LEVEL",
		"SCRAMBLE_DAILY", "SCRAMBLE_DAILY_SALT",
	} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SCRAMBLE_INSTRUCTIONS", "false")
	t.Setenv("SCRAMBLE_LEVELS", "3")
	t.Setenv("SCRAMBLE_MAX_GUESSES", "5")
	t.Setenv("SCRAMBLE_TIME_LIMIT", "7.5")
	t.Setenv("SCRAMBLE_WORD_FILE", "words_de.txt")
	t.Setenv("SCRAMBLE_HIGHSCORE_FILE", "scores.txt")
	t.Setenv("SCRAMBLE_HIGHSCORE_DB", "data/scores.db")
	t.Setenv("SCRAMBLE_PACE", "250ms")
	t.Setenv("SCRAMBLE_SEED", "99")
	t.Setenv("SCRAMBLE_HTTP_ADDR", ":8088")
	t.Setenv("SCRAMBLE_DAILY", "1")
	t.Setenv("SCRAMBLE_DAILY_SALT", "pepper")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.False(t, cfg.ShowInstructions)
	assert.Equal(t, 3, cfg.Levels)
	assert.Equal(t, 5, cfg.MaxGuesses)
	assert.Equal(t, 7.5, cfg.TimeLimit)
	assert.Equal(t, "words_de.txt", cfg.WordFile)
	assert.Equal(t, "scores.txt", cfg.HighscoreFile)
	assert.Equal(t, "data/scores.db", cfg.HighscoreDB)
	assert.Equal(t, 250*time.Millisecond, cfg.Pace)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, ":8088", cfg.HTTPAddr)
	assert.True(t, cfg.Daily)
	assert.Equal(t, "pepper", cfg.DailySalt)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SCRAMBLE_INSTRUCTIONS", "sometimes")
	t.Setenv("SCRAMBLE_MAX_GUESSES", "many")
	t.Setenv("SCRAMBLE_TIME_LIMIT", "soon")
	t.Setenv("SCRAMBLE_PACE", "slow")
	t.Setenv("SCRAMBLE_SEED", "x")

	cfg := Load()
	d := Default()
	assert.Equal(t, d.ShowInstructions, cfg.ShowInstructions)
	assert.Equal(t, d.MaxGuesses, cfg.MaxGuesses)
	assert.Equal(t, d.TimeLimit, cfg.TimeLimit)
	assert.Equal(t, d.Pace, cfg.Pace)
	assert.Equal(t, d.Seed, cfg.Seed)
}

func TestValidate(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.MaxGuesses = 0 },
		func(c *Config) { c.TimeLimit = 0 },
		func(c *Config) { c.Levels = -1 },
		func(c *Config) { c.Pace = -time.Second },
	}
	for i, mutate := range bad {
		cfg := Default()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
	}
}
