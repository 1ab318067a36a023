package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjack/internal/logging"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("BLACKJACK_DECKS", "")
	t.Setenv("BLACKJACK_SEED", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultDecks, cfg.Decks)
	assert.False(t, cfg.HasSeed)
	assert.Equal(t, logging.INFO, cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BLACKJACK_DECKS", "6")
	t.Setenv("BLACKJACK_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Decks)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, logging.DEBUG, cfg.LogLevel)
	assert.False(t, cfg.IsDevelopment())
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{"zero decks", "BLACKJACK_DECKS", "0"},
		{"non-numeric decks", "BLACKJACK_DECKS", "two"},
		{"non-numeric seed", "BLACKJACK_SEED", "abc"},
		{"unknown log level", "LOG_LEVEL", "loud"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("BLACKJACK_DECKS", "")
			t.Setenv("BLACKJACK_SEED", "")
			t.Setenv("LOG_LEVEL", "")
			t.Setenv(tc.key, tc.val)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
