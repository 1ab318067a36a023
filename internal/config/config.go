package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/fadedpez/blackjack/internal/logging"
)

// DefaultDecks is the shoe size used when BLACKJACK_DECKS is not set
const DefaultDecks = 1

// Config holds all configuration for the application
type Config struct {
	// Table configuration
	Decks   int
	Seed    int64
	HasSeed bool

	// Logging
	LogLevel logging.Level

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current process environment without touching .env
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	decks, err := strconv.Atoi(getEnvWithDefault("BLACKJACK_DECKS", strconv.Itoa(DefaultDecks)))
	if err != nil {
		return nil, fmt.Errorf("BLACKJACK_DECKS must be an integer: %w", err)
	}
	cfg.Decks = decks

	if raw := os.Getenv("BLACKJACK_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("BLACKJACK_SEED must be an integer: %w", err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	level, err := logging.ParseLevel(getEnvWithDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration describes a playable table
func (c *Config) Validate() error {
	if c.Decks < 1 {
		return fmt.Errorf("BLACKJACK_DECKS must be at least 1, got %d", c.Decks)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
