package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a parsed value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the driver settings read from the environment
type Config struct {
	// Players is the number of seats at the table
	Players int `env:"SCC_PLAYERS" envDefault:"2"`

	// Dice is the number of dice in play
	Dice int `env:"SCC_DICE" envDefault:"5"`

	// MaxRolls is the number of rolls each player gets per round
	MaxRolls int `env:"SCC_MAX_ROLLS" envDefault:"3"`

	// Rounds to play; zero asks after every round
	Rounds int `env:"SCC_ROUNDS" envDefault:"0"`

	// Seed for the dice; zero seeds from the clock
	Seed int64 `env:"SCC_SEED" envDefault:"0"`

	// Auto answers every prompt without asking
	Auto bool `env:"SCC_AUTO" envDefault:"false"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"SCC_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and parses the environment
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks ranges the engine would otherwise reject later
func (c *Config) Validate() error {
	if c.Players < 2 {
		return fmt.Errorf("%w: SCC_PLAYERS must be at least 2, got %d", ErrInvalidConfig, c.Players)
	}
	if c.Dice < 1 {
		return fmt.Errorf("%w: SCC_DICE must be at least 1, got %d", ErrInvalidConfig, c.Dice)
	}
	if c.MaxRolls < 1 {
		return fmt.Errorf("%w: SCC_MAX_ROLLS must be at least 1, got %d", ErrInvalidConfig, c.MaxRolls)
	}
	if c.Rounds < 0 {
		return fmt.Errorf("%w: SCC_ROUNDS cannot be negative, got %d", ErrInvalidConfig, c.Rounds)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel to a slog level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: SCC_LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
