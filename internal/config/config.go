// Package config loads simulator settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/jason-s-yu/pairs/internal/game"
	"github.com/sirupsen/logrus"
)

// Config controls the board size and run length of the pairs simulator.
type Config struct {
	Rows     int    `env:"PAIRS_ROWS"      envDefault:"4"`
	Cols     int    `env:"PAIRS_COLS"      envDefault:"4"`
	Games    int    `env:"PAIRS_GAMES"     envDefault:"10"`
	Seed     int64  `env:"PAIRS_SEED"      envDefault:"0"` // 0 seeds from the clock
	LogLevel string `env:"PAIRS_LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings that cannot produce a playable board.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.Rows > game.MaxSide || c.Cols > game.MaxSide {
		return fmt.Errorf("board must be at most %dx%d, got %dx%d", game.MaxSide, game.MaxSide, c.Rows, c.Cols)
	}
	if c.Rows*c.Cols%2 != 0 {
		return fmt.Errorf("board must have an even number of cells, got %dx%d", c.Rows, c.Cols)
	}
	if c.Games < 1 {
		return errors.New("games must be positive")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the configured logrus level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
