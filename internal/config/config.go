// Package config loads runtime settings from MINES_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/minesweeper-go/internal/model"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// Config holds all runtime settings
type Config struct {
	GridSize  int `env:"MINES_GRID_SIZE" envDefault:"9"`
	MineCount int `env:"MINES_MINE_COUNT" envDefault:"10"`

	// Seed makes mine layouts reproducible when set
	Seed *uint64 `env:"MINES_SEED"`

	StorageType string `env:"MINES_STORAGE_TYPE" envDefault:"file"`

	// File storage
	SaveDir    string `env:"MINES_SAVE_DIR" envDefault:"saves"`
	SaveFile   string `env:"MINES_SAVE_FILE" envDefault:"saved_game.yaml"`
	ScoresFile string `env:"MINES_SCORES_FILE" envDefault:"high_scores.yaml"`

	// Redis storage
	RedisURL       string `env:"MINES_REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisNamespace string `env:"MINES_REDIS_NAMESPACE" envDefault:"default"`

	// SQLite storage
	SQLitePath string `env:"MINES_SQLITE_PATH" envDefault:"minesweeper.db"`

	LogLevel string `env:"MINES_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// LoadFromEnvironment reads the configuration from the given variables
// instead of the process environment
func LoadFromEnvironment(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Validate rejects settings that cannot start a game
func (c *Config) Validate() error {
	if c.GridSize < 1 {
		return fmt.Errorf("%w: grid size %d must be at least 1", model.ErrInvalidConfiguration, c.GridSize)
	}
	if c.MineCount < 0 || c.MineCount >= c.GridSize*c.GridSize {
		return fmt.Errorf("%w: %d mines on a %dx%d grid", model.ErrInvalidConfiguration, c.MineCount, c.GridSize, c.GridSize)
	}

	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeFile:
		if strings.TrimSpace(c.SaveDir) == "" || strings.TrimSpace(c.SaveFile) == "" || strings.TrimSpace(c.ScoresFile) == "" {
			return fmt.Errorf("%w: file storage needs a save dir, save file and scores file", model.ErrInvalidConfiguration)
		}
		if c.SaveFile == c.ScoresFile {
			return fmt.Errorf("%w: save file and scores file must differ", model.ErrInvalidConfiguration)
		}
	case StorageTypeRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return fmt.Errorf("%w: MINES_REDIS_URL required when storage type is redis", model.ErrInvalidConfiguration)
		}
	case StorageTypeSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			return fmt.Errorf("%w: MINES_SQLITE_PATH required when storage type is sqlite", model.ErrInvalidConfiguration)
		}
	default:
		return fmt.Errorf("%w: unknown storage type %q", model.ErrInvalidConfiguration, c.StorageType)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel (debug, info, warn, error)
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", model.ErrInvalidConfiguration, c.LogLevel)
	}
	return level, nil
}
