package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/minesweeper-go/internal/model"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) load(environ map[string]string) *Config {
	cfg, err := LoadFromEnvironment(environ)
	s.Require().NoError(err)
	return cfg
}

func (s *ConfigSuite) TestDefaults() {
	cfg := s.load(map[string]string{})

	s.Equal(9, cfg.GridSize)
	s.Equal(10, cfg.MineCount)
	s.Nil(cfg.Seed)
	s.Equal(StorageTypeFile, cfg.StorageType)
	s.Equal("saves", cfg.SaveDir)
	s.Equal("saved_game.yaml", cfg.SaveFile)
	s.Equal("high_scores.yaml", cfg.ScoresFile)
	s.Equal("minesweeper.db", cfg.SQLitePath)
	s.Equal("info", cfg.LogLevel)
	s.NoError(cfg.Validate())
}

func (s *ConfigSuite) TestOverrides() {
	cfg := s.load(map[string]string{
		"MINES_GRID_SIZE":    "16",
		"MINES_MINE_COUNT":   "40",
		"MINES_SEED":         "1234",
		"MINES_STORAGE_TYPE": "redis",
		"MINES_REDIS_URL":    "redis://cache:6379/2",
		"MINES_LOG_LEVEL":    "debug",
	})

	s.Equal(16, cfg.GridSize)
	s.Equal(40, cfg.MineCount)
	s.Require().NotNil(cfg.Seed)
	s.Equal(uint64(1234), *cfg.Seed)
	s.Equal("redis://cache:6379/2", cfg.RedisURL)
	s.NoError(cfg.Validate())

	level, err := cfg.SlogLevel()
	s.Require().NoError(err)
	s.Equal(slog.LevelDebug, level)
}

func (s *ConfigSuite) TestMalformedValue() {
	_, err := LoadFromEnvironment(map[string]string{"MINES_GRID_SIZE": "big"})
	s.ErrorContains(err, "parse env:")
}

func (s *ConfigSuite) TestValidateRejectsMineCounts() {
	cfg := s.load(map[string]string{"MINES_GRID_SIZE": "3", "MINES_MINE_COUNT": "9"})
	s.ErrorIs(cfg.Validate(), model.ErrInvalidConfiguration)

	cfg.MineCount = -1
	s.ErrorIs(cfg.Validate(), model.ErrInvalidConfiguration)

	cfg.MineCount = 8
	s.NoError(cfg.Validate())
}

func (s *ConfigSuite) TestValidateRejectsGridSize() {
	cfg := s.load(map[string]string{"MINES_GRID_SIZE": "0", "MINES_MINE_COUNT": "0"})
	s.ErrorIs(cfg.Validate(), model.ErrInvalidConfiguration)
}

func (s *ConfigSuite) TestValidateRejectsStorage() {
	cfg := s.load(map[string]string{"MINES_STORAGE_TYPE": "floppy"})
	s.ErrorIs(cfg.Validate(), model.ErrInvalidConfiguration)

	cfg = s.load(map[string]string{"MINES_STORAGE_TYPE": "sqlite", "MINES_SQLITE_PATH": " "})
	s.ErrorIs(cfg.Validate(), model.ErrInvalidConfiguration)

	cfg = s.load(map[string]string{"MINES_SAVE_FILE": "same.yaml", "MINES_SCORES_FILE": "same.yaml"})
	s.ErrorIs(cfg.Validate(), model.ErrInvalidConfiguration)
}

func (s *ConfigSuite) TestValidateRejectsLogLevel() {
	cfg := s.load(map[string]string{"MINES_LOG_LEVEL": "chatty"})
	s.ErrorIs(cfg.Validate(), model.ErrInvalidConfiguration)
}
