// Package file keeps the saved game and scoreboard documents as files in a
// directory on local disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

// Config holds the file locations
type Config struct {
	Dir        string
	GameFile   string
	ScoresFile string
}

// DefaultConfig returns the conventional file layout
func DefaultConfig() Config {
	return Config{
		Dir:        "saves",
		GameFile:   "saved_game.yaml",
		ScoresFile: "high_scores.yaml",
	}
}

// Storage is a file-backed implementation of the storage interface
type Storage struct {
	cfg Config
}

// New creates a file storage rooted at cfg.Dir. The directory is created on
// first write.
func New(cfg Config) *Storage {
	return &Storage{cfg: cfg}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, doc []byte) error {
	return s.write(ctx, s.gamePath(), doc)
}

func (s *Storage) LoadGame(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.gamePath(), model.ErrSaveNotFound)
}

func (s *Storage) SaveScores(ctx context.Context, doc []byte) error {
	return s.write(ctx, s.scoresPath(), doc)
}

func (s *Storage) LoadScores(ctx context.Context) ([]byte, error) {
	return s.read(ctx, s.scoresPath(), model.ErrScoresNotFound)
}

func (s *Storage) DeleteScores(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.scoresPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove scores: %w", model.ErrIOFailure, err)
	}
	return nil
}

func (s *Storage) gamePath() string {
	return filepath.Join(s.cfg.Dir, s.cfg.GameFile)
}

func (s *Storage) scoresPath() string {
	return filepath.Join(s.cfg.Dir, s.cfg.ScoresFile)
}

func (s *Storage) read(ctx context.Context, path string, notFound error) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound
		}
		return nil, fmt.Errorf("%w: read %s: %w", model.ErrIOFailure, path, err)
	}
	return data, nil
}

// write replaces path atomically via a temp file in the same directory
func (s *Storage) write(ctx context.Context, path string, doc []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", model.ErrIOFailure, s.cfg.Dir, err)
	}

	tmp, err := os.CreateTemp(s.cfg.Dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", model.ErrIOFailure, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", model.ErrIOFailure, path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", model.ErrIOFailure, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: replace %s: %w", model.ErrIOFailure, path, err)
	}
	return nil
}
