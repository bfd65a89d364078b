package memory

import (
	"context"
	"slices"

	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	game   []byte
	scores []byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Saved game operations

func (s *Storage) SaveGame(ctx context.Context, doc []byte) error {
	s.game = slices.Clone(doc)
	return nil
}

func (s *Storage) LoadGame(ctx context.Context) ([]byte, error) {
	if s.game == nil {
		return nil, model.ErrSaveNotFound
	}
	return slices.Clone(s.game), nil
}

// Scoreboard operations

func (s *Storage) SaveScores(ctx context.Context, doc []byte) error {
	s.scores = slices.Clone(doc)
	return nil
}

func (s *Storage) LoadScores(ctx context.Context) ([]byte, error) {
	if s.scores == nil {
		return nil, model.ErrScoresNotFound
	}
	return slices.Clone(s.scores), nil
}

func (s *Storage) DeleteScores(ctx context.Context) error {
	s.scores = nil
	return nil
}
