package storage

import (
	"context"
)

// Storage defines the interface for data persistence.
// Documents are opaque encoded bytes; see the persistence package.
type Storage interface {
	// Saved game slot
	SaveGame(ctx context.Context, doc []byte) error
	LoadGame(ctx context.Context) ([]byte, error)

	// Scoreboard slot
	SaveScores(ctx context.Context, doc []byte) error
	LoadScores(ctx context.Context) ([]byte, error)
	DeleteScores(ctx context.Context) error
}
