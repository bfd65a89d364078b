package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse redis url: %w", model.ErrIOFailure, err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: connect to redis: %w", model.ErrIOFailure, err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Saved game operations

func (s *Storage) SaveGame(ctx context.Context, doc []byte) error {
	if err := s.client.Set(ctx, gameKey(s.cfg.Namespace), doc, s.cfg.SaveTTL).Err(); err != nil {
		return fmt.Errorf("%w: save game: %w", model.ErrIOFailure, err)
	}
	return nil
}

func (s *Storage) LoadGame(ctx context.Context) ([]byte, error) {
	return s.get(ctx, gameKey(s.cfg.Namespace), model.ErrSaveNotFound)
}

// Scoreboard operations

func (s *Storage) SaveScores(ctx context.Context, doc []byte) error {
	if err := s.client.Set(ctx, scoresKey(s.cfg.Namespace), doc, 0).Err(); err != nil {
		return fmt.Errorf("%w: save scores: %w", model.ErrIOFailure, err)
	}
	return nil
}

func (s *Storage) LoadScores(ctx context.Context) ([]byte, error) {
	return s.get(ctx, scoresKey(s.cfg.Namespace), model.ErrScoresNotFound)
}

func (s *Storage) DeleteScores(ctx context.Context) error {
	if err := s.client.Del(ctx, scoresKey(s.cfg.Namespace)).Err(); err != nil {
		return fmt.Errorf("%w: delete scores: %w", model.ErrIOFailure, err)
	}
	return nil
}

func (s *Storage) get(ctx context.Context, key string, notFound error) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, notFound
		}
		return nil, fmt.Errorf("%w: read %s: %w", model.ErrIOFailure, key, err)
	}
	return data, nil
}
