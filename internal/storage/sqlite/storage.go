// Package sqlite keeps the saved game and scoreboard documents in a single
// SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

const (
	gameDocument   = "saved_game"
	scoresDocument = "high_scores"
)

const schema = `CREATE TABLE IF NOT EXISTS documents (
	name       TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db    *sql.DB
	clock clock.Clock
}

// Open opens the database at path, creating the schema if needed
func Open(path string, clk clock.Clock) (*Storage, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: sqlite path is required", model.ErrIOFailure)
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite db: %w", model.ErrIOFailure, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping sqlite db: %w", model.ErrIOFailure, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create schema: %w", model.ErrIOFailure, err)
	}

	return &Storage{db: db, clock: clk}, nil
}

// Close releases the underlying SQLite connection
func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, doc []byte) error {
	return s.put(ctx, gameDocument, doc)
}

func (s *Storage) LoadGame(ctx context.Context) ([]byte, error) {
	return s.get(ctx, gameDocument, model.ErrSaveNotFound)
}

func (s *Storage) SaveScores(ctx context.Context, doc []byte) error {
	return s.put(ctx, scoresDocument, doc)
}

func (s *Storage) LoadScores(ctx context.Context) ([]byte, error) {
	return s.get(ctx, scoresDocument, model.ErrScoresNotFound)
}

func (s *Storage) DeleteScores(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE name = ?`, scoresDocument); err != nil {
		return fmt.Errorf("%w: delete %s: %w", model.ErrIOFailure, scoresDocument, err)
	}
	return nil
}

// UpdatedAt reports when a document was last written
func (s *Storage) UpdatedAt(ctx context.Context, name string) (time.Time, error) {
	var millis int64
	err := s.db.QueryRowContext(ctx, `SELECT updated_at FROM documents WHERE name = ?`, name).Scan(&millis)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, model.ErrSaveNotFound
		}
		return time.Time{}, fmt.Errorf("%w: read %s: %w", model.ErrIOFailure, name, err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

func (s *Storage) put(ctx context.Context, name string, doc []byte) error {
	if doc == nil {
		doc = []byte{}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (name, body, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		name, doc, s.clock.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", model.ErrIOFailure, name, err)
	}
	return nil
}

func (s *Storage) get(ctx context.Context, name string, notFound error) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, `SELECT body FROM documents WHERE name = ?`, name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("%w: read %s: %w", model.ErrIOFailure, name, err)
	}
	return body, nil
}
