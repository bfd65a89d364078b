package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/persistence"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

// MaxIdentifierAttempts bounds how often a player is asked for initials
const MaxIdentifierAttempts = 3

// IdentifyFunc asks the player for their identifier
type IdentifyFunc func(ctx context.Context) (string, error)

// Service provides high score operations
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new ScoreBoard Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Load reads the persisted board. A missing board is an empty one.
func (s *Service) Load(ctx context.Context) (*model.ScoreBoard, error) {
	data, err := s.storage.LoadScores(ctx)
	if err != nil {
		if errors.Is(err, model.ErrScoresNotFound) {
			return model.NewScoreBoard(), nil
		}
		return nil, err
	}
	return persistence.DecodeScoreBoard(data)
}

// Save replaces the persisted board
func (s *Service) Save(ctx context.Context, board *model.ScoreBoard) error {
	data, err := persistence.EncodeScoreBoard(board)
	if err != nil {
		return err
	}
	return s.storage.SaveScores(ctx, data)
}

// Reset clears the persisted board
func (s *Service) Reset(ctx context.Context) error {
	if err := s.storage.DeleteScores(ctx); err != nil {
		return err
	}
	s.logger.Info("scoreboard reset")
	return nil
}

// Record reads the board, admits score if it qualifies and rewrites the board.
// identify is called only when the score qualifies; an invalid identifier is
// asked for again, up to MaxIdentifierAttempts times. Returns the resulting
// board and whether the score was recorded.
func (s *Service) Record(ctx context.Context, score int, identify IdentifyFunc) (*model.ScoreBoard, bool, error) {
	if score < 0 {
		return nil, false, fmt.Errorf("%w: negative score %d", model.ErrInvalidConfiguration, score)
	}

	board, err := s.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	if !board.Qualifies(score) {
		s.logger.Debug("score did not qualify", slog.Int("score", score))
		return board, false, nil
	}

	var lastErr error
	for attempt := 1; attempt <= MaxIdentifierAttempts; attempt++ {
		raw, err := identify(ctx)
		if err != nil {
			return board, false, err
		}

		ok, err := board.Record(raw, score)
		if errors.Is(err, model.ErrInvalidIdentifier) {
			lastErr = err
			s.logger.Debug("rejected identifier", slog.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return board, false, err
		}
		if !ok {
			return board, false, nil
		}

		if err := s.Save(ctx, board); err != nil {
			s.logger.Error("failed to save scoreboard",
				slog.String("error", err.Error()),
			)
			return board, false, err
		}

		s.logger.Info("score recorded",
			slog.Int("score", score),
			slog.Int("entries", len(board.Entries)),
		)
		return board, true, nil
	}

	return board, false, lastErr
}
