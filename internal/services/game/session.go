package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/model"
)

// Input supplies player decisions
type Input interface {
	// NextAction blocks until the player picks an action
	NextAction(ctx context.Context) (model.Action, error)
	// Identifier asks for the initials to put on the scoreboard
	Identifier(ctx context.Context) (string, error)
}

// Display presents the session. The controller never formats output itself.
type Display interface {
	ShowStatus(status Status)
	ShowError(err error)
	ShowResult(result Result)
	ShowScores(report ScoreReport)
}

// Status is the read-only view of a session handed to a Display
type Status struct {
	State       model.GameState
	Cells       [][]model.CellView
	Size        int
	MineCount   int
	FlagsPlaced int
	Moves       int
	Elapsed     time.Duration
}

func newStatus(game *model.Game) Status {
	return Status{
		State:       game.State,
		Cells:       game.Grid.View(),
		Size:        game.Grid.Size(),
		MineCount:   game.Grid.MineCount(),
		FlagsPlaced: game.Grid.FlaggedCount(),
		Moves:       game.Moves,
		Elapsed:     game.Grid.Elapsed(),
	}
}

// Result is reported once when a session ends
type Result struct {
	State   model.GameState
	Moves   int
	Elapsed time.Duration
	Score   int // Only meaningful when State is won
}

// ScoreReport is the scoreboard after a win
type ScoreReport struct {
	Score    int
	Recorded bool
	Lines    []string
}

// Run drives the turn loop until the session ends, the player quits or ctx is
// cancelled. Each input request is timed with the controller's clock.
func (c *Controller) Run(ctx context.Context, in Input, out Display) (model.GameState, error) {
	if c.game == nil {
		return "", model.ErrNoGameInProgress
	}

	for {
		if err := ctx.Err(); err != nil {
			return c.game.State, err
		}

		out.ShowStatus(newStatus(c.game))
		if c.game.IsComplete() {
			break
		}

		var action model.Action
		var inputErr error
		elapsed := clock.Measure(c.clock, func() {
			action, inputErr = in.NextAction(ctx)
		})
		if inputErr != nil {
			return c.game.State, inputErr
		}

		result, err := c.Apply(ctx, action, elapsed)
		if err != nil {
			out.ShowError(err)
			continue
		}
		if result.Quit {
			c.logger.Info("game quit",
				slog.Int("moves", c.game.Moves),
			)
			return c.game.State, nil
		}
	}

	c.finish(ctx, in, out)
	return c.game.State, nil
}

// finish reports the result and records a winning score
func (c *Controller) finish(ctx context.Context, in Input, out Display) {
	result := Result{
		State:   c.game.State,
		Moves:   c.game.Moves,
		Elapsed: c.game.Grid.Elapsed(),
	}
	if c.game.State == model.GameStateWon {
		result.Score = c.game.Score()
	}
	out.ShowResult(result)

	if c.game.State != model.GameStateWon || c.scoreboardService == nil {
		return
	}

	board, recorded, err := c.scoreboardService.Record(ctx, result.Score, in.Identifier)
	if err != nil {
		c.logger.Error("failed to record score",
			slog.Int("score", result.Score),
			slog.String("error", err.Error()),
		)
		out.ShowError(err)
	}
	if board == nil {
		return
	}
	out.ShowScores(ScoreReport{
		Score:    result.Score,
		Recorded: recorded,
		Lines:    board.Lines(),
	})
}
