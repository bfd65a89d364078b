package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/model"
	"github.com/mcoot/minesweeper-go/internal/persistence"
	"github.com/mcoot/minesweeper-go/internal/services/scoreboard"
	"github.com/mcoot/minesweeper-go/internal/storage"
)

// Controller manages the session state machine and turn flow
type Controller struct {
	storage           storage.Storage
	scoreboardService *scoreboard.Service
	clock             clock.Clock
	random            random.Random
	logger            *slog.Logger

	game *model.Game
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	scoreboardService *scoreboard.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:           storage,
		scoreboardService: scoreboardService,
		clock:             clock,
		random:            random,
		logger:            logger,
	}
}

// TurnResult describes the effect of one applied action
type TurnResult struct {
	Action model.Action

	// Counted is true for explore/flag turns that reached the grid
	Counted  bool
	Revealed []model.Position
	State    model.GameState

	Ignored bool
	Saved   bool
	Loaded  bool
	Quit    bool
}

// NewGame starts a session on a freshly mined grid
func (c *Controller) NewGame(size, mines int) (*model.Game, error) {
	grid, err := model.NewRandomGrid(size, mines, c.random)
	if err != nil {
		return nil, err
	}
	return c.StartGame(grid), nil
}

// StartGame starts a session on an existing grid, replacing any current one
func (c *Controller) StartGame(grid *model.Grid) *model.Game {
	c.game = model.NewGame(grid, c.clock.Now())

	c.logger.Info("game created",
		slog.Int("size", grid.Size()),
		slog.Int("mines", grid.MineCount()),
	)
	return c.game
}

// Game returns the current session, or nil before one is started
func (c *Controller) Game() *model.Game {
	return c.game
}

// Status returns the display projection of the current session
func (c *Controller) Status() (Status, error) {
	if c.game == nil {
		return Status{}, model.ErrNoGameInProgress
	}
	return newStatus(c.game), nil
}

// Apply applies one action to the current session. elapsed is the wall-clock
// time the player spent choosing it and is added only to counted turns.
func (c *Controller) Apply(ctx context.Context, action model.Action, elapsed time.Duration) (TurnResult, error) {
	if c.game == nil {
		return TurnResult{}, model.ErrNoGameInProgress
	}

	result := TurnResult{Action: action, State: c.game.State}

	if action.Kind == model.ActionQuit {
		result.Quit = true
		return result, nil
	}
	if c.game.IsComplete() {
		return result, model.ErrGameOver
	}

	switch action.Kind {
	case model.ActionExplore:
		revealed, err := c.game.Grid.Reveal(action.Position)
		if err != nil {
			return result, err
		}
		result.Revealed = revealed
		c.countTurn(elapsed)

	case model.ActionFlag:
		if err := c.game.Grid.ToggleFlag(action.Position); err != nil {
			return result, err
		}
		c.countTurn(elapsed)

	case model.ActionSave:
		if err := c.Save(ctx); err != nil {
			return result, err
		}
		result.Saved = true

	case model.ActionLoad:
		if err := c.Load(ctx); err != nil {
			return result, err
		}
		result.Loaded = true

	default:
		result.Ignored = true
		c.logger.Debug("ignored action", slog.String("kind", string(action.Kind)))
	}

	result.Counted = action.Kind.NeedsPosition()
	result.State = c.game.State
	return result, nil
}

func (c *Controller) countTurn(elapsed time.Duration) {
	c.game.Moves++
	c.game.Grid.AddElapsed(elapsed)

	if c.game.Evaluate().IsTerminal() {
		c.logger.Info("game finished",
			slog.String("state", string(c.game.State)),
			slog.Int("moves", c.game.Moves),
			slog.Duration("elapsed", c.game.Grid.Elapsed()),
		)
	}
}

// Save writes the current grid to the saved game slot
func (c *Controller) Save(ctx context.Context) error {
	if c.game == nil {
		return model.ErrNoGameInProgress
	}

	data, err := persistence.EncodeGrid(c.game.Grid)
	if err != nil {
		return err
	}
	if err := c.storage.SaveGame(ctx, data); err != nil {
		c.logger.Error("failed to save game",
			slog.String("error", err.Error()),
		)
		return err
	}

	c.logger.Info("game saved",
		slog.Int("moves", c.game.Moves),
		slog.Duration("elapsed", c.game.Grid.Elapsed()),
	)
	return nil
}

// Load replaces the current session with the saved one. On any failure the
// current session is left untouched.
func (c *Controller) Load(ctx context.Context) error {
	data, err := c.storage.LoadGame(ctx)
	if err != nil {
		return err
	}

	grid, err := persistence.DecodeGrid(data)
	if err != nil {
		c.logger.Warn("saved game is corrupt",
			slog.String("error", err.Error()),
		)
		return err
	}

	loaded := model.NewGame(grid, c.clock.Now())
	if loaded.IsComplete() {
		return fmt.Errorf("%w: saved game is already %s", model.ErrGameOver, loaded.State)
	}
	c.game = loaded

	c.logger.Info("game loaded",
		slog.Int("size", grid.Size()),
		slog.Duration("elapsed", grid.Elapsed()),
	)
	return nil
}
