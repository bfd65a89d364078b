package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/minesweeper-go/internal/config"
	"github.com/mcoot/minesweeper-go/internal/dependencies/clock"
	"github.com/mcoot/minesweeper-go/internal/dependencies/random"
	"github.com/mcoot/minesweeper-go/internal/services/game"
	"github.com/mcoot/minesweeper-go/internal/services/scoreboard"
	"github.com/mcoot/minesweeper-go/internal/storage"
	filestorage "github.com/mcoot/minesweeper-go/internal/storage/file"
	"github.com/mcoot/minesweeper-go/internal/storage/memory"
	redisstorage "github.com/mcoot/minesweeper-go/internal/storage/redis"
	sqlitestorage "github.com/mcoot/minesweeper-go/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	ScoreBoardService *scoreboard.Service
	GameController    *game.Controller
}

// New creates a new application with all dependencies wired.
// logger may be nil, in which case logs are discarded.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := clock.New()

	store, err := newStorage(cfg, clk)
	if err != nil {
		return nil, err
	}

	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
		logger.Debug("using seeded mine layout", slog.Uint64("seed", *cfg.Seed))
	}

	logger.Debug("storage ready", slog.String("type", cfg.StorageType))
	return newWithDependencies(store, clk, rnd, logger), nil
}

func newStorage(cfg *config.Config, clk clock.Clock) (storage.Storage, error) {
	switch cfg.StorageType {
	case config.StorageTypeMemory:
		return memory.New(), nil
	case config.StorageTypeFile:
		return filestorage.New(filestorage.Config{
			Dir:        cfg.SaveDir,
			GameFile:   cfg.SaveFile,
			ScoresFile: cfg.ScoresFile,
		}), nil
	case config.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.Namespace = cfg.RedisNamespace
		return redisstorage.New(redisCfg)
	case config.StorageTypeSQLite:
		return sqlitestorage.Open(cfg.SQLitePath, clk)
	default:
		return nil, fmt.Errorf("invalid storage type %q: must be memory, file, redis or sqlite", cfg.StorageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	scoreboardService := scoreboard.New(store, logger)
	gameController := game.NewController(store, scoreboardService, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Logger:            logger,
		ScoreBoardService: scoreboardService,
		GameController:    gameController,
	}
}

// Close releases storage connections held by the app
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("close storage: %w", err)
		}
	}
	return nil
}
