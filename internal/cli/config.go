package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper-go/internal/config"
)

// flagValues holds flags that need post-processing before they reach the config
type flagValues struct {
	seed    uint64
	output  string
	verbose bool
}

// bindFlags registers the global flags, defaulting each to its env value
func bindFlags(cmd *cobra.Command, cfg *config.Config, flags *flagValues) {
	pf := cmd.PersistentFlags()
	pf.IntVar(&cfg.GridSize, "size", cfg.GridSize, "Grid side length (env: MINES_GRID_SIZE)")
	pf.IntVar(&cfg.MineCount, "mines", cfg.MineCount, "Number of mines (env: MINES_MINE_COUNT)")
	pf.Uint64Var(&flags.seed, "seed", 0, "Seed for a reproducible mine layout (env: MINES_SEED)")
	pf.StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, file, redis, sqlite (env: MINES_STORAGE_TYPE)")
	pf.StringVar(&cfg.SaveDir, "save-dir", cfg.SaveDir, "Directory for saved games and scores (env: MINES_SAVE_DIR)")
	pf.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis connection URL (env: MINES_REDIS_URL)")
	pf.StringVar(&cfg.SQLitePath, "sqlite-path", cfg.SQLitePath, "SQLite database path (env: MINES_SQLITE_PATH)")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: MINES_LOG_LEVEL)")
	pf.StringVarP(&flags.output, "output", "o", "text", "Output format: text, json")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Shorthand for --log-level debug")
}

// applyFlags folds flags without a direct config field into cfg
func applyFlags(cmd *cobra.Command, cfg *config.Config, flags *flagValues) {
	if cmd.Flags().Changed("seed") {
		seed := flags.seed
		cfg.Seed = &seed
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
}

// newLogger writes JSON logs to w, which is stderr when run from a terminal
func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})), nil
}
