package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper-go/internal/config"
)

var (
	cfg   *config.Config
	flags *flagValues
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	loaded, loadErr := config.Load()
	if loadErr != nil {
		loaded = &config.Config{}
	}
	cfg = loaded
	flags = &flagValues{}

	rootCmd := &cobra.Command{
		Use:   "minesweeper",
		Short: "Terminal minesweeper",
		Long: `minesweeper is a turn-based terminal minesweeper.

Explore cells with 'e row,col', flag them with 'f row,col', and save, load or
quit at any prompt. Wins are timed and the ten fastest go on the scoreboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			applyFlags(cmd, cfg, flags)
			return cfg.Validate()
		},
		SilenceUsage: true,
	}

	bindFlags(rootCmd, cfg, flags)

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newResetScoresCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
