package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper-go/internal/factory"
	"github.com/mcoot/minesweeper-go/internal/input"
)

const welcome = "Welcome to Minesweeper. Explore cells at your own risk."

func newPlayCmd() *cobra.Command {
	var resume bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}

			app, err := factory.New(cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := app.Close(); err != nil {
					logger.Warn("failed to close storage", slog.String("error", err.Error()))
				}
			}()

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
			defer stop()

			if resume {
				if err := app.GameController.Load(ctx); err != nil {
					return err
				}
			} else if _, err := app.GameController.NewGame(cfg.GridSize, cfg.MineCount); err != nil {
				return err
			}

			out := NewOutput(flags.output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.PrintMessage(welcome)

			in := input.NewTerminalInput(cmd.InOrStdin(), cmd.OutOrStdout())
			state, err := app.GameController.Run(ctx, in, out)
			if err != nil {
				return err
			}

			logger.Debug("session ended", slog.String("state", string(state)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&resume, "resume", false, "Resume the saved game instead of starting a new one")
	return cmd
}

// commandContext returns the command's context, or a background one when
// the command runs outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
