package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/minesweeper-go/internal/factory"
)

func newScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores",
		Short: "Show the high score board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				board, err := app.ScoreBoardService.Load(commandContext(cmd))
				if err != nil {
					return err
				}
				out.Print(ScoresView{Lines: board.Lines()})
				return nil
			})
		},
	}
}

func newResetScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-scores",
		Short: "Clear the high score board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				if err := app.ScoreBoardService.Reset(commandContext(cmd)); err != nil {
					return err
				}
				out.PrintMessage("High scores cleared.")
				return nil
			})
		},
	}
}

// withApp wires an App for a one-shot command and closes it afterwards
func withApp(cmd *cobra.Command, fn func(app *factory.App, out *Output) error) error {
	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	app, err := factory.New(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	return fn(app, NewOutput(flags.output, cmd.OutOrStdout(), cmd.ErrOrStderr()))
}
