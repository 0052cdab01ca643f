package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/progressbar"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pbdemo",
		Short:         "pbdemo renders progress-bar scenarios to image frames",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				progressbar.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			} else {
				progressbar.SetLogger(nil)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log every render at debug level")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newScenarioCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
