package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/progressbar"
)

var (
	commit = "none"
	date   = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "pbdemo %s\ncommit: %s\nbuilt: %s\n", progressbar.Version, commit, date)
			return nil
		},
	}
}
