package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/progressbar/internal/config"
)

func newScenarioCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Print the built-in scenario, or validate --config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
				return err
			}
			s, err := config.Load(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d bars, %d steps\n", path, len(s.Bars), len(s.Steps))
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "Scenario file to validate")
	return cmd
}
