package main

import (
	"fmt"

	"github.com/rpgo/fi-projector/internal/config"
	"github.com/rpgo/fi-projector/internal/output"
	"github.com/spf13/cobra"
)

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example <output-file>",
		Short: "Write an example scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(set, args[0]); err != nil {
				return fmt.Errorf("failed to save example configuration: %w", err)
			}
			a.logger.Info().Str("path", args[0]).Msg("example configuration written")
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}
