package main

import (
	"fmt"

	"github.com/rpgo/fi-projector/internal/config"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Check a scenario file without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			for _, sc := range set.Scenarios {
				a.logger.Debug().Str("scenario", sc.Name).Str("plan", sc.Contributions.Kind()).Msg("scenario valid")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d scenario(s) valid\n", args[0], len(set.Scenarios))
			return nil
		},
	}
}
