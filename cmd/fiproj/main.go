package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rpgo/fi-projector/internal/config"
	"github.com/rpgo/fi-projector/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand
type app struct {
	settings config.RuntimeSettings
	logger   zerolog.Logger
}

// newRootCmd builds the CLI; settings provide the flag defaults
func newRootCmd(settings config.RuntimeSettings) *cobra.Command {
	a := &app{settings: settings}

	rootCmd := &cobra.Command{
		Use:   "fiproj",
		Short: "Financial independence wealth projector",
		Long: `fiproj projects personal wealth month by month from the current age to
retirement along four paths (risk-free, stochastic, expected and downside),
sizes the corpus needed to retire, and reports the first age each path
reaches it. An optional one-time shock can be applied to every path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logging.New(logging.Config{
				Level:  a.settings.LogLevel,
				Pretty: a.settings.LogPretty,
				Out:    cmd.ErrOrStderr(),
			})
			logging.SetGlobalLogger(a.logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.settings.LogLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&a.settings.LogPretty, "log-pretty", settings.LogPretty, "Human readable log output")

	rootCmd.AddCommand(
		newProjectCmd(a),
		newValidateCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
	)
	return rootCmd
}

func run(args []string, stdout, stderr io.Writer) error {
	// a missing .env file is fine
	_ = godotenv.Load()

	settings, err := config.LoadRuntimeSettings()
	if err != nil {
		return err
	}
	rootCmd := newRootCmd(settings)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
