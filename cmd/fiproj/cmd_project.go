package main

import (
	"fmt"

	"github.com/rpgo/fi-projector/internal/calculation"
	"github.com/rpgo/fi-projector/internal/config"
	"github.com/rpgo/fi-projector/internal/logging"
	"github.com/rpgo/fi-projector/internal/output"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type projectOptions struct {
	configPath string
	format     string
	outputDir  string
	currency   string
	seed       int64
	debug      bool
}

func newProjectCmd(a *app) *cobra.Command {
	opts := projectOptions{
		format:    a.settings.Format,
		outputDir: a.settings.OutputDir,
		currency:  a.settings.Currency,
		seed:      a.settings.Seed,
		debug:     a.settings.Debug,
	}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run every scenario in a configuration file",
		Long: `Run every scenario in a configuration file and render the report.

Without --output the report is printed to standard output; with --output it is
written to a timestamped file in that directory.

Example usage:
  fiproj project --config scenarios.yaml
  fiproj project --config scenarios.yaml --format csv --output reports
  fiproj project --config scenarios.yaml --seed 42 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "Path to the scenario file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "Report format (see 'fiproj formats')")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", opts.outputDir, "Directory to write the report to")
	cmd.Flags().StringVar(&opts.currency, "currency", opts.currency, "Currency code shown next to amounts")
	cmd.Flags().Int64Var(&opts.seed, "seed", opts.seed, "Seed for every stochastic path (0 keeps the file's seeds)")
	cmd.Flags().BoolVar(&opts.debug, "debug", opts.debug, "Log every simulated age")
	return cmd
}

func runProject(cmd *cobra.Command, a *app, opts projectOptions) error {
	set, err := config.NewInputParser().LoadFromFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.currency != "" {
		set.Currency = opts.currency
	}
	if opts.seed != 0 {
		for i := range set.Scenarios {
			set.Scenarios[i].Seed = opts.seed
		}
	}

	logger := a.logger
	if opts.debug {
		logger = logger.Level(zerolog.DebugLevel)
	}

	logger.Info().
		Str("config", opts.configPath).
		Int("scenarios", len(set.Scenarios)).
		Str("format", opts.format).
		Msg("running projection")

	engine := calculation.NewCalculationEngine()
	engine.Debug = opts.debug
	engine.SetLogger(logging.NewAdapter(logger, "engine"))

	results, err := engine.RunScenarios(set)
	if err != nil {
		return err
	}

	if opts.outputDir == "" && output.NormalizeFormatName(opts.format) != "all" {
		data, err := output.Render(results, opts.format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	paths, err := output.GenerateReportTo(results, opts.format, opts.outputDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logger.Info().Str("path", p).Msg("report written")
	}
	return nil
}
