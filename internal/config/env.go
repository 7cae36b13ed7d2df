package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// RuntimeSettings are process-level defaults read from FIPROJ_* variables.
// Command-line flags take precedence over them.
type RuntimeSettings struct {
	LogLevel  string `env:"FIPROJ_LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"FIPROJ_LOG_PRETTY" envDefault:"true"`
	Format    string `env:"FIPROJ_FORMAT" envDefault:"console"`
	OutputDir string `env:"FIPROJ_OUTPUT_DIR"`
	Currency  string `env:"FIPROJ_CURRENCY"`
	// Seed, when non-zero, replaces the seed of every scenario.
	Seed  int64 `env:"FIPROJ_SEED"`
	Debug bool  `env:"FIPROJ_DEBUG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadRuntimeSettings parses RuntimeSettings from the environment
func LoadRuntimeSettings() (RuntimeSettings, error) {
	var s RuntimeSettings
	if err := ParseEnv(&s); err != nil {
		return RuntimeSettings{}, err
	}
	return s, nil
}
