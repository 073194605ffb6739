package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all run settings, populated from BORDER_ETL_* environment
// variables. The input and output directories may additionally be overridden
// by the CLI flags in cmd/etl.
type Config struct {
	InputDir  string `envconfig:"INPUT_DIR" default:"input-data"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"output"`

	// Fixed reporting range for the category aggregate stage, inclusive.
	// Years without data render as empty cells, not errors.
	YearRangeStart int `envconfig:"YEAR_RANGE_START" default:"1996"`
	YearRangeEnd   int `envconfig:"YEAR_RANGE_END" default:"2025"`

	// ClassifierRules selects the people-matching rule set:
	// "conservative" (passeng/pedestrian) or "extended" (adds person).
	ClassifierRules string `envconfig:"CLASSIFIER_RULES" default:"conservative"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads configuration from the environment, applying defaults where
// unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("border_etl", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks invariants that envconfig cannot express.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input directory is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.YearRangeStart > c.YearRangeEnd {
		return fmt.Errorf("invalid year range %d..%d", c.YearRangeStart, c.YearRangeEnd)
	}
	switch c.ClassifierRules {
	case "conservative", "extended":
	default:
		return fmt.Errorf("unknown classifier rule set %q", c.ClassifierRules)
	}
	return nil
}
