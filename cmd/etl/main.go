// Command etl runs the border-crossing statistics pipeline: it ingests the
// raw BTS Border Crossing Entry Data export into per-port history files, then
// produces year-over-year analysis tables and cross-port category aggregates.
//
// Configuration comes from BORDER_ETL_* environment variables (optionally via
// a .env file); the input and output directories may be overridden with the
// -input and -output flags.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/opendatamt/border-etl/internal/config"
	"github.com/opendatamt/border-etl/internal/domain"
	"github.com/opendatamt/border-etl/internal/observability"
	"github.com/opendatamt/border-etl/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	inputDir := flag.String("input", "", "directory containing the raw Border_Crossing CSV export")
	outputDir := flag.String("output", "", "directory to write history files and reports into")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	rules, err := domain.RuleSetByName(cfg.ClassifierRules)
	if err != nil {
		logger.Error("invalid classifier rule set", "error", err)
		os.Exit(1)
	}

	p := pipeline.New(cfg, rules, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch err := p.Run(ctx); {
	case errors.Is(err, pipeline.ErrNoInput):
		logger.Warn("nothing to do", "input_dir", cfg.InputDir)
	case errors.Is(err, context.Canceled):
		logger.Info("run cancelled")
		os.Exit(1)
	case err != nil:
		logger.Error("pipeline failed", "error", err)
		os.Exit(1)
	}
}
