// Package pipeline orchestrates the three sequential ETL stages: raw
// ingestion into per-port history files, per-port year-over-year analysis,
// and cross-port category aggregation. Each stage is a full pass over its
// inputs; no state survives a run.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/opendatamt/border-etl/internal/config"
	"github.com/opendatamt/border-etl/internal/domain"
	"github.com/opendatamt/border-etl/internal/observability"
)

// ErrNoInput reports that there was nothing to process: no raw export in the
// input directory and no history files from a previous run. It is a terminal
// "nothing to do" outcome, not a failure.
var ErrNoInput = errors.New("no input data found")

// Subdirectory names under the output directory.
const (
	historyDirName   = "montana-history"
	aggregateDirName = "large-ports"
	allPortsDirName  = "all-ports"
	analysisSuffix   = "-analysis"
)

// Pipeline runs the ETL stages with shared configuration and observability.
type Pipeline struct {
	cfg     *config.Config
	rules   domain.RuleSet
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline.
func New(cfg *config.Config, rules domain.RuleSet, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		rules:   rules,
		logger:  logger,
		metrics: metrics,
	}
}

// Run executes ingest, analyze, and aggregate in order. The raw export is
// optional when history files from an earlier run are already present; with
// neither, Run returns ErrNoInput. Any write failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) error {
	start := clock.Now()
	p.logger.Info("pipeline started",
		"input_dir", p.cfg.InputDir,
		"output_dir", p.cfg.OutputDir,
		"rules", p.rules.Name(),
	)

	ingested, err := p.timed(ctx, "ingest", p.runIngest)
	if err != nil {
		return err
	}

	analyzed, err := p.timed(ctx, "analyze", p.runAnalyze)
	if err != nil {
		return err
	}
	if !ingested && !analyzed {
		return ErrNoInput
	}

	if _, err := p.timed(ctx, "aggregate", p.runAggregate); err != nil {
		return err
	}

	p.logger.Info("pipeline complete", "duration", clock.Since(start).String())
	return nil
}

// stageFunc runs one stage and reports whether it found anything to process.
type stageFunc func(ctx context.Context) (bool, error)

// timed wraps a stage with duration metrics and cancellation checks.
func (p *Pipeline) timed(ctx context.Context, name string, fn stageFunc) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	stageStart := clock.Now()
	found, err := fn(ctx)
	elapsed := clock.Since(stageStart)
	p.metrics.StageDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		return found, err
	}
	p.logger.Info("stage complete", "stage", name, "duration", elapsed.Round(time.Millisecond).String())
	return found, nil
}

// historyDir is where per-port history files live under the output directory.
func (p *Pipeline) historyDir() string {
	return filepath.Join(p.cfg.OutputDir, historyDirName)
}
