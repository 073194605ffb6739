package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/opendatamt/border-etl/internal/adapter/csvfile"
	"github.com/opendatamt/border-etl/internal/domain"
)

// Output table headers for the analysis stage. Year columns are appended to
// the YoY headers per port, covering every year observed in its history.
var (
	yoyHeaderPrefix = []string{"month", "crossingType"}
	yearlyHeader    = []string{"year", "crossingType", "absoluteChange", "pctChange"}
)

// runAnalyze produces, for every port history file, two wide year-over-year
// tables (absolute and percent change, one row per month and measure) and a
// yearly summary, each including a synthetic "Total" measure. Returns false
// when no history files exist.
func (p *Pipeline) runAnalyze(ctx context.Context) (bool, error) {
	files, err := csvfile.ListHistoryFiles(p.historyDir())
	if errors.Is(err, fs.ErrNotExist) {
		p.logger.Warn("no history files, skipping analysis", "dir", p.historyDir())
		return false, nil
	}
	if err != nil {
		return false, err
	}

	found := false
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return found, err
		}
		port := strings.TrimSuffix(filepath.Base(path), ".csv")

		history, skipped, err := csvfile.ReadHistory(path)
		if err != nil {
			return found, err
		}
		if skipped > 0 {
			p.metrics.HistoryRowsSkipped.Add(float64(skipped))
			p.logger.Warn("skipped malformed history rows", "port", port, "rows", skipped)
		}
		if len(history) == 0 {
			p.logger.Warn("empty history file, skipping port", "port", port)
			continue
		}
		found = true

		if err := p.analyzePort(port, history); err != nil {
			return found, err
		}
		p.metrics.PortsProcessed.Inc()
	}
	return found, nil
}

func (p *Pipeline) analyzePort(port string, history domain.PortHistory) error {
	years := history.Years()
	months := history.Months()
	domain.SynthesizeGrandTotal(history)
	measures := history.Measures()

	header := append(append([]string{}, yoyHeaderPrefix...), yearColumns(years)...)
	absRows := make([][]string, 0, len(months)*len(measures))
	pctRows := make([][]string, 0, len(months)*len(measures))
	for _, month := range months {
		for _, measure := range measures {
			deltas := domain.MonthDeltas(history[measure], month, years)
			absRow := []string{month, measure}
			pctRow := []string{month, measure}
			for _, d := range deltas {
				absRow = append(absRow, csvfile.FormatCount(d.AbsoluteChange))
				pctRow = append(pctRow, csvfile.FormatPct(d.PctChange))
			}
			absRows = append(absRows, absRow)
			pctRows = append(pctRows, pctRow)
		}
	}

	outDir := filepath.Join(p.cfg.OutputDir, port+analysisSuffix)
	tables := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{port + "-YoY-absolute.csv", header, absRows},
		{port + "-YoY-percent.csv", header, pctRows},
		{port + "-yearly.csv", yearlyHeader, yearlySummary(history, years, measures)},
	}
	for _, tbl := range tables {
		path := filepath.Join(outDir, tbl.name)
		if err := csvfile.WriteTable(path, tbl.header, tbl.rows); err != nil {
			return err
		}
		p.metrics.ReportsWritten.Inc()
	}
	p.logger.Info("analyzed port", "port", port, "years", len(years), "measures", len(measures), "out_dir", outDir)
	return nil
}

// yearlySummary aggregates each measure across months per year and reports
// the change versus the prior year. Rows are emitted for every observed year,
// with empty change cells when the prior year has no data.
func yearlySummary(history domain.PortHistory, years []int, measures []string) [][]string {
	annual := history.Annual()
	rows := make([][]string, 0, len(years)*len(measures))
	for _, y := range years {
		for _, measure := range measures {
			d := domain.YearDeltas(annual[measure], y, y)[0]
			rows = append(rows, []string{
				strconv.Itoa(y),
				measure,
				csvfile.FormatCount(d.AbsoluteChange),
				csvfile.FormatPct(d.PctChange),
			})
		}
	}
	return rows
}

func yearColumns(years []int) []string {
	out := make([]string, 0, len(years))
	for _, y := range years {
		out = append(out, strconv.Itoa(y))
	}
	return out
}
