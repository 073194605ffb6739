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

// AllPortsName labels the combined cross-port series in output rows.
const AllPortsName = "All Ports"

var categoryTotalsHeader = []string{"port", "year", "count", "changeYoY", "pctChangeYoY"}

// categoryFiles maps each category to its output filename.
var categoryFiles = map[domain.Category]string{
	domain.CategoryPeople:         "absolute-people-totals.csv",
	domain.CategoryTrain:          "absolute-train-totals.csv",
	domain.CategoryVehicle:        "absolute-vehicle-totals.csv",
	domain.CategoryContainer:      "absolute-container-totals.csv",
	domain.CategoryEmptyContainer: "absolute-empty-containers.csv",
}

// runAggregate synthesizes per-category year totals for every port over the
// configured fixed year range and writes three layers of output: one
// directory per port, a concatenation of all per-port rows at the root, and a
// combined "All Ports" series. Ports are processed in sorted order so row
// order is reproducible; the combined totals themselves are order-independent
// because merging is additive.
func (p *Pipeline) runAggregate(ctx context.Context) (bool, error) {
	files, err := csvfile.ListHistoryFiles(p.historyDir())
	if errors.Is(err, fs.ErrNotExist) {
		p.logger.Warn("no history files, skipping aggregation", "dir", p.historyDir())
		return false, nil
	}
	if err != nil {
		return false, err
	}

	outRoot := filepath.Join(p.cfg.OutputDir, aggregateDirName)
	combined := make(map[domain.Category]domain.YearSeries, len(domain.Categories))
	allRows := make(map[domain.Category][][]string, len(domain.Categories))
	for _, cat := range domain.Categories {
		combined[cat] = make(domain.YearSeries)
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
		}
		if len(history) == 0 {
			continue
		}
		found = true

		totals := domain.SynthesizeCategoryTotals(history.Annual(), p.rules)
		for _, cat := range domain.Categories {
			rows := p.categoryRows(port, totals[cat])
			if err := csvfile.WriteTable(filepath.Join(outRoot, port, categoryFiles[cat]), categoryTotalsHeader, rows); err != nil {
				return found, err
			}
			p.metrics.ReportsWritten.Inc()
			allRows[cat] = append(allRows[cat], rows...)
			combined[cat].Merge(totals[cat])
		}
		p.logger.Info("aggregated port categories", "port", port, "out_dir", filepath.Join(outRoot, port))
	}
	if !found {
		return false, nil
	}

	for _, cat := range domain.Categories {
		if err := csvfile.WriteTable(filepath.Join(outRoot, categoryFiles[cat]), categoryTotalsHeader, allRows[cat]); err != nil {
			return found, err
		}
		if err := csvfile.WriteTable(
			filepath.Join(outRoot, allPortsDirName, categoryFiles[cat]),
			categoryTotalsHeader,
			p.categoryRows(AllPortsName, combined[cat]),
		); err != nil {
			return found, err
		}
		p.metrics.ReportsWritten.Add(2)
	}
	p.logger.Info("wrote combined aggregates", "out_dir", filepath.Join(outRoot, allPortsDirName))
	return found, nil
}

// categoryRows renders one category series as delta rows over the configured
// fixed year range.
func (p *Pipeline) categoryRows(port string, series domain.YearSeries) [][]string {
	deltas := domain.YearDeltas(series, p.cfg.YearRangeStart, p.cfg.YearRangeEnd)
	rows := make([][]string, 0, len(deltas))
	for _, d := range deltas {
		rows = append(rows, []string{
			port,
			strconv.Itoa(d.Year),
			csvfile.FormatCount(d.Current),
			csvfile.FormatCount(d.AbsoluteChange),
			csvfile.FormatPct(d.PctChange),
		})
	}
	return rows
}
