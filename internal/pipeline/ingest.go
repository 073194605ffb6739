package pipeline

import (
	"context"
	"path/filepath"

	"github.com/opendatamt/border-etl/internal/adapter/csvfile"
	"github.com/opendatamt/border-etl/internal/domain"
)

// runIngest filters the raw BTS export down to Montana / US-Canada rows,
// groups them per port, and writes one chronologically sorted history CSV per
// port. Returns false when no raw export exists; later stages may still run
// off history files from a previous invocation.
func (p *Pipeline) runIngest(ctx context.Context) (bool, error) {
	rawPath := csvfile.FindRawInput(p.cfg.InputDir)
	if rawPath == "" {
		p.logger.Warn("no raw export found, skipping ingest", "input_dir", p.cfg.InputDir)
		return false, nil
	}
	p.logger.Info("ingesting raw export", "path", rawPath)

	acc := domain.NewAccumulator()
	err := csvfile.EachRawRecord(rawPath, func(raw domain.RawCrossingRecord) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.metrics.RowsRead.Inc()

		rec, outcome := domain.ParseRawRecord(raw)
		switch outcome.Status {
		case domain.StatusDropped:
			p.metrics.RowsDropped.WithLabelValues(string(outcome.Reason)).Inc()
			p.logger.Debug("dropped raw row", "reason", string(outcome.Reason), "port", raw.Port, "date", raw.Date)
			return nil
		case domain.StatusValueZeroed:
			p.metrics.RowsZeroed.Inc()
			p.logger.Debug("zeroed unparsable value", "port", rec.Port, "measure", rec.Measure, "raw_value", raw.Value)
		}
		acc.Add(rec)
		return nil
	})
	if err != nil {
		return true, err
	}

	for _, port := range acc.Ports() {
		records := historyRecords(acc, port)
		path := filepath.Join(p.historyDir(), csvfile.SanitizePortName(port)+".csv")
		if err := csvfile.WriteHistory(path, records); err != nil {
			return true, err
		}
		p.metrics.ReportsWritten.Inc()
		p.logger.Info("wrote port history", "port", port, "rows", len(records), "path", path)
	}
	return true, nil
}

// historyRecords flattens one port's accumulated cells into chronological
// history rows.
func historyRecords(acc domain.Accumulator, port string) []domain.HistoryRecord {
	keys := acc.SortedKeys(port)
	out := make([]domain.HistoryRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.HistoryRecord{
			Year:    k.Year,
			Month:   k.MonthAbbrev,
			Measure: k.Measure,
			Value:   acc.Count(port, k),
		})
	}
	return out
}
