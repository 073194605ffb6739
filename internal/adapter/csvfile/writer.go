package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/opendatamt/border-etl/internal/domain"
)

// HistoryHeader is the column layout of per-port history files.
var HistoryHeader = []string{"year", "month", "crossingType", "numberOfCrossings"}

// WriteHistory writes one port's accumulated history rows. Parent directories
// are created; any write failure propagates.
func WriteHistory(path string, records []domain.HistoryRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(rec.Year),
			rec.Month,
			rec.Measure,
			strconv.Itoa(rec.Value),
		})
	}
	return WriteTable(path, HistoryHeader, rows)
}

// WriteTable writes a delimited table with a fixed header. This is the whole
// report-writer contract: serialization only, failures are the caller's
// problem.
func WriteTable(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return f.Close()
}

// SanitizePortName replaces filesystem-hostile characters in a port name so
// it can be used as a filename.
func SanitizePortName(name string) string {
	s := strings.TrimSpace(name)
	for _, ch := range []string{"/", "\\", ":", "*", "?", `"`, "<", ">", "|"} {
		s = strings.ReplaceAll(s, ch, "_")
	}
	return s
}

// FormatCount renders an optional count; absent values become empty cells,
// never zero.
func FormatCount(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// FormatPct renders an optional percent change, trimming trailing zeros
// ("50", not "50.000000"). The value itself is already rounded by the delta
// engine.
func FormatPct(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
