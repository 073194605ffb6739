// Package csvfile reads and writes the delimited files the pipeline consumes
// and produces: the raw BTS export, per-port history files, and the delta
// report tables. It holds no aggregation logic beyond serialization.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/opendatamt/border-etl/internal/domain"
)

// rawPattern matches the BTS export filename inside the input directory.
const rawPattern = "Border_Crossing*csv"

// FindRawInput locates the raw BTS export in dir. Returns "" when the
// directory does not exist or holds no matching file; the caller decides
// whether that is terminal.
func FindRawInput(dir string) string {
	matches, err := filepath.Glob(filepath.Join(dir, rawPattern))
	if err != nil || len(matches) == 0 {
		return ""
	}
	sort.Strings(matches)
	return matches[0]
}

// EachRawRecord streams raw rows from a BTS export to fn. The file is read
// with lenient field counts; short rows surface as records with empty fields,
// which the parser drops. Returns an error if the required header columns are
// missing or fn fails.
func EachRawRecord(path string, fn func(domain.RawCrossingRecord) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open raw input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read raw header: %w", err)
	}
	cols, err := rawColumns(header)
	if err != nil {
		return err
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read raw row: %w", err)
		}
		rec := domain.RawCrossingRecord{
			State:   field(row, cols.state),
			Border:  field(row, cols.border),
			Port:    field(row, cols.port),
			Date:    field(row, cols.date),
			Measure: field(row, cols.measure),
			Value:   field(row, cols.value),
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

type rawCols struct {
	state, border, port, date, measure, value int
}

func rawColumns(header []string) (rawCols, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	cols := rawCols{state: -1, border: -1, port: -1, date: -1, measure: -1, value: -1}
	required := map[string]*int{
		"State":     &cols.state,
		"Border":    &cols.border,
		"Port Name": &cols.port,
		"Date":      &cols.date,
		"Measure":   &cols.measure,
		"Value":     &cols.value,
	}
	for name, dst := range required {
		i, ok := index[name]
		if !ok {
			return rawCols{}, fmt.Errorf("raw input missing column %q", name)
		}
		*dst = i
	}
	return cols, nil
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// ReadHistory loads a per-port history CSV into an accumulated PortHistory.
// Malformed rows are skipped whole; the count of skipped rows is returned so
// callers can record it.
func ReadHistory(path string) (domain.PortHistory, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	history := domain.NewPortHistory()
	skipped := 0
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			return history, skipped, nil
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("read history row: %w", err)
		}
		if first {
			first = false
			continue // header
		}
		if len(row) < 4 {
			skipped++
			continue
		}
		rec, ok := domain.ParseHistoryRecord(row[0], row[1], row[2], row[3])
		if !ok {
			skipped++
			continue
		}
		history.Add(rec)
	}
}

// ListHistoryFiles returns the CSV files in dir in sorted order, for
// deterministic port processing. A missing directory returns an error.
func ListHistoryFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list history dir: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}
