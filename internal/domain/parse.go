package domain

import (
	"strconv"
	"strings"
	"time"
)

// ParseRawRecord normalizes one BTS export row. Rows outside the Montana /
// US-Canada filter, rows missing a port or measure, and rows with an
// unparsable date are dropped; an unparsable value degrades to zero and is
// reported as [StatusValueZeroed]. The returned record is only meaningful
// when the outcome is accepted.
func ParseRawRecord(raw RawCrossingRecord) (CrossingRecord, ParseOutcome) {
	if strings.TrimSpace(raw.State) != FilterState {
		return CrossingRecord{}, ParseOutcome{Status: StatusDropped, Reason: DropFilteredState}
	}
	if strings.TrimSpace(raw.Border) != FilterBorder {
		return CrossingRecord{}, ParseOutcome{Status: StatusDropped, Reason: DropFilteredBorder}
	}

	port := strings.TrimSpace(raw.Port)
	measure := strings.TrimSpace(raw.Measure)
	if port == "" || measure == "" {
		return CrossingRecord{}, ParseOutcome{Status: StatusDropped, Reason: DropMissingField}
	}

	date, err := time.Parse("Jan 2006", strings.TrimSpace(raw.Date))
	if err != nil {
		return CrossingRecord{}, ParseOutcome{Status: StatusDropped, Reason: DropBadDate}
	}

	value, zeroed := parseCount(raw.Value)

	rec := CrossingRecord{
		Port:        port,
		Measure:     measure,
		Year:        date.Year(),
		Month:       date.Month(),
		MonthAbbrev: date.Format("Jan"),
		Value:       value,
	}
	if zeroed {
		return rec, ParseOutcome{Status: StatusValueZeroed}
	}
	return rec, ParseOutcome{Status: StatusAccepted}
}

// ParseHistoryRecord parses one row of a per-port history CSV. Rows with a
// bad year or count are dropped whole; the intermediate files are generated,
// so a malformed row means the file was hand-edited or truncated and the safe
// move is to skip it.
func ParseHistoryRecord(year, month, measure, value string) (HistoryRecord, bool) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return HistoryRecord{}, false
	}
	m := strings.TrimSpace(month)
	name := strings.TrimSpace(measure)
	if m == "" || name == "" {
		return HistoryRecord{}, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return HistoryRecord{}, false
	}
	return HistoryRecord{Year: y, Month: m, Measure: name, Value: int(f)}, true
}

// parseCount parses a BTS count cell: empty means zero, float-formatted
// values are truncated, and anything unparsable degrades to zero. The second
// return reports whether the degrade policy fired.
func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true
	}
	return int(f), false
}
