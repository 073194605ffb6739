package domain

import "time"

// Filter constants for the raw ingestion stage. Rows for any other state or
// border are dropped before grouping.
const (
	FilterState  = "Montana"
	FilterBorder = "US-Canada Border"
)

// RawCrossingRecord is one row of the BTS export, untouched. All fields are
// strings exactly as they appear in the CSV.
type RawCrossingRecord struct {
	State   string
	Border  string
	Port    string
	Date    string // "MMM YYYY", e.g. "Jan 2024"
	Measure string
	Value   string // count, possibly empty or float-formatted
}

// CrossingRecord is the normalized form produced by [ParseRawRecord].
type CrossingRecord struct {
	Port        string
	Measure     string
	Year        int
	Month       time.Month
	MonthAbbrev string // "Jan".."Dec"
	Value       int
}

// ParseStatus describes how a raw row was handled.
type ParseStatus int

const (
	// StatusAccepted means the row parsed cleanly.
	StatusAccepted ParseStatus = iota
	// StatusValueZeroed means the row was kept but its unparsable value was
	// coerced to zero.
	StatusValueZeroed
	// StatusDropped means the row was discarded entirely.
	StatusDropped
)

// DropReason identifies why a row was dropped or degraded.
type DropReason string

const (
	DropNone           DropReason = ""
	DropFilteredState  DropReason = "filtered_state"
	DropFilteredBorder DropReason = "filtered_border"
	DropMissingField   DropReason = "missing_field"
	DropBadDate        DropReason = "bad_date"
)

// ParseOutcome reports the parse policy applied to one row, so callers can
// count dropped and zeroed rows separately instead of relying on catch-all
// behavior.
type ParseOutcome struct {
	Status ParseStatus
	Reason DropReason
}

// Accepted reports whether the row produced a usable record.
func (o ParseOutcome) Accepted() bool {
	return o.Status != StatusDropped
}

// HistoryRecord is one row of a per-port history CSV
// (year,month,crossingType,numberOfCrossings) produced by the ingest stage.
type HistoryRecord struct {
	Year    int
	Month   string // "Jan".."Dec"
	Measure string
	Value   int
}
