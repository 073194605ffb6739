package domain

import (
	"sort"
	"time"
)

// monthOrder is the calendar order used everywhere months are listed.
var monthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// YearSeries maps year to an accumulated count. A missing year means "no
// data", which is distinct from a zero count.
type YearSeries map[int]int

// Add accumulates a count for a year.
func (s YearSeries) Add(year, count int) {
	s[year] = s[year] + count
}

// Merge adds every entry of other into s. Used to fold per-port series into
// the combined "All Ports" series; addition is commutative, so merge order
// does not affect totals.
func (s YearSeries) Merge(other YearSeries) {
	for y, v := range other {
		s[y] += v
	}
}

// MonthlySeries maps year to month abbreviation to an accumulated count.
type MonthlySeries map[int]map[string]int

// Add accumulates a count for a (year, month) cell.
func (s MonthlySeries) Add(year int, month string, count int) {
	cells, ok := s[year]
	if !ok {
		cells = make(map[string]int)
		s[year] = cells
	}
	cells[month] += count
}

// Annual sums each year's months into a YearSeries.
func (s MonthlySeries) Annual() YearSeries {
	out := make(YearSeries, len(s))
	for y, cells := range s {
		total := 0
		for _, v := range cells {
			total += v
		}
		out[y] = total
	}
	return out
}

// PortHistory accumulates one port's records as measure → year → month →
// count. It is the in-memory form of a per-port history CSV and the input to
// total synthesis and delta computation.
type PortHistory map[string]MonthlySeries

// NewPortHistory returns an empty accumulator.
func NewPortHistory() PortHistory {
	return make(PortHistory)
}

// Add accumulates one history record. Colliding keys sum, so accumulation
// order never changes the result.
func (h PortHistory) Add(rec HistoryRecord) {
	series, ok := h[rec.Measure]
	if !ok {
		series = make(MonthlySeries)
		h[rec.Measure] = series
	}
	series.Add(rec.Year, rec.Month, rec.Value)
}

// Measures returns the measure names in sorted order.
func (h PortHistory) Measures() []string {
	out := make([]string, 0, len(h))
	for m := range h {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// Years returns every year present in any measure, ascending.
func (h PortHistory) Years() []int {
	seen := make(map[int]bool)
	for _, series := range h {
		for y := range series {
			seen[y] = true
		}
	}
	out := make([]int, 0, len(seen))
	for y := range seen {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// Months returns every month present in any measure, in calendar order.
func (h PortHistory) Months() []string {
	seen := make(map[string]bool)
	for _, series := range h {
		for _, cells := range series {
			for m := range cells {
				seen[m] = true
			}
		}
	}
	out := make([]string, 0, len(seen))
	for _, m := range monthOrder {
		if seen[m] {
			out = append(out, m)
		}
	}
	return out
}

// Annual reduces every measure to its per-year totals.
func (h PortHistory) Annual() map[string]YearSeries {
	out := make(map[string]YearSeries, len(h))
	for measure, series := range h {
		out[measure] = series.Annual()
	}
	return out
}

// CrossingKey identifies one accumulated cell during raw ingestion.
type CrossingKey struct {
	Year        int
	Month       time.Month
	MonthAbbrev string
	Measure     string
}

// Accumulator groups normalized raw records per port during ingestion,
// summing duplicate (port, year, month, measure) keys.
type Accumulator map[string]map[CrossingKey]int

// NewAccumulator returns an empty ingestion accumulator.
func NewAccumulator() Accumulator {
	return make(Accumulator)
}

// Add accumulates one normalized record.
func (a Accumulator) Add(rec CrossingRecord) {
	cells, ok := a[rec.Port]
	if !ok {
		cells = make(map[CrossingKey]int)
		a[rec.Port] = cells
	}
	key := CrossingKey{
		Year:        rec.Year,
		Month:       rec.Month,
		MonthAbbrev: rec.MonthAbbrev,
		Measure:     rec.Measure,
	}
	cells[key] += rec.Value
}

// Ports returns the accumulated port names in sorted order, for deterministic
// output.
func (a Accumulator) Ports() []string {
	out := make([]string, 0, len(a))
	for p := range a {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// SortedKeys returns one port's cells in chronological order, breaking month
// ties by measure name.
func (a Accumulator) SortedKeys(port string) []CrossingKey {
	cells := a[port]
	out := make([]CrossingKey, 0, len(cells))
	for k := range cells {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Measure < out[j].Measure
	})
	return out
}

// Count returns the accumulated value for one of a port's cells.
func (a Accumulator) Count(port string, key CrossingKey) int {
	return a[port][key]
}
