package domain

import "math"

// DeltaRow is one year's comparison against the immediately preceding year.
// Current and Previous are nil when the series has no data for that year.
// AbsoluteChange is present iff both sides are; PctChange additionally
// requires a non-zero previous value.
type DeltaRow struct {
	Year           int
	Current        *int
	Previous       *int
	AbsoluteChange *int
	PctChange      *float64
}

// YearDeltas computes year-over-year changes for every year in
// [startYear, endYear] inclusive. Years outside the series produce rows with
// nil values rather than being skipped, so fixed reporting ranges render as
// empty cells instead of missing rows.
func YearDeltas(series YearSeries, startYear, endYear int) []DeltaRow {
	rows := make([]DeltaRow, 0, endYear-startYear+1)
	for y := startYear; y <= endYear; y++ {
		rows = append(rows, deltaFor(series, y))
	}
	return rows
}

// MonthDeltas computes year-over-year changes for a single month label across
// the given years. The month is held fixed; January is only ever compared
// against the previous January.
func MonthDeltas(series MonthlySeries, month string, years []int) []DeltaRow {
	rows := make([]DeltaRow, 0, len(years))
	for _, y := range years {
		rows = append(rows, deltaFor(monthSlice(series, month), y))
	}
	return rows
}

// monthSlice projects one month's values out of a monthly series.
func monthSlice(series MonthlySeries, month string) YearSeries {
	out := make(YearSeries, len(series))
	for y, cells := range series {
		if v, ok := cells[month]; ok {
			out[y] = v
		}
	}
	return out
}

func deltaFor(series YearSeries, year int) DeltaRow {
	row := DeltaRow{Year: year}
	if cur, ok := series[year]; ok {
		row.Current = &cur
	}
	if prev, ok := series[year-1]; ok {
		row.Previous = &prev
	}
	if row.Current == nil || row.Previous == nil {
		return row
	}

	abs := *row.Current - *row.Previous
	row.AbsoluteChange = &abs
	if *row.Previous != 0 {
		pct := roundPct(float64(abs) / float64(*row.Previous) * 100)
		row.PctChange = &pct
	}
	return row
}

// roundPct rounds to six decimal places. The engine persists the rounded
// value; trimming trailing zeros for display is the writers' concern.
func roundPct(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
