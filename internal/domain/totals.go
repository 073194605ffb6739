package domain

import "strings"

// TotalMeasure is the name of the synthetic grand-total measure added by
// [SynthesizeGrandTotal].
const TotalMeasure = "Total"

// categoryTotalNames maps each category to its synthetic measure name, used
// by the aggregate stage's output files.
var categoryTotalNames = map[Category]string{
	CategoryPeople:         "Total People",
	CategoryTrain:          "Total Trains",
	CategoryVehicle:        "Total Vehicles",
	CategoryContainer:      "Total Containers",
	CategoryEmptyContainer: "Total Empty Containers",
}

// TotalName returns the synthetic measure name for a category total.
func TotalName(cat Category) string {
	return categoryTotalNames[cat]
}

// isSyntheticTotal reports whether a measure name denotes a derived total.
// Such measures never contribute to newly synthesized totals; the analysis
// and aggregate stages both re-read files that may already carry totals, and
// summing a total into a total double counts.
func isSyntheticTotal(measure string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(measure)), "total")
}

// SynthesizeGrandTotal adds a "Total" measure to the history summing every
// non-synthetic measure per (year, month) cell. Any existing "Total" entry is
// removed first and recomputed from scratch, never accumulated onto.
func SynthesizeGrandTotal(h PortHistory) {
	delete(h, TotalMeasure)
	total := make(MonthlySeries)
	for measure, series := range h {
		if isSyntheticTotal(measure) {
			continue
		}
		for year, cells := range series {
			for month, v := range cells {
				total.Add(year, month, v)
			}
		}
	}
	h[TotalMeasure] = total
}

// SynthesizeCategoryTotals derives one per-year series per category from
// per-measure annual totals, using the given rule set. Synthetic totals in
// the input are skipped. Every category is present in the result; a category
// with no matching measures maps to an empty series, which the delta engine
// renders as all-empty rows.
func SynthesizeCategoryTotals(annual map[string]YearSeries, rules RuleSet) map[Category]YearSeries {
	out := make(map[Category]YearSeries, len(Categories))
	for _, cat := range Categories {
		out[cat] = make(YearSeries)
	}
	for measure, years := range annual {
		if isSyntheticTotal(measure) {
			continue
		}
		for _, cat := range rules.Classify(measure) {
			out[cat].Merge(years)
		}
	}
	return out
}
