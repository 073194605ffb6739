// Package domain models Bureau of Transportation Statistics (BTS) border
// crossing entry data for Montana ports on the US-Canada border.
//
// # Data Source
//
// Raw records come from the BTS "Border Crossing Entry Data" CSV export,
// available at https://data.bts.gov/. Each row reports one measure (trucks,
// trains, pedestrians, ...) for one port of entry in one month. The ingest
// stage filters the export to State "Montana" and Border "US-Canada Border"
// and rewrites it as one history CSV per port.
//
// # BTS Data Conventions
//
// Date format:
//
//	"MMM YYYY" with an English three-letter month abbreviation, e.g. "Jan 2024".
//	Rows whose date does not parse are dropped; the rest of the row is useless
//	without a period to file it under.
//
// Value format:
//
//	A non-negative count, sometimes exported as a float ("1485.0") and
//	sometimes empty. Empty means zero. Unparsable values degrade to zero
//	rather than dropping the row, so one corrupt cell does not erase an
//	otherwise valid observation. [ParseRawRecord] reports which policy fired
//	through its [ParseOutcome].
//
// Measure names:
//
//	Free-text labels such as "Trucks", "Pedestrians", "Truck Containers Empty".
//	Classification into semantic categories (people, train, vehicle, container,
//	empty-container) uses normalized substring and allow-list rules; a single
//	measure can belong to several categories ("Truck Containers Empty" is both
//	container and empty-container). Two published rule sets disagree on whether
//	"person" counts as a people match, so both are exposed as named [RuleSet]
//	variants rather than silently picking one.
//
// Synthetic totals:
//
//	Total rows are derived, never read back into a new total: any measure whose
//	name starts with "total" is excluded from re-summation, which keeps a
//	second pass over already-totaled files from double counting.
//
// # Year-over-Year Deltas
//
// [YearDeltas] and [MonthDeltas] compare each year against the immediately
// preceding one. A missing side yields no change values at all (rendered as
// empty cells downstream, never zero), and a zero previous year yields no
// percent change (never infinity). Percent changes are rounded to six decimal
// places; trailing-zero trimming is a rendering concern left to the writers.
package domain
