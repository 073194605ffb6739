package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the ETL run.
// The CLI has no scrape endpoint; final values are logged in the run summary
// and the collectors are asserted on directly in tests.
type Metrics struct {
	RowsRead   prometheus.Counter
	RowsZeroed prometheus.Counter
	// RowsDropped is labelled by drop reason: filtered_state, filtered_border,
	// missing_field, bad_date.
	RowsDropped *prometheus.CounterVec

	HistoryRowsSkipped prometheus.Counter
	PortsProcessed     prometheus.Counter
	ReportsWritten     prometheus.Counter

	// StageDuration is labelled by stage: ingest, analyze, aggregate.
	StageDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all run metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsRead,
		m.RowsZeroed,
		m.RowsDropped,
		m.HistoryRowsSkipped,
		m.PortsProcessed,
		m.ReportsWritten,
		m.StageDuration,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering, so parallel tests
// never hit "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "border_etl",
			Name:      "rows_read_total",
			Help:      "Raw rows read from the BTS export.",
		}),
		RowsZeroed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "border_etl",
			Name:      "rows_value_zeroed_total",
			Help:      "Rows kept with an unparsable value coerced to zero.",
		}),
		RowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "border_etl",
			Name:      "rows_dropped_total",
			Help:      "Rows discarded during raw ingestion, by reason.",
		}, []string{"reason"}),
		HistoryRowsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "border_etl",
			Name:      "history_rows_skipped_total",
			Help:      "Malformed rows skipped while reading history files.",
		}),
		PortsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "border_etl",
			Name:      "ports_processed_total",
			Help:      "Ports for which reports were generated.",
		}),
		ReportsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "border_etl",
			Name:      "reports_written_total",
			Help:      "Output CSV files written.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "border_etl",
			Name:      "stage_duration_seconds",
			Help:      "Wall time per pipeline stage.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"stage"}),
	}
}
