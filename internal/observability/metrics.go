package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the station dataset
// tooling. The sync metrics cover one-shot runs; the lookup metrics are
// exported by the serve command.
type Metrics struct {
	RecordsExtracted prometheus.Counter
	RecordsWritten   prometheus.Counter
	ValidationIssues prometheus.Counter
	DatasetSize      prometheus.Gauge
	SyncDuration     prometheus.Histogram

	LookupRequests *prometheus.CounterVec // label: outcome={hit,miss,unrecognized,error}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "station_data",
			Name:      "records_extracted_total",
			Help:      "Station records extracted from the markdown document.",
		}),
		RecordsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "station_data",
			Name:      "records_written_total",
			Help:      "Station records written to the CSV table.",
		}),
		ValidationIssues: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "station_data",
			Name:      "validation_issues_total",
			Help:      "Malformed rows reported during parsing and validation.",
		}),
		DatasetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "station_data",
			Name:      "dataset_size",
			Help:      "Stations in the merged table after the last sync.",
		}),
		SyncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "station_data",
			Name:      "sync_duration_seconds",
			Help:      "Duration of a complete extract-merge-write sync.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}),
		LookupRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "station_data",
			Name:      "lookup_requests_total",
			Help:      "Check-digit lookup requests by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.RecordsExtracted,
		m.RecordsWritten,
		m.ValidationIssues,
		m.DatasetSize,
		m.SyncDuration,
		m.LookupRequests,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsExtracted: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "station_data", Name: "records_extracted_total"}),
		RecordsWritten:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "station_data", Name: "records_written_total"}),
		ValidationIssues: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "station_data", Name: "validation_issues_total"}),
		DatasetSize:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "station_data", Name: "dataset_size"}),
		SyncDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "station_data", Name: "sync_duration_seconds"}),
		LookupRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "station_data", Name: "lookup_requests_total"}, []string{"outcome"}),
	}
}
