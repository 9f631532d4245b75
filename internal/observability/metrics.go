package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wind_etl"

// Metrics holds the Prometheus counters, histograms, and gauges for the wind pipeline.
type Metrics struct {
	SamplesConsumed prometheus.Counter
	DeltasProduced  prometheus.Counter
	TransformErrors prometheus.Counter
	PipelineRunning prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Navigation feed metrics.
	NavigationUpdates    *prometheus.CounterVec // labels: field
	NavigationIgnored    prometheus.Counter
	LastNavigationUpdate prometheus.Gauge

	// Derived wind metrics.
	ApparentWindSpeed prometheus.Gauge
	TrueWindSpeed     prometheus.Gauge
	ComfortMetrics    *prometheus.CounterVec // labels: metric={wind_chill,heat_index}
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		SamplesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_consumed_total",
			Help:      "Total wind samples read from the source topic.",
		}),
		DeltasProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deltas_produced_total",
			Help:      "Total measurement deltas written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "Total messages skipped because they could not be decoded.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of wind samples per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-derive-load cycle.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		NavigationUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigation_updates_total",
			Help:      "Vessel state updates applied, by field.",
		}, []string{"field"}),
		NavigationIgnored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigation_ignored_total",
			Help:      "Navigation messages for fields the engine does not track.",
		}),
		LastNavigationUpdate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_navigation_message_timestamp_seconds",
			Help:      "Unix time of the last decoded navigation message.",
		}),
		ApparentWindSpeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "apparent_wind_speed_meters_per_second",
			Help:      "Apparent wind speed of the most recent sample.",
		}),
		TrueWindSpeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "true_wind_speed_meters_per_second",
			Help:      "True wind speed derived from the most recent sample.",
		}),
		ComfortMetrics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comfort_metrics_total",
			Help:      "Samples for which a comfort metric was within its validity range.",
		}, []string{"metric"}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.SamplesConsumed,
		m.DeltasProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.NavigationUpdates,
		m.NavigationIgnored,
		m.LastNavigationUpdate,
		m.ApparentWindSpeed,
		m.TrueWindSpeed,
		m.ComfortMetrics,
	}
}
