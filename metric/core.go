package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace is the Prometheus namespace of every metric in this module.
const Namespace = "kmdp"

// Metrics contains the core codec, resolver and catalogue metrics
type Metrics struct {
	CodecOperations   *prometheus.CounterVec
	DroppedTokens     *prometheus.CounterVec
	Resolutions       *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	ErrorsTotal       *prometheus.CounterVec
	CatalogueTerms    *prometheus.GaugeVec
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		CodecOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "codec",
				Name:      "operations_total",
				Help:      "Total number of representation encode/decode operations",
			},
			[]string{"operation", "status"},
		),

		DroppedTokens: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "codec",
				Name:      "dropped_tokens_total",
				Help:      "Decoded tokens without a catalogue entry",
			},
			[]string{"kind"},
		),

		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "resolver",
				Name:      "resolutions_total",
				Help:      "Term resolutions by outcome",
			},
			[]string{"kind", "outcome"},
		),

		OperationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "operation",
				Name:      "duration_seconds",
				Help:      "Operation duration in seconds",
				Buckets:   []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 1e-2},
			},
			[]string{"component", "operation"},
		),

		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "errors",
				Name:      "total",
				Help:      "Total number of errors by class",
			},
			[]string{"component", "class"},
		),

		CatalogueTerms: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Subsystem: "catalogue",
				Name:      "terms",
				Help:      "Registered catalogue entries by kind",
			},
			[]string{"kind"},
		),
	}
}

func (c *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.CodecOperations,
		c.DroppedTokens,
		c.Resolutions,
		c.OperationDuration,
		c.ErrorsTotal,
		c.CatalogueTerms,
	}
}

// RecordCodecOperation increments the codec operation counter
func (c *Metrics) RecordCodecOperation(operation, status string) {
	c.CodecOperations.WithLabelValues(operation, status).Inc()
}

// RecordDroppedToken counts a decoded token that had no catalogue entry
func (c *Metrics) RecordDroppedToken(kind string) {
	c.DroppedTokens.WithLabelValues(kind).Inc()
}

// RecordResolution increments the resolution counter
func (c *Metrics) RecordResolution(kind, outcome string) {
	c.Resolutions.WithLabelValues(kind, outcome).Inc()
}

// RecordDuration records operation time
func (c *Metrics) RecordDuration(component, operation string, duration time.Duration) {
	c.OperationDuration.WithLabelValues(component, operation).Observe(duration.Seconds())
}

// RecordError increments the error counter
func (c *Metrics) RecordError(component, class string) {
	c.ErrorsTotal.WithLabelValues(component, class).Inc()
}

// RecordCatalogueSize sets the number of registered entries for a kind
func (c *Metrics) RecordCatalogueSize(kind string, size int) {
	c.CatalogueTerms.WithLabelValues(kind).Set(float64(size))
}
