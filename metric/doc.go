// Package metric provides Prometheus-based metrics collection for the codec,
// the resolver and the catalogue.
//
// The package offers a registry wrapping a dedicated prometheus.Registry with
// the core metrics already registered (Metrics type) and an extension point
// for component-specific collectors (MetricsRegistrar interface). Duplicate
// registrations are reported as invalid-class errors; failures inside
// Prometheus itself are fatal-class.
//
// # Basic Usage
//
//	registry := metric.NewMetricsRegistry()
//	codec := representation.NewCodec(catalogue,
//	    representation.WithMetrics(registry.CoreMetrics()))
//
//	families, _ := registry.PrometheusRegistry().Gather()
//
// No HTTP endpoint is served from this module; callers embedding the registry
// can expose PrometheusRegistry() through their own handler.
package metric
