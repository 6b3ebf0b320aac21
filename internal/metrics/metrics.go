// Package metrics exposes Prometheus counters for package generation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of one API server. Each instance owns its
// registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	PackagesGenerated *prometheus.CounterVec
	GenerationsFailed *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PackagesGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricingos_package_sets_generated_total",
				Help: "Total number of Starter/Standard/Premium package sets generated",
			},
			[]string{"category", "client_type", "positioning"},
		),
		GenerationsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricingos_generations_failed_total",
				Help: "Total number of rejected generation requests",
			},
			[]string{"endpoint", "error_code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricingos_request_duration_seconds",
				Help:    "Duration of API requests in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"endpoint"},
		),
	}
}

// Registry returns the underlying registry, for tests and custom exporters.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
