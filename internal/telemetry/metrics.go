package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Hint outcomes recorded by Metrics.ObserveHint.
const (
	OutcomeHint      = "hint"
	OutcomeNoHint    = "no_hint"
	OutcomeMalformed = "malformed"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// Metrics holds the service's Prometheus collectors on a private registry,
// so several servers can coexist in one process. A nil *Metrics records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	hintsTotal      *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		hintsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blockhint",
			Name:      "hints_total",
			Help:      "Hint requests by category and outcome",
		}, []string{"category", "outcome"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "blockhint",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		}, []string{"route", "status"}),
	}
}

// ObserveHint counts one hint request. category is empty when
// classification failed.
func (m *Metrics) ObserveHint(category, outcome string) {
	if m == nil {
		return
	}
	if category == "" {
		category = "none"
	}
	m.hintsTotal.WithLabelValues(category, outcome).Inc()
}

// ObserveRequest records one HTTP request's latency.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, status).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
