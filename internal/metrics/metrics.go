package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for completion calls
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics holds the collectors exported by a Mixoholic process
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPDurationSeconds *prometheus.HistogramVec

	CompletionRequests        *prometheus.CounterVec
	CompletionDurationSeconds *prometheus.HistogramVec
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mixoholic_http_requests_total",
				Help: "HTTP requests handled, by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mixoholic_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		// Completion calls
		CompletionRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mixoholic_completion_requests_total",
				Help: "Completion API calls, by operation (generate|refine) and outcome",
			},
			[]string{"operation", "outcome"},
		),
		CompletionDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mixoholic_completion_duration_seconds",
				Help:    "Completion API call latency",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 9), // 0.25s..64s
			},
			[]string{"operation"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDurationSeconds,
		m.CompletionRequests,
		m.CompletionDurationSeconds,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveCompletion records one completion call. Safe on a nil receiver.
func (m *Metrics) ObserveCompletion(operation string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.CompletionRequests.WithLabelValues(operation, outcome).Inc()
	m.CompletionDurationSeconds.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveHTTP records one handled HTTP request. Safe on a nil receiver.
func (m *Metrics) ObserveHTTP(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDurationSeconds.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
