package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// defaultBuckets are the histogram buckets for duration metrics (in seconds).
var defaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Upstream provider metrics
	ProviderRequestsTotal *prometheus.CounterVec
	ProviderErrorsTotal   *prometheus.CounterVec

	// Signal outcome metrics
	AdviceTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "signal_service",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "signal_service",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   defaultBuckets,
			},
			[]string{"method", "path"},
		),
		ProviderRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "signal_service",
				Subsystem: "provider",
				Name:      "requests_total",
				Help:      "Total number of market-data provider requests",
			},
			[]string{"operation"},
		),
		ProviderErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "signal_service",
				Subsystem: "provider",
				Name:      "errors_total",
				Help:      "Total number of market-data provider errors",
			},
			[]string{"operation"},
		),
		AdviceTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "signal_service",
				Subsystem: "scoring",
				Name:      "advice_total",
				Help:      "Total number of emitted advice labels",
			},
			[]string{"advice"},
		),
	}
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordProviderRequest records a market-data provider call.
func (m *Metrics) RecordProviderRequest(operation string) {
	m.ProviderRequestsTotal.WithLabelValues(operation).Inc()
}

// RecordProviderError records a failed market-data provider call.
func (m *Metrics) RecordProviderError(operation string) {
	m.ProviderErrorsTotal.WithLabelValues(operation).Inc()
}

// RecordAdvice records an emitted advice or signal label.
func (m *Metrics) RecordAdvice(advice string) {
	m.AdviceTotal.WithLabelValues(advice).Inc()
}
