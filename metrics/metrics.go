package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "salestracker"

// Aggregation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeCacheHit = "cache_hit"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
)

// Metrics owns a private registry so several instances can coexist in tests.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
	aggregations        *prometheus.CounterVec
	aggregationDuration prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		aggregations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_aggregations_total",
			Help:      "Revenue aggregations by outcome.",
		}, []string{"outcome"}),
		aggregationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "revenue_aggregation_duration_seconds",
			Help:      "Time spent computing revenue aggregations.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveAggregation(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.aggregations.WithLabelValues(outcome).Inc()
	if outcome != OutcomeCacheHit {
		m.aggregationDuration.Observe(elapsed.Seconds())
	}
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
