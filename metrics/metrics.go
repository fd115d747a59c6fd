// Package metrics owns the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lexabu/woman-owned.com/ratelimit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Form outcomes recorded by the form handlers
const (
	OutcomeAccepted   = "accepted"
	OutcomeInvalid    = "invalid"
	OutcomeLimited    = "rate_limited"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)

// Metrics is a private registry plus the collectors registered on it
type Metrics struct {
	registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	rateLimit     *prometheus.CounterVec
	formsReceived *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	botBlocks     *prometheus.CounterVec
}

// New creates the collectors on a fresh registry, including the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "womanowned_http_requests_total",
			Help: "HTTP requests by route template, method and status code",
		}, []string{"route", "method", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "womanowned_http_request_duration_seconds",
			Help:    "HTTP request latency by route template",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		}, []string{"route"}),
		rateLimit: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "womanowned_ratelimit_decisions_total",
			Help: "Submission limiter decisions by endpoint and outcome",
		}, []string{"limiter", "outcome"}), // outcome: allowed, rejected
		formsReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "womanowned_form_submissions_total",
			Help: "Form posts by form and outcome",
		}, []string{"form", "outcome"}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "womanowned_response_cache_lookups_total",
			Help: "Directory response cache lookups by result",
		}, []string{"result"}), // result: hit, miss
		botBlocks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "womanowned_bot_blocks_total",
			Help: "Form posts blocked by bot detection, by reason",
		}, []string{"reason"}),
	}
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one served request
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveRateLimit has the shape of a ratelimit observer
func (m *Metrics) ObserveRateLimit(limiter string, d ratelimit.Decision) {
	outcome := "allowed"
	if !d.Allowed {
		outcome = "rejected"
	}
	m.rateLimit.WithLabelValues(limiter, outcome).Inc()
}

// ObserveForm records the outcome of one form post
func (m *Metrics) ObserveForm(form, outcome string) {
	m.formsReceived.WithLabelValues(form, outcome).Inc()
}

// ObserveCache records one response cache lookup
func (m *Metrics) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveBotBlock records one blocked form post
func (m *Metrics) ObserveBotBlock(reason string) {
	m.botBlocks.WithLabelValues(reason).Inc()
}

// TrackMemoryStore exports the size and eviction count of a limiter store
func (m *Metrics) TrackMemoryStore(limiter string, store *ratelimit.MemoryStore) {
	labels := prometheus.Labels{"limiter": limiter}
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "womanowned_ratelimit_tracked_keys",
			Help:        "Client keys currently tracked by the in-memory limiter store",
			ConstLabels: labels,
		}, func() float64 { return float64(store.Len()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name:        "womanowned_ratelimit_evictions_total",
			Help:        "Client keys evicted because the in-memory limiter store was full",
			ConstLabels: labels,
		}, func() float64 { return float64(store.Evicted()) }),
	)
}
