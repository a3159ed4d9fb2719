package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder exports metrics through a dedicated Prometheus registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	validations      *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	movieCache       *prometheus.CounterVec
	rateLimited      prometheus.Counter
}

// NewPrometheus creates and registers all collectors on a fresh registry,
// including the Go runtime and process collectors.
func NewPrometheus() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		registry: reg,
		validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "minimalapi_validations_total",
			Help: "Validation requests by kind and result",
		}, []string{"kind", "result"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "minimalapi_upstream_request_duration_seconds",
			Help:    "Duration of calls to third-party APIs",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "outcome"}),
		movieCache: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "minimalapi_movie_cache_lookups_total",
			Help: "Movie search cache lookups by result",
		}, []string{"result"}),
		rateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "minimalapi_rate_limited_requests_total",
			Help: "Requests rejected by the IP rate limiter",
		}),
	}
}

// Handler serves the registry in Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (p *PrometheusRecorder) Registry() *prometheus.Registry {
	return p.registry
}

// IncValidation increments the validation counter.
func (p *PrometheusRecorder) IncValidation(kind, result string) {
	p.validations.WithLabelValues(kind, result).Inc()
}

// ObserveUpstreamCall records an upstream call duration.
func (p *PrometheusRecorder) ObserveUpstreamCall(service, outcome string, duration time.Duration) {
	p.upstreamDuration.WithLabelValues(service, outcome).Observe(duration.Seconds())
}

// IncMovieCacheHit increments the cache hit counter.
func (p *PrometheusRecorder) IncMovieCacheHit() {
	p.movieCache.WithLabelValues("hit").Inc()
}

// IncMovieCacheMiss increments the cache miss counter.
func (p *PrometheusRecorder) IncMovieCacheMiss() {
	p.movieCache.WithLabelValues("miss").Inc()
}

// IncRateLimited increments the rate limited counter.
func (p *PrometheusRecorder) IncRateLimited() {
	p.rateLimited.Inc()
}
