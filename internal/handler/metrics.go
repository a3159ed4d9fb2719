package handler

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/minimalapi/minimalapi/internal/metrics"
)

// MetricsHandler exposes metrics in Prometheus text format. When an exporter
// is set it serves every request; otherwise the in-memory snapshot is rendered.
type MetricsHandler struct {
	exporter    http.Handler
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a MetricsHandler backed by a Prometheus exporter.
func NewMetricsHandler(exporter http.Handler) *MetricsHandler {
	return &MetricsHandler{exporter: exporter}
}

// NewSnapshotMetricsHandler creates a MetricsHandler rendering in-memory counters.
func NewSnapshotMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics handles GET /metrics.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.exporter != nil {
		h.exporter.ServeHTTP(w, r)
		return
	}
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	for _, key := range sortedKeys(snap.Validations) {
		kind, result, _ := strings.Cut(key, ":")
		writeMetric(w, "minimalapi_validations_total{kind=%q,result=%q} %d\n", kind, result, snap.Validations[key])
	}
	// Same series names as the Prometheus histogram, without buckets.
	for _, key := range sortedKeys(snap.UpstreamCalls) {
		svc, outcome, _ := strings.Cut(key, ":")
		writeMetric(w, "minimalapi_upstream_request_duration_seconds_count{outcome=%q,service=%q} %d\n", outcome, svc, snap.UpstreamCalls[key])
		writeMetric(w, "minimalapi_upstream_request_duration_seconds_sum{outcome=%q,service=%q} %.6f\n", outcome, svc, float64(snap.UpstreamDurationNs[key])/1e9)
	}

	writeMetric(w, "minimalapi_movie_cache_lookups_total{result=\"hit\"} %d\n", snap.MovieCacheHits)
	writeMetric(w, "minimalapi_movie_cache_lookups_total{result=\"miss\"} %d\n", snap.MovieCacheMisses)
	writeMetric(w, "minimalapi_rate_limited_requests_total %d\n", snap.RateLimitedRequests)
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
