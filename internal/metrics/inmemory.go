package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Validations         map[string]uint64 // keyed by "kind:result"
	UpstreamCalls       map[string]uint64 // keyed by "service:outcome"
	UpstreamDurationNs  map[string]int64  // keyed like UpstreamCalls
	MovieCacheHits      uint64
	MovieCacheMisses    uint64
	RateLimitedRequests uint64
}

// InMemoryRecorder stores metrics in memory. It backs /metrics when the
// Prometheus exporter is disabled.
type InMemoryRecorder struct {
	mu                 sync.Mutex
	validations        map[string]uint64
	upstreamCalls      map[string]uint64
	upstreamDurationNs map[string]int64
	movieCacheHits     uint64
	movieCacheMisses   uint64
	rateLimited        uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		validations:        make(map[string]uint64),
		upstreamCalls:      make(map[string]uint64),
		upstreamDurationNs: make(map[string]int64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Validations:         make(map[string]uint64, len(m.validations)),
		UpstreamCalls:       make(map[string]uint64, len(m.upstreamCalls)),
		UpstreamDurationNs:  make(map[string]int64, len(m.upstreamDurationNs)),
		MovieCacheHits:      atomic.LoadUint64(&m.movieCacheHits),
		MovieCacheMisses:    atomic.LoadUint64(&m.movieCacheMisses),
		RateLimitedRequests: atomic.LoadUint64(&m.rateLimited),
	}
	for k, v := range m.validations {
		snap.Validations[k] = v
	}
	for k, v := range m.upstreamCalls {
		snap.UpstreamCalls[k] = v
	}
	for k, v := range m.upstreamDurationNs {
		snap.UpstreamDurationNs[k] = v
	}
	return snap
}

// IncValidation increments the validation counter for kind and result.
func (m *InMemoryRecorder) IncValidation(kind, result string) {
	m.mu.Lock()
	m.validations[kind+":"+result]++
	m.mu.Unlock()
}

// ObserveUpstreamCall records an upstream call.
func (m *InMemoryRecorder) ObserveUpstreamCall(service, outcome string, duration time.Duration) {
	key := service + ":" + outcome
	m.mu.Lock()
	m.upstreamCalls[key]++
	m.upstreamDurationNs[key] += duration.Nanoseconds()
	m.mu.Unlock()
}

// IncMovieCacheHit increments cache hit counter.
func (m *InMemoryRecorder) IncMovieCacheHit() {
	atomic.AddUint64(&m.movieCacheHits, 1)
}

// IncMovieCacheMiss increments cache miss counter.
func (m *InMemoryRecorder) IncMovieCacheMiss() {
	atomic.AddUint64(&m.movieCacheMisses, 1)
}

// IncRateLimited increments the rate limited counter.
func (m *InMemoryRecorder) IncRateLimited() {
	atomic.AddUint64(&m.rateLimited, 1)
}
