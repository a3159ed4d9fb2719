package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncValidation is a no-op.
func (n *NoopRecorder) IncValidation(kind, result string) {}

// ObserveUpstreamCall is a no-op.
func (n *NoopRecorder) ObserveUpstreamCall(service, outcome string, duration time.Duration) {}

// IncMovieCacheHit is a no-op.
func (n *NoopRecorder) IncMovieCacheHit() {}

// IncMovieCacheMiss is a no-op.
func (n *NoopRecorder) IncMovieCacheMiss() {}

// IncRateLimited is a no-op.
func (n *NoopRecorder) IncRateLimited() {}
