// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
type Recorder interface {
	// Validation endpoints. kind is "dni" or "phone"; result is the returned verdict.
	IncValidation(kind, result string)

	// Upstream calls. service is "joke" or "omdb"; outcome is "success" or "error".
	ObserveUpstreamCall(service, outcome string, duration time.Duration)

	// Movie search cache.
	IncMovieCacheHit()
	IncMovieCacheMiss()

	// Requests rejected by the IP rate limiter.
	IncRateLimited()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
