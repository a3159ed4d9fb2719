package upstream

import "errors"

// Sentinel errors for upstream calls.
var (
	// ErrUpstreamUnavailable covers transport failures and non-2xx responses.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamRejected means the upstream answered but reported a failure.
	ErrUpstreamRejected = errors.New("upstream rejected request")
	// ErrInvalidResponse means the upstream body could not be decoded.
	ErrInvalidResponse = errors.New("invalid upstream response")
)
