// Package ratelimit defines per-client request limiting.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Result contains the result of a rate limit check.
type Result struct {
	Allowed    bool
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// Limiter checks and consumes one token for key.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
}

const (
	// maxTrackedKeys bounds the local limiter's map before idle entries are swept.
	maxTrackedKeys = 10000
	// idleTimeout is how long a key may go unseen before it can be swept.
	idleTimeout = time.Minute
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Local is an in-process token bucket per key. It is used when no Redis
// is configured, so limits are per instance rather than global.
type Local struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// NewLocal creates a Local limiter allowing rps requests per second with the given burst.
func NewLocal(rps, burst int) *Local {
	if burst < 1 {
		burst = 1
	}
	return &Local{
		rps:     rate.Limit(rps),
		burst:   burst,
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// Allow consumes a token for key.
func (l *Local) Allow(_ context.Context, key string) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[key]
	if !ok {
		if len(l.entries) >= maxTrackedKeys {
			l.sweep(now)
		}
		e = &entry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now

	r := e.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	if delay > 0 {
		r.CancelAt(now)
		return &Result{
			Allowed:    false,
			Remaining:  0,
			ResetAt:    now.Add(delay),
			RetryAfter: roundUpSecond(delay),
		}, nil
	}

	return &Result{
		Allowed:   true,
		Remaining: int64(e.limiter.TokensAt(now)),
		ResetAt:   now.Add(time.Second),
	}, nil
}

// Len returns the number of tracked keys.
func (l *Local) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// sweep drops keys idle for longer than idleTimeout. Caller holds mu.
func (l *Local) sweep(now time.Time) {
	for k, e := range l.entries {
		if now.Sub(e.lastSeen) > idleTimeout {
			delete(l.entries, k)
		}
	}
}

func roundUpSecond(d time.Duration) time.Duration {
	if r := d % time.Second; r != 0 {
		d += time.Second - r
	}
	return d
}
