package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minimalapi/minimalapi/internal/metrics"
	"github.com/minimalapi/minimalapi/internal/ratelimit"
)

type stubLimiter struct {
	result *ratelimit.Result
	err    error
	keys   []string
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (*ratelimit.Result, error) {
	s.keys = append(s.keys, key)
	return s.result, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimitIP_Allowed(t *testing.T) {
	t.Parallel()

	limiter := &stubLimiter{result: &ratelimit.Result{Allowed: true, Remaining: 4, ResetAt: time.Unix(1700000000, 0)}}
	handler := RateLimitIP(RateLimitConfig{Logger: discardLogger(), Limiter: limiter, Enabled: true})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/tellmeajoke", nil)
	req.RemoteAddr = "198.51.100.7:54321"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "4" {
		t.Errorf("X-RateLimit-Remaining = %q, want 4", got)
	}
	if got := rec.Header().Get("X-RateLimit-Reset"); got != "1700000000" {
		t.Errorf("X-RateLimit-Reset = %q", got)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "198.51.100.7" {
		t.Errorf("expected limiter keyed by host, got %v", limiter.keys)
	}
}

func TestRateLimitIP_Denied(t *testing.T) {
	t.Parallel()

	limiter := &stubLimiter{result: &ratelimit.Result{Allowed: false, RetryAfter: 3 * time.Second, ResetAt: time.Now()}}
	rec := metrics.NewInMemory()
	handler := RateLimitIP(RateLimitConfig{Logger: discardLogger(), Limiter: limiter, Metrics: rec, Enabled: true})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/moviesbydirector?director=x", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "3" {
		t.Errorf("Retry-After = %q, want 3", got)
	}
	if rec.Snapshot().RateLimitedRequests != 1 {
		t.Error("expected rate limited metric to be recorded")
	}
}

func TestRateLimitIP_FailOpen(t *testing.T) {
	t.Parallel()

	limiter := &stubLimiter{err: errors.New("redis down")}
	handler := RateLimitIP(RateLimitConfig{Logger: discardLogger(), Limiter: limiter, Enabled: true})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tellmeajoke", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 on limiter error", rec.Code)
	}
}

func TestRateLimitIP_Disabled(t *testing.T) {
	t.Parallel()

	limiter := &stubLimiter{result: &ratelimit.Result{Allowed: false}}
	handler := RateLimitIP(RateLimitConfig{Logger: discardLogger(), Limiter: limiter, Enabled: false})(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tellmeajoke", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 when disabled", rec.Code)
	}
	if len(limiter.keys) != 0 {
		t.Error("limiter should not be consulted when disabled")
	}
}

func TestRateLimitIP_WithLocalLimiter(t *testing.T) {
	t.Parallel()

	handler := RateLimitIP(RateLimitConfig{
		Logger:  discardLogger(),
		Limiter: ratelimit.NewLocal(1, 2),
		Enabled: true,
	})(okHandler())

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/tellmeajoke", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	if statuses[0] != http.StatusOK || statuses[1] != http.StatusOK || statuses[2] != http.StatusTooManyRequests {
		t.Errorf("unexpected statuses %v", statuses)
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		remote string
		want   string
	}{
		{"192.0.2.1:1234", "192.0.2.1"},
		{"[2001:db8::1]:443", "2001:db8::1"},
		{"192.0.2.1", "192.0.2.1"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.remote
		if got := clientIP(req); got != tt.want {
			t.Errorf("clientIP(%q) = %q, want %q", tt.remote, got, tt.want)
		}
	}
}
