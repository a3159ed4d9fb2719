// Package testutil provides shared helpers for package and end-to-end tests.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/redis/go-redis/v9"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ============================================================================
// Fake upstreams
// ============================================================================

// FakeUpstream is an httptest server that counts the requests it receives.
type FakeUpstream struct {
	*httptest.Server
	hits atomic.Int64
}

// Hits returns the number of requests served.
func (f *FakeUpstream) Hits() int64 {
	return f.hits.Load()
}

func newFakeUpstream(t testing.TB, h http.HandlerFunc) *FakeUpstream {
	t.Helper()
	f := &FakeUpstream{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		h(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

// NewJokeServer serves joke as plain text, or fails with status when status is not 200.
func NewJokeServer(t testing.TB, status int, joke string) *FakeUpstream {
	t.Helper()
	return newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(joke))
	})
}

// OMDbMovie mirrors one search hit in the OMDb wire format.
type OMDbMovie struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
}

// NewOMDbServer answers searches from a director-keyed catalog. Unknown
// directors get OMDb's "Movie not found!" failure envelope.
func NewOMDbServer(t testing.TB, catalog map[string][]OMDbMovie) *FakeUpstream {
	t.Helper()
	return newFakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		movies, ok := catalog[r.URL.Query().Get("s")]
		if !ok {
			_ = json.NewEncoder(w).Encode(map[string]string{
				"Response": "False",
				"Error":    "Movie not found!",
			})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"Response":     "True",
			"Search":       movies,
			"totalResults": fmt.Sprint(len(movies)),
		})
	})
}
