package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minimalapi/minimalapi/internal/metrics"
)

func TestJokeClient_Random(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("unexpected user agent %q", r.Header.Get("User-Agent"))
		}
		_, _ = w.Write([]byte("Why did the gopher cross the road?\n"))
	}))
	defer srv.Close()

	rec := metrics.NewInMemory()
	c := NewJokeClient(srv.Client(), srv.URL, rec)

	joke, err := c.Random(context.Background())
	if err != nil {
		t.Fatalf("Random error: %v", err)
	}
	if joke != "Why did the gopher cross the road?" {
		t.Errorf("unexpected joke %q", joke)
	}
	if rec.Snapshot().UpstreamCalls["joke:success"] != 1 {
		t.Error("expected joke success to be recorded")
	}
}

func TestJokeClient_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	rec := metrics.NewInMemory()
	c := NewJokeClient(srv.Client(), srv.URL, rec)

	if _, err := c.Random(context.Background()); !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if rec.Snapshot().UpstreamCalls["joke:error"] != 1 {
		t.Error("expected joke error to be recorded")
	}
}

func TestJokeClient_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewJokeClient(NewHTTPClient(0), url, nil)
	if _, err := c.Random(context.Background()); !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestMovieClient_ByDirector(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apikey") != "secret" || q.Get("type") != "movie" || q.Get("s") != "Nolan" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"True","Search":[
			{"Title":"Memento","Year":"2000","imdbID":"tt0209144","Type":"movie"},
			{"Title":"Inception","Year":"2010","imdbID":"tt1375666","Type":"movie"}
		]}`))
	}))
	defer srv.Close()

	c := NewMovieClient(srv.Client(), srv.URL, "secret", nil)

	movies, err := c.ByDirector(context.Background(), "Nolan")
	if err != nil {
		t.Fatalf("ByDirector error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
	if movies[0].Title != "Memento" || movies[1].IMDbID != "tt1375666" {
		t.Errorf("unexpected movies: %+v", movies)
	}
}

func TestMovieClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"rejected", http.StatusOK, `{"Response":"False","Error":"Movie not found!"}`, ErrUpstreamRejected, "Movie not found!"},
		{"bad_status", http.StatusInternalServerError, ``, ErrUpstreamUnavailable, "status 500"},
		{"bad_json", http.StatusOK, `<html>`, ErrInvalidResponse, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewMovieClient(srv.Client(), srv.URL, "secret", nil)
			_, err := c.ByDirector(context.Background(), "Nobody")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q missing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestMovieClient_ErrorDoesNotLeakKey(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewMovieClient(NewHTTPClient(0), url, "topsecretkey", nil)
	_, err := c.ByDirector(context.Background(), "Nolan")
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Contains(err.Error(), "topsecretkey") {
		t.Errorf("error leaks api key: %v", err)
	}
}
