// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/minimalapi/minimalapi/internal/cache"
	"github.com/minimalapi/minimalapi/internal/metrics"
	"github.com/minimalapi/minimalapi/internal/upstream"
)

// Service errors.
var (
	ErrDirectorRequired = errors.New("director is required")
	ErrDirectorTooLong  = errors.New("director exceeds maximum length")
)

const maxDirectorLength = 200

// MovieSearcher looks movies up by director.
type MovieSearcher interface {
	ByDirector(ctx context.Context, director string) ([]upstream.Movie, error)
}

// MovieCache stores search results. Implemented by *cache.Cache.
type MovieCache interface {
	GetMovies(ctx context.Context, director string) ([]upstream.Movie, error)
	SetMovies(ctx context.Context, director string, movies []upstream.Movie, ttl time.Duration) error
}

// MovieService searches movies by director with an optional read-through cache.
type MovieService struct {
	searcher MovieSearcher
	cache    MovieCache
	ttl      time.Duration
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewMovieService creates a MovieService. movieCache may be nil to disable caching.
func NewMovieService(searcher MovieSearcher, movieCache MovieCache, ttl time.Duration, recorder metrics.Recorder, logger *slog.Logger) *MovieService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MovieService{
		searcher: searcher,
		cache:    movieCache,
		ttl:      ttl,
		metrics:  recorder,
		logger:   logger,
	}
}

// ByDirector returns the movies matching director. Cache failures are logged
// and never fail the lookup.
func (s *MovieService) ByDirector(ctx context.Context, director string) ([]upstream.Movie, error) {
	director = strings.TrimSpace(director)
	if director == "" {
		return nil, ErrDirectorRequired
	}
	if len(director) > maxDirectorLength {
		return nil, ErrDirectorTooLong
	}

	if s.cache != nil {
		movies, err := s.cache.GetMovies(ctx, director)
		switch {
		case err == nil:
			s.metrics.IncMovieCacheHit()
			return movies, nil
		case errors.Is(err, cache.ErrCacheMiss):
			s.metrics.IncMovieCacheMiss()
		default:
			s.metrics.IncMovieCacheMiss()
			s.logger.Warn("movie cache read failed", slog.String("error", err.Error()))
		}
	}

	movies, err := s.searcher.ByDirector(ctx, director)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMovies(ctx, director, movies, s.ttl); err != nil {
			s.logger.Warn("movie cache write failed", slog.String("error", err.Error()))
		}
	}

	return movies, nil
}
