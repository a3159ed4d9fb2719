package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minimalapi/minimalapi/internal/upstream"
)

const (
	moviesKeyPrefix = "movies:director:"

	// DefaultMoviesTTL is the TTL for cached search results.
	DefaultMoviesTTL = 6 * time.Hour
)

// ErrCacheMiss is returned when a key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// GetMovies retrieves cached search results for a director.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetMovies(ctx context.Context, director string) ([]upstream.Movie, error) {
	data, err := c.client.Get(ctx, moviesKey(director)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var movies []upstream.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		// Corrupt entry; drop it so the next lookup repopulates.
		c.client.Del(ctx, moviesKey(director))
		return nil, ErrCacheMiss
	}
	return movies, nil
}

// SetMovies stores search results for a director. A non-positive ttl uses DefaultMoviesTTL.
func (c *Cache) SetMovies(ctx context.Context, director string, movies []upstream.Movie, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultMoviesTTL
	}

	data, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("encode movies: %w", err)
	}

	if err := c.client.Set(ctx, moviesKey(director), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// moviesKey normalizes the director so "Nolan" and " nolan" share an entry,
// and hashes it to keep arbitrary user input out of key names.
func moviesKey(director string) string {
	normalized := strings.ToLower(strings.TrimSpace(director))
	sum := sha256.Sum256([]byte(normalized))
	return moviesKeyPrefix + hex.EncodeToString(sum[:16])
}
