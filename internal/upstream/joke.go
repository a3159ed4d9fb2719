package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minimalapi/minimalapi/internal/metrics"
)

// JokeClient fetches random jokes from a plain-text joke API.
type JokeClient struct {
	client  Doer
	url     string
	metrics metrics.Recorder
}

// NewJokeClient creates a JokeClient for the given endpoint.
func NewJokeClient(client Doer, url string, recorder metrics.Recorder) *JokeClient {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &JokeClient{client: client, url: url, metrics: recorder}
}

// Random returns one joke.
func (c *JokeClient) Random(ctx context.Context) (string, error) {
	start := time.Now()
	joke, err := c.fetch(ctx)
	c.metrics.ObserveUpstreamCall("joke", outcome(err), time.Since(start))
	return joke, err
}

func (c *JokeClient) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("build joke request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: joke api status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("%w: read joke body: %v", ErrUpstreamUnavailable, err)
	}

	return strings.TrimSpace(string(body)), nil
}

// outcome labels an upstream call for metrics.
func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
