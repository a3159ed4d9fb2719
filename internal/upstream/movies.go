package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minimalapi/minimalapi/internal/metrics"
)

// Movie is a single OMDb search hit.
type Movie struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// omdbSearchResponse is the OMDb search envelope. Response is the string "True" or "False".
type omdbSearchResponse struct {
	Response string  `json:"Response"`
	Error    string  `json:"Error"`
	Search   []Movie `json:"Search"`
}

// MovieClient searches the OMDb API.
type MovieClient struct {
	client  Doer
	baseURL string
	apiKey  string
	metrics metrics.Recorder
}

// NewMovieClient creates a MovieClient.
func NewMovieClient(client Doer, baseURL, apiKey string, recorder metrics.Recorder) *MovieClient {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &MovieClient{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		metrics: recorder,
	}
}

// ByDirector searches OMDb movies matching the director string.
func (c *MovieClient) ByDirector(ctx context.Context, director string) ([]Movie, error) {
	start := time.Now()
	movies, err := c.search(ctx, director)
	c.metrics.ObserveUpstreamCall("omdb", outcome(err), time.Since(start))
	return movies, err
}

func (c *MovieClient) search(ctx context.Context, director string) ([]Movie, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse omdb url: %w", err)
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("type", "movie")
	q.Set("s", director)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build omdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		// The URL carries the API key; report only the host.
		return nil, fmt.Errorf("%w: omdb request to %s failed", ErrUpstreamUnavailable, u.Host)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: omdb status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	var result omdbSearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if result.Response != "True" {
		return nil, fmt.Errorf("%w: %s", ErrUpstreamRejected, result.Error)
	}

	if result.Search == nil {
		return []Movie{}, nil
	}
	return result.Search, nil
}
