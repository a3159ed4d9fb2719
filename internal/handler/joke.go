package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/minimalapi/minimalapi/internal/middleware"
)

// jokeFailureMessage is returned with 200 when the joke API cannot be reached.
const jokeFailureMessage = "Failed to retrieve a joke."

// JokeFetcher returns a joke. Implemented by *upstream.JokeClient.
type JokeFetcher interface {
	Random(ctx context.Context) (string, error)
}

// JokeHandler proxies the joke API.
type JokeHandler struct {
	jokes  JokeFetcher
	logger *slog.Logger
}

// NewJokeHandler creates a JokeHandler.
func NewJokeHandler(jokes JokeFetcher, logger *slog.Logger) *JokeHandler {
	return &JokeHandler{
		jokes:  jokes,
		logger: logger,
	}
}

// Tell handles GET /tellmeajoke.
func (h *JokeHandler) Tell(w http.ResponseWriter, r *http.Request) {
	joke, err := h.jokes.Random(r.Context())
	if err != nil {
		h.logger.Warn("joke_fetch_failed",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		writeText(w, http.StatusOK, jokeFailureMessage)
		return
	}

	writeText(w, http.StatusOK, joke)
}
