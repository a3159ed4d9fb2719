package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/minimalapi/minimalapi/internal/middleware"
	"github.com/minimalapi/minimalapi/internal/service"
	"github.com/minimalapi/minimalapi/internal/upstream"
)

// MovieFinder searches movies by director. Implemented by *service.MovieService.
type MovieFinder interface {
	ByDirector(ctx context.Context, director string) ([]upstream.Movie, error)
}

// MovieHandler serves the movie search endpoint.
type MovieHandler struct {
	movies MovieFinder
	logger *slog.Logger
}

// NewMovieHandler creates a MovieHandler.
func NewMovieHandler(movies MovieFinder, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{
		movies: movies,
		logger: logger,
	}
}

// ByDirector handles GET /moviesbydirector?director=.
func (h *MovieHandler) ByDirector(w http.ResponseWriter, r *http.Request) {
	director, _ := requiredQuery(r, "director")

	movies, err := h.movies.ByDirector(r.Context(), director)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	if movies == nil {
		movies = []upstream.Movie{}
	}
	writeJSON(w, http.StatusOK, movies)
}

// handleServiceError maps service and upstream errors to HTTP responses.
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrDirectorRequired):
		writeError(w, http.StatusBadRequest, "MISSING_DIRECTOR", "director is required")
	case errors.Is(err, service.ErrDirectorTooLong):
		writeError(w, http.StatusBadRequest, "DIRECTOR_TOO_LONG", "director exceeds maximum length")
	case errors.Is(err, upstream.ErrUpstreamRejected):
		writeError(w, http.StatusNotFound, "MOVIES_NOT_FOUND", "No movies found for director")
	case errors.Is(err, upstream.ErrUpstreamUnavailable), errors.Is(err, upstream.ErrInvalidResponse):
		h.logger.Warn("movie_search_failed",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		writeError(w, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", "Movie service is unavailable")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
