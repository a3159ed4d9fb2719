package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/minimalapi/minimalapi/internal/colors"
)

// ColorHandler serves color code lookups.
type ColorHandler struct {
	table  *colors.Table
	logger *slog.Logger
}

// NewColorHandler creates a ColorHandler.
func NewColorHandler(table *colors.Table, logger *slog.Logger) *ColorHandler {
	return &ColorHandler{
		table:  table,
		logger: logger,
	}
}

// Lookup handles GET /returncolorcode?color= and answers with the hex code as a JSON string.
func (h *ColorHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	name, ok := requiredQuery(r, "color")
	if !ok || name == "" {
		writeError(w, http.StatusBadRequest, "MISSING_COLOR", "color is required")
		return
	}

	color, err := h.table.Lookup(name)
	if err != nil {
		if errors.Is(err, colors.ErrColorNotFound) {
			writeError(w, http.StatusNotFound, "COLOR_NOT_FOUND", "Color not found")
			return
		}
		h.logger.Error("color_lookup_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, color.Code.Hex)
}
