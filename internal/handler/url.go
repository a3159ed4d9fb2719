package handler

import (
	"net/http"

	"github.com/minimalapi/minimalapi/internal/urlparse"
)

// ParseURL handles GET /parseurl?someurl= and answers with the URL's host.
func (h *Handler) ParseURL(w http.ResponseWriter, r *http.Request) {
	raw, ok := requiredQuery(r, "someurl")
	if !ok {
		missingParam(w, "someurl")
		return
	}

	parts, err := urlparse.Parse(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeText(w, http.StatusOK, parts.Host)
}
