package handler

import (
	"net/http"

	"github.com/minimalapi/minimalapi/internal/countries"
)

// CountryHandler serves the random European country endpoint.
type CountryHandler struct {
	picker *countries.Picker
}

// NewCountryHandler creates a CountryHandler. A nil picker uses the global generator.
func NewCountryHandler(picker *countries.Picker) *CountryHandler {
	if picker == nil {
		picker = countries.NewPicker(nil)
	}
	return &CountryHandler{picker: picker}
}

// Random handles GET /randomeuropeancountry.
func (h *CountryHandler) Random(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, h.picker.Random().String())
}
