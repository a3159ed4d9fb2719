package handler

import (
	"net/http"
	"strconv"

	"github.com/minimalapi/minimalapi/internal/dni"
	"github.com/minimalapi/minimalapi/internal/metrics"
	"github.com/minimalapi/minimalapi/internal/phone"
)

// ValidationHandler serves the identity document and phone number checks.
type ValidationHandler struct {
	metrics metrics.Recorder
}

// NewValidationHandler creates a ValidationHandler. A nil recorder disables metrics.
func NewValidationHandler(recorder metrics.Recorder) *ValidationHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ValidationHandler{metrics: recorder}
}

// ValidateDNI handles GET /validatespanishdni?dni=.
// Any present value, well formed or not, is answered with 200 and a verdict.
func (h *ValidationHandler) ValidateDNI(w http.ResponseWriter, r *http.Request) {
	value, ok := requiredQuery(r, "dni")
	if !ok {
		missingParam(w, "dni")
		return
	}

	result := dni.Validate(value)
	h.metrics.IncValidation("dni", string(result))

	writeText(w, http.StatusOK, string(result))
}

// ValidatePhone handles GET /validatephonenumber?phoneNumber=.
func (h *ValidationHandler) ValidatePhone(w http.ResponseWriter, r *http.Request) {
	value, ok := requiredQuery(r, "phoneNumber")
	if !ok {
		missingParam(w, "phoneNumber")
		return
	}

	verdict := strconv.FormatBool(phone.ValidateSpanish(value))
	h.metrics.IncValidation("phone", verdict)

	writeText(w, http.StatusOK, verdict)
}
