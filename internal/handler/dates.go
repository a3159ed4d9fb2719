package handler

import (
	"net/http"

	"github.com/minimalapi/minimalapi/internal/dates"
)

// DaysBetweenDates handles GET /DaysBetweenDates?date1=&date2=.
func (h *Handler) DaysBetweenDates(w http.ResponseWriter, r *http.Request) {
	raw1, ok := requiredQuery(r, "date1")
	if !ok {
		missingParam(w, "date1")
		return
	}
	raw2, ok := requiredQuery(r, "date2")
	if !ok {
		missingParam(w, "date2")
		return
	}

	date1, err := dates.Parse(raw1)
	if err != nil {
		http.Error(w, "date1: "+err.Error(), http.StatusBadRequest)
		return
	}
	date2, err := dates.Parse(raw2)
	if err != nil {
		http.Error(w, "date2: "+err.Error(), http.StatusBadRequest)
		return
	}

	writeText(w, http.StatusOK, dates.Describe(date1, date2))
}
