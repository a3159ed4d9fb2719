package middleware

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// Query limits.
const (
	// MaxQueryLength is the maximum length of the raw query string.
	MaxQueryLength = 4096

	// MaxQueryParams is the maximum number of distinct query parameters.
	MaxQueryParams = 16
)

// errorBody matches the JSON error envelope the handlers write.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ValidateQuery rejects requests whose query string is too long, malformed or
// has too many parameters, before any handler parses it.
func ValidateQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(r.URL.RawQuery) > MaxQueryLength {
			writeError(w, http.StatusRequestURITooLong, "QUERY_TOO_LONG", "Query string exceeds maximum length")
			return
		}

		if r.URL.RawQuery == "" {
			next.ServeHTTP(w, r)
			return
		}

		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_QUERY", "Malformed query string")
			return
		}

		if len(values) > MaxQueryParams {
			writeError(w, http.StatusBadRequest, "TOO_MANY_PARAMS", "Too many query parameters")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message, Code: code})
}
