package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minimalapi/minimalapi/internal/handler/dto"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %s", ct)
	}

	var response dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return response
}

func TestHandler_Hello(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.Hello(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain, got %s", ct)
	}

	if rec.Body.String() != "Hello World!" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestHandler_NotFound(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()

	h.NotFound(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	response := decodeError(t, rec)
	if response.Error != "resource not found" || response.Code != "NOT_FOUND" {
		t.Errorf("unexpected error body: %+v", response)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	h.MethodNotAllowed(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rec.Code)
	}

	response := decodeError(t, rec)
	if response.Error != "method not allowed" {
		t.Errorf("unexpected error message: %s", response.Error)
	}
}

func TestHandler_DaysBetweenDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"january", "/DaysBetweenDates?date1=2022-01-01&date2=2022-01-31", http.StatusOK, "Days between 1/1/2022 and 1/31/2022: 30"},
		{"reversed", "/DaysBetweenDates?date1=2022-01-31&date2=2022-01-01", http.StatusOK, "Days between 1/31/2022 and 1/1/2022: -30"},
		{"datetime layout", "/DaysBetweenDates?date1=2024-02-28T00:00:00&date2=2024-03-01T00:00:00", http.StatusOK, "Days between 2/28/2024 and 3/1/2024: 2"},
		{"full calendar", "/DaysBetweenDates?date1=0001-01-01&date2=9999-12-31", http.StatusOK, "Days between 1/1/0001 and 12/31/9999: 3652058"},
		{"missing date2", "/DaysBetweenDates?date1=2022-01-01", http.StatusBadRequest, ""},
		{"unparseable", "/DaysBetweenDates?date1=yesterday&date2=2022-01-01", http.StatusBadRequest, ""},
	}

	h := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			h.DaysBetweenDates(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_ParseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"host", "/parseurl?someurl=https%3A%2F%2Fexample.com%3A8443%2Fa%3Fb%3D1", http.StatusOK, "example.com"},
		{"relative", "/parseurl?someurl=%2Fonly%2Fpath", http.StatusBadRequest, ""},
		{"missing", "/parseurl", http.StatusBadRequest, ""},
	}

	h := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			h.ParseURL(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
