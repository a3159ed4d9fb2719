package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/minimalapi/minimalapi/internal/sysinfo"
)

// MemoryFunc reports process memory in gigabytes.
type MemoryFunc func(ctx context.Context) (float64, error)

// SystemHandler serves the file listing and memory endpoints.
type SystemHandler struct {
	filesDir string
	memory   MemoryFunc
	logger   *slog.Logger
}

// NewSystemHandler creates a SystemHandler listing filesDir. A nil memory
// func reads the current process through sysinfo.MemoryGB.
func NewSystemHandler(filesDir string, memory MemoryFunc, logger *slog.Logger) *SystemHandler {
	if memory == nil {
		memory = sysinfo.MemoryGB
	}
	return &SystemHandler{
		filesDir: filesDir,
		memory:   memory,
		logger:   logger,
	}
}

// ListFiles handles GET /listfiles.
func (h *SystemHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	files, err := sysinfo.ListFiles(h.filesDir)
	if err != nil {
		h.logger.Error("list_files_failed", "error", err)
		writeError(w, http.StatusInternalServerError, "LIST_FILES_FAILED", "Could not list files")
		return
	}

	writeJSON(w, http.StatusOK, files)
}

// MemoryConsumption handles GET /calculatememoryconsumption.
func (h *SystemHandler) MemoryConsumption(w http.ResponseWriter, r *http.Request) {
	gb, err := h.memory(r.Context())
	if err != nil {
		h.logger.Error("memory_read_failed", "error", err)
		http.Error(w, "could not read memory usage", http.StatusInternalServerError)
		return
	}

	writeText(w, http.StatusOK, sysinfo.FormatGB(gb))
}
