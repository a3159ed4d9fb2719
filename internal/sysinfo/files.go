// Package sysinfo reports on the local process and filesystem.
package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ListFiles returns the absolute paths of the regular files directly inside dir,
// sorted by name. Subdirectories are not listed or descended into.
// An empty dir means the current working directory.
func ListFiles(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve directory: %w", err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(abs, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}
