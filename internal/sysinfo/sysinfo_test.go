package sysinfo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestListFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o700); err != nil {
		t.Fatal(err)
	}

	files, err := ListFiles(dir)
	if err != nil {
		t.Fatalf("ListFiles error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.txt" || filepath.Base(files[1]) != "b.txt" {
		t.Errorf("unexpected order: %v", files)
	}
	for _, f := range files {
		if !filepath.IsAbs(f) {
			t.Errorf("expected absolute path, got %s", f)
		}
	}
}

func TestListFiles_MissingDir(t *testing.T) {
	t.Parallel()

	if _, err := ListFiles(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRoundGB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bytes uint64
		want  float64
	}{
		{0, 0},
		{bytesPerGB, 1},
		{bytesPerGB / 2, 0.5},
		{bytesPerGB / 100 * 7, 0.07},
		{52 * 1024 * 1024, 0.05},
	}

	for _, tt := range tests {
		if got := RoundGB(tt.bytes); got != tt.want {
			t.Errorf("RoundGB(%d) = %v, want %v", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatGB(t *testing.T) {
	t.Parallel()

	if got := FormatGB(0.05); got != "0.05 GB" {
		t.Errorf("FormatGB = %q", got)
	}
}

func TestMemoryGB(t *testing.T) {
	gb, err := MemoryGB(context.Background())
	if err != nil {
		t.Skipf("process memory not available: %v", err)
	}
	if gb < 0 {
		t.Errorf("expected non-negative memory, got %v", gb)
	}
}
