package colors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Lookup(t *testing.T) {
	t.Parallel()

	table, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	tests := []struct {
		name    string
		want    string
		wantErr error
	}{
		{"red", "#FF0000", nil},
		{"black", "#000000", nil},
		{"Red", "", ErrColorNotFound},
		{"chartreuse", "", ErrColorNotFound},
		{"", "", ErrColorNotFound},
	}

	for _, tt := range tests {
		c, err := table.Lookup(tt.name)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Lookup(%q) error = %v, want %v", tt.name, err, tt.wantErr)
			continue
		}
		if c.Code.Hex != tt.want {
			t.Errorf("Lookup(%q) hex = %q, want %q", tt.name, c.Code.Hex, tt.want)
		}
	}
}

func TestParse_FirstEntryWins(t *testing.T) {
	t.Parallel()

	table, err := Parse([]byte(`[
		{"name":"teal","code":{"hex":"#008080"}},
		{"name":"teal","code":{"hex":"#000000"}},
		{"code":{"hex":"#111111"}}
	]`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if table.Len() != 1 {
		t.Errorf("expected 1 color, got %d", table.Len())
	}
	c, _ := table.Lookup("teal")
	if c.Code.Hex != "#008080" {
		t.Errorf("expected first teal entry, got %s", c.Code.Hex)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "colors.json")
	if err := os.WriteFile(path, []byte(`[{"name":"navy","code":{"hex":"#000080"}}]`), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, err := table.Lookup("navy"); err != nil {
		t.Errorf("expected navy, got %v", err)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	t.Parallel()

	table, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if table.Len() == 0 {
		t.Error("expected default colors")
	}
}
