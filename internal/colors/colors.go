// Package colors provides the color table behind the color code endpoint.
package colors

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed colors.json
var defaultTable []byte

// ErrColorNotFound is returned when no color has the requested name.
var ErrColorNotFound = errors.New("color not found")

// Code holds the encodings of a color.
type Code struct {
	RGBA []float64 `json:"rgba"`
	Hex  string    `json:"hex"`
}

// Color is one entry of the table.
type Color struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Type     string `json:"type,omitempty"`
	Code     Code   `json:"code"`
}

// Table is an immutable name-indexed set of colors.
type Table struct {
	byName map[string]Color
}

// Default returns the table embedded in the binary.
func Default() (*Table, error) {
	return Parse(defaultTable)
}

// Load reads a table from a JSON file. An empty path loads the default table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read colors file: %w", err)
	}
	return Parse(data)
}

// Parse builds a table from a JSON array of colors.
// When names repeat, the first entry wins.
func Parse(data []byte) (*Table, error) {
	var list []Color
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode colors: %w", err)
	}

	t := &Table{byName: make(map[string]Color, len(list))}
	for _, c := range list {
		if c.Name == "" {
			continue
		}
		if _, exists := t.byName[c.Name]; !exists {
			t.byName[c.Name] = c
		}
	}
	return t, nil
}

// Lookup returns the color with exactly the given name.
func (t *Table) Lookup(name string) (Color, error) {
	c, ok := t.byName[name]
	if !ok {
		return Color{}, ErrColorNotFound
	}
	return c, nil
}

// Len returns the number of colors in the table.
func (t *Table) Len() int {
	return len(t.byName)
}
