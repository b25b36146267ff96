// Package testutil provides shared fixtures for tests across the
// repository.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// SampleFigure returns a figure-shaped document of the kind crossfilter
// dashboards walk: a trace list with data columns plus a layout tree.
// Each call returns a fresh copy safe to mutate.
func SampleFigure() map[string]any {
	return map[string]any{
		"data": []any{
			map[string]any{
				"name": "flights",
				"x":    []any{1.0, 2.0, 3.0},
				"y":    []any{10.0, 20.0, 30.0},
				"transforms": []any{
					map[string]any{"type": "filter", "target": "x"},
					map[string]any{"type": "groupby", "groups": []any{"a", "b"}},
				},
			},
			map[string]any{
				"name": "delays",
				"x":    []any{1.0, 2.0},
				"y":    []any{5.0, 15.0},
			},
		},
		"layout": map[string]any{
			"title":  "demo",
			"width":  640.0,
			"height": 480.0,
			"xaxis":  map[string]any{"range": []any{0.0, 10.0}},
		},
	}
}

// WriteJSON marshals doc into a file under dir and returns its path.
func WriteJSON(t *testing.T, dir string, name string, doc any) string {
	t.Helper()

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
