package main

import (
	"strings"
	"testing"
)

const figureFixture = `{
  "data": [
    {"type": "scatter", "x": [1, 2, 3], "name": "first"},
    {"type": "bar", "y": [4, 5], "name": "second"}
  ],
  "layout": {"title": "demo", "width": 640}
}`

func TestRunWalkDefault(t *testing.T) {
	path := writeFixture(t, "figure.json", figureFixture)

	walkArrays = false
	walkMatchKeys = nil
	walkAttr = false
	walkMax = 0
	jsonOut = false
	verbose = false

	out, err := captureOutput(t, func() error {
		return runWalk(path)
	})
	if err != nil {
		t.Fatalf("runWalk failed: %v", err)
	}

	if !strings.Contains(out, "layout") {
		t.Errorf("expected layout key in output, got:\n%s", out)
	}
	if !strings.Contains(out, "title") {
		t.Errorf("expected nested title key in output, got:\n%s", out)
	}
	// Array elements are not entered without --arrays
	if strings.Contains(out, "scatter") {
		t.Errorf("did not expect array contents in output, got:\n%s", out)
	}
}

func TestRunWalkArraysAttr(t *testing.T) {
	path := writeFixture(t, "figure.json", figureFixture)

	walkArrays = true
	walkMatchKeys = nil
	walkAttr = true
	walkMax = 0
	jsonOut = false
	verbose = false

	out, err := captureOutput(t, func() error {
		return runWalk(path)
	})
	if err != nil {
		t.Fatalf("runWalk failed: %v", err)
	}

	if !strings.Contains(out, "data[0].type") {
		t.Errorf("expected accessor path data[0].type in output, got:\n%s", out)
	}
}

func TestRunWalkMax(t *testing.T) {
	path := writeFixture(t, "figure.json", figureFixture)

	walkArrays = true
	walkMatchKeys = nil
	walkAttr = false
	walkMax = 3
	jsonOut = false
	verbose = false

	out, err := captureOutput(t, func() error {
		return runWalk(path)
	})
	if err != nil {
		t.Fatalf("runWalk failed: %v", err)
	}

	lines := strings.Count(strings.TrimSpace(out), "\n") + 1
	if lines != 3 {
		t.Errorf("expected 3 lines with --max 3, got %d:\n%s", lines, out)
	}
}

func TestRunWalkMissingFile(t *testing.T) {
	jsonOut = false
	verbose = false
	if err := runWalk("/nonexistent/figure.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
