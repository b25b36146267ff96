package objwalk

import (
	"errors"
	"reflect"
	"testing"
)

func keepAll(key, parent any, path Path) bool { return true }

func TestCopyClonesStructure(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{"b": 1},
		"c": 2,
	}

	out, err := Copy(doc, keepAll)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	clone, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("expected map output, got %T", out)
	}
	if !reflect.DeepEqual(clone, doc) {
		t.Fatalf("clone differs from input:\n got:  %v\n want: %v", clone, doc)
	}

	// Containers must be fresh allocations: mutating the clone's nested map
	// must not show through to the input.
	clone["a"].(map[string]any)["b"] = 99
	if doc["a"].(map[string]any)["b"] != 1 {
		t.Fatal("clone shares a container with the input")
	}
}

func TestCopyNilKeepCopiesEverything(t *testing.T) {
	doc := map[string]any{"a": []any{1, map[string]any{"b": 2}}}

	out, err := Copy(doc, nil)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if !reflect.DeepEqual(out, doc) {
		t.Fatalf("clone differs from input: %v", out)
	}
}

func TestCopyPrunesSubtree(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"b": 1}}

	out, err := Copy(doc, func(key, parent any, path Path) bool {
		return key != "a"
	})
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	clone := out.(map[string]any)
	if len(clone) != 0 {
		t.Fatalf("expected pruned subtree to be entirely absent, got %v", clone)
	}
}

func TestCopyPrunesScalarKey(t *testing.T) {
	doc := map[string]any{"keep": 1, "drop": 2}

	out, err := Copy(doc, func(key, parent any, path Path) bool {
		return key != "drop"
	})
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	want := map[string]any{"keep": 1}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("unexpected clone: got %v want %v", out, want)
	}
}

func TestCopyPreservesNestedArrays(t *testing.T) {
	doc := map[string]any{
		"rows": []any{
			[]any{1, 2},
			[]any{3},
		},
	}

	out, err := Copy(doc, keepAll)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if !reflect.DeepEqual(out, doc) {
		t.Fatalf("clone differs from input: %v", out)
	}

	// The nested rows must be independent allocations.
	outRows := out.(map[string]any)["rows"].([]any)
	outRows[0].([]any)[0] = 99
	if doc["rows"].([]any)[0].([]any)[0] != 1 {
		t.Fatal("nested array shared between clone and input")
	}
}

func TestCopySequenceRoot(t *testing.T) {
	doc := []any{1, map[string]any{"k": "v"}}

	out, err := Copy(doc, keepAll)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if _, ok := out.([]any); !ok {
		t.Fatalf("expected slice output for slice input, got %T", out)
	}
	if !reflect.DeepEqual(out, doc) {
		t.Fatalf("clone differs from input: %v", out)
	}
}

func TestCopyPrunedSequenceSlotIsNil(t *testing.T) {
	doc := []any{1, 2, 3}

	out, err := Copy(doc, func(key, parent any, path Path) bool {
		return key != 1
	})
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	want := []any{1, nil, 3}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("unexpected clone: got %v want %v", out, want)
	}
}

func TestCopyLeavesOpaqueValuesAsIs(t *testing.T) {
	type opaque struct{ n int }
	shared := &opaque{n: 7}
	doc := map[string]any{"o": shared}

	out, err := Copy(doc, keepAll)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if out.(map[string]any)["o"] != shared {
		t.Fatal("opaque leaf should be carried over by reference, not cloned")
	}
}

func TestCopyInvalidInput(t *testing.T) {
	_, err := Copy(42, keepAll)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
