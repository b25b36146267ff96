package objwalk

import (
	"reflect"
	"testing"
)

func TestAlignPadsToMaxLength(t *testing.T) {
	rows := [][]any{
		{1, 2, 3},
		{4},
		{},
	}

	got := Align(rows)

	for i, row := range got {
		if len(row) != 3 {
			t.Errorf("row %d: expected length 3, got %d", i, len(row))
		}
	}
	if !reflect.DeepEqual(got[0], []any{1, 2, 3}) {
		t.Errorf("longest row must be unchanged, got %v", got[0])
	}
	if !reflect.DeepEqual(got[1], []any{4, nil, nil}) {
		t.Errorf("short row must be nil-padded, got %v", got[1])
	}
}

func TestAlignReturnsOuterSliceForChaining(t *testing.T) {
	rows := [][]any{{1}, {2, 3}}
	got := Align(rows)
	if &got[0] != &rows[0] {
		t.Fatal("Align must return the same outer slice")
	}
}

func TestAlignEmptyOuter(t *testing.T) {
	got := Align([][]any{})
	if len(got) != 0 {
		t.Fatalf("expected no-op on empty input, got %v", got)
	}
}

func TestAlignEqualLengths(t *testing.T) {
	a := []any{1, 2}
	b := []any{3, 4}
	rows := [][]any{a, b}

	got := Align(rows)

	// Rows already at the maximum are not reallocated.
	if &got[0][0] != &a[0] || &got[1][0] != &b[0] {
		t.Fatal("equal-length rows must be left untouched")
	}
}
