package objwalk

import "reflect"

// ShallowEqual reports whether two plain mappings hold strictly equal values
// under the same keys, one level deep. Identical references compare true
// immediately. Otherwise the maps must have the same number of keys and
// every key of a must map to a strictly equal value in b.
//
// Strict equality follows JavaScript === semantics: comparable values
// compare by value, containers by reference identity. A container value and
// a structural twin of it are not equal.
//
// Only a's keys are checked; key-set equality is implied by the count check.
// Two maps with equal counts but different key sets therefore compare false
// through the missing-key lookup, not through an explicit set comparison.
func ShallowEqual(a, b map[string]any) bool {
	if identityOf(a) == identityOf(b) {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !identical(av, bv) {
			return false
		}
	}
	return true
}

// identical implements ===-style strict equality for leaf comparison:
// containers compare by reference identity, everything comparable by value.
// Uncomparable non-container types never compare equal.
func identical(x, y any) bool {
	switch xv := x.(type) {
	case map[string]any:
		yv, ok := y.(map[string]any)
		return ok && identityOf(xv) == identityOf(yv)
	case []any:
		yv, ok := y.([]any)
		return ok && len(xv) == len(yv) && identityOf(xv) == identityOf(yv)
	}

	rx := reflect.ValueOf(x)
	if rx.IsValid() && !rx.Type().Comparable() {
		return false
	}
	ry := reflect.ValueOf(y)
	if ry.IsValid() && !ry.Type().Comparable() {
		return false
	}
	return x == y
}
