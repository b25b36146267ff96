package objwalk

import "reflect"

// KeepFunc decides whether the key within parent survives a Copy. Returning
// false prunes the key and, for containers, the entire subtree beneath it.
type KeepFunc func(key any, parent any, path Path) bool

// Copy builds a structurally independent clone of input, a map[string]any or
// []any graph, omitting every subtree that keep rejects. A nil keep copies
// everything.
//
// Copied containers are freshly allocated, so the output shares no container
// references with the input; leaf values are assigned as-is. Array descent
// is always enabled during copying so nested sequences are preserved
// structurally, regardless of how the caller walks elsewhere. Pruned
// sequence slots are left as nil holes; pruned mapping keys are absent from
// the output.
//
// Example:
//
//	clone, err := objwalk.Copy(doc, func(key, parent any, path objwalk.Path) bool {
//		return key != "_private"
//	})
func Copy(input any, keep KeepFunc) (any, error) {
	out := newContainerLike(input)
	if out == nil {
		return nil, ErrInvalidInput
	}

	// Identity-keyed correspondence between each input container and its
	// output counterpart, looked up by reference as the walk descends.
	// Empty containers are registered but never looked up, so the shared
	// zero-size allocation they may alias is harmless.
	outOf := map[uintptr]any{identityOf(input): out}

	err := Walk(input, func(key, parent any, path Path) error {
		if keep != nil && !keep(key, parent, path) {
			return ErrSkip
		}

		outParent := outOf[identityOf(parent)]
		value := childAt(parent, key)
		if child := newContainerLike(value); child != nil {
			outOf[identityOf(value)] = child
			setChildAt(outParent, key, child)
		} else {
			setChildAt(outParent, key, value)
		}
		return nil
	}, Options{WalkArrays: true})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// newContainerLike allocates an empty container of the same kind and size as
// v, or returns nil when v is not a container. Sequences are allocated at
// full length so elements can be assigned by index during the walk.
func newContainerLike(v any) any {
	switch c := v.(type) {
	case map[string]any:
		return make(map[string]any, len(c))
	case []any:
		return make([]any, len(c))
	default:
		return nil
	}
}

// setChildAt stores v at key in the given output container.
func setChildAt(node any, key any, v any) {
	switch n := node.(type) {
	case map[string]any:
		n[key.(string)] = v
	case []any:
		n[key.(int)] = v
	}
}

// identityOf returns the reference identity of a container, suitable as a
// correspondence-table key. Lookup is by identity, never by value equality.
func identityOf(v any) uintptr {
	return reflect.ValueOf(v).Pointer()
}
