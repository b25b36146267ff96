package objwalk

import (
	"errors"
	"maps"
	"slices"
	"strconv"
)

// initialStackCapacity is the pre-allocated capacity for the traversal stack.
// Dashboard documents rarely nest more than a dozen levels, so 32 avoids
// reallocation for all realistic inputs.
const initialStackCapacity = 32

// PathType selects how Walk reports the location of each visited key.
type PathType string

const (
	// PathSegments delivers Path.Segments: the keys and indices from the
	// root to the parent of the visited key. The visited key itself is not
	// included. This is the default.
	PathSegments PathType = "segments"

	// PathAttr delivers Path.Attr: a single dotted/bracketed accessor
	// string that does include the visited key, e.g. "data[2].name".
	PathAttr PathType = "attr"
)

// Options controls traversal behavior. The zero value is ready to use:
// arrays are treated as leaves and paths are reported segment-wise.
type Options struct {
	// WalkArrays permits descending into every sequence value.
	// Default: false (sequences are leaves).
	WalkArrays bool

	// WalkArraysMatchingKeys permits descending into sequence values only
	// at these keys. Ignored when WalkArrays is true.
	WalkArraysMatchingKeys []string

	// PathType selects the path representation delivered to the visitor.
	// An empty value means PathSegments.
	PathType PathType
}

// Path is the accumulated location of the visited key, in the representation
// selected by Options.PathType. Exactly one of Segments or Attr is
// meaningful; Type records which.
type Path struct {
	Type PathType

	// Segments holds the keys from the root to the parent container
	// (PathSegments mode). Elements are string for mapping keys and int
	// for sequence indices. The slice is a buffer shared by the entire
	// walk and must not be retained or modified by the visitor; copy it
	// if it needs to outlive the visit.
	Segments []any

	// Attr holds the flattened accessor string including the visited key
	// (PathAttr mode).
	Attr string
}

// VisitFunc is invoked once per visited key. key is a string for mapping
// keys and an int for sequence indices; parent is the container holding the
// key. Returning nil continues the walk, ErrSkip prunes the current subtree,
// ErrStop ends the walk early, and any other error aborts it.
type VisitFunc func(key any, parent any, path Path) error

// Walk traverses input depth-first in pre-order, calling visit at every key.
//
// input must be a map[string]any or a []any; anything else fails with
// ErrInvalidInput before any visit. Mapping keys are visited in sorted
// order, sequence elements in index order. The walker itself never mutates
// input; all effects are the visitor's.
//
// Example:
//
//	err := objwalk.Walk(doc, func(key, parent any, path objwalk.Path) error {
//		if key == "transforms" {
//			return objwalk.ErrSkip
//		}
//		return nil
//	}, objwalk.Options{})
func Walk(input any, visit VisitFunc, opts Options) error {
	kind, err := normalizePathType(opts.PathType)
	if err != nil {
		return err
	}
	if !isContainer(input) {
		return ErrInvalidInput
	}

	stack := make([]frame, 0, initialStackCapacity)
	stack = append(stack, newFrame(input, ""))

	// segs is the single segments buffer for the whole walk: one element
	// per frame above the root, appended on descent and truncated on
	// ascent. Sharing it keeps path memory linear in depth; Path.Segments
	// hands it to the visitor directly, which is why visitors must not
	// retain it.
	segs := make([]any, 0, initialStackCapacity)

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		key, ok := f.next()
		if !ok {
			stack = stack[:len(stack)-1]
			if len(segs) > 0 {
				segs = segs[:len(segs)-1]
			}
			continue
		}

		var path Path
		if kind == PathAttr {
			path = Path{Type: PathAttr, Attr: attrFor(f.attr, f.node, key)}
		} else {
			path = Path{Type: PathSegments, Segments: segs}
		}

		visitErr := visit(key, f.node, path)
		switch {
		case visitErr == nil:
			// fall through to descent
		case errors.Is(visitErr, ErrSkip):
			continue
		case errors.Is(visitErr, ErrStop):
			return nil
		default:
			return visitErr
		}

		value := childAt(f.node, key)
		if descendInto(key, value, opts) {
			childAttr := ""
			if kind == PathAttr {
				childAttr = path.Attr
			}
			segs = append(segs, key)
			stack = append(stack, newFrame(value, childAttr))
		}
	}

	return nil
}

// descendInto decides whether the walk enters value at key. Plain mappings
// are always entered; sequences only when permitted by opts.
func descendInto(key any, value any, opts Options) bool {
	switch value.(type) {
	case map[string]any:
		return true
	case []any:
		if opts.WalkArrays {
			return true
		}
		name, ok := key.(string)
		return ok && slices.Contains(opts.WalkArraysMatchingKeys, name)
	default:
		return false
	}
}

// isContainer reports whether v is one of the two traversable kinds.
func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

// childAt returns the value stored at key in the given container.
func childAt(node any, key any) any {
	switch n := node.(type) {
	case map[string]any:
		return n[key.(string)]
	case []any:
		return n[key.(int)]
	default:
		return nil
	}
}

func normalizePathType(t PathType) (PathType, error) {
	switch t {
	case "", PathSegments:
		return PathSegments, nil
	case PathAttr:
		return PathAttr, nil
	default:
		return "", ErrInvalidPathType
	}
}

// frame is one level of the iterative DFS: a container plus the iteration
// cursor over its keys and, in attr mode, the accessor string that reaches
// it. Using an explicit stack instead of recursion keeps deeply nested
// documents from growing the call stack; visit order matches the recursive
// formulation.
type frame struct {
	node any
	keys []string // sorted mapping keys; nil for sequences
	n    int      // total key count
	idx  int      // next key position
	attr string   // accessor of node (PathAttr mode only)
}

func newFrame(node any, attr string) frame {
	f := frame{node: node, attr: attr}
	switch n := node.(type) {
	case map[string]any:
		f.keys = slices.Sorted(maps.Keys(n))
		f.n = len(f.keys)
	case []any:
		f.n = len(n)
	}
	return f
}

// next returns the next key of the frame's container, or ok=false when the
// frame is exhausted.
func (f *frame) next() (key any, ok bool) {
	if f.idx >= f.n {
		return nil, false
	}
	i := f.idx
	f.idx++
	if f.keys != nil {
		return f.keys[i], true
	}
	return i, true
}

// attrFor appends key to the accessor string accumulated for parent.
func attrFor(prefix string, parent any, key any) string {
	if prefix == "" {
		return keyString(key)
	}
	if _, ok := parent.([]any); ok {
		return prefix + "[" + strconv.Itoa(key.(int)) + "]"
	}
	return prefix + "." + key.(string)
}

func keyString(key any) string {
	if i, ok := key.(int); ok {
		return strconv.Itoa(i)
	}
	return key.(string)
}
