// Package objwalk provides traversal and structural-copy utilities for
// nested plain-data structures: the map[string]any and []any trees produced
// by unmarshalling JSON documents. It exists to support crossfilter-style
// dashboards that need to inspect, prune, and rebuild chart data and layout
// trees, but carries no charting logic of its own.
//
// # Node Kinds
//
// Only two container kinds are traversable:
//
//   - plain mappings: map[string]any
//   - sequences: []any
//
// Every other value, including typed maps, structs, and times, is a leaf and
// is never descended into.
//
// # Traversal
//
// Walk performs a depth-first, pre-order traversal, invoking a caller
// callback once per key. Mapping keys are visited in sorted order so runs
// are deterministic; sequence elements are visited in index order. The
// callback controls descent with sentinel errors in the manner of
// filepath.WalkDir: return ErrSkip to prune the current subtree, ErrStop to
// end the walk early, or any other error to abort.
//
// Sequences are treated as leaves unless Options.WalkArrays enables descent
// globally or Options.WalkArraysMatchingKeys enables it for specific keys.
//
// # Paths
//
// Two addressing schemes report the current location. Segmented paths
// (the default) deliver the keys from the root to the parent of the visited
// key. Flattened paths deliver a single dotted/bracketed accessor string
// that includes the visited key, e.g. "transforms[3].type".
//
// # Copying
//
// Copy rebuilds an input graph into a structurally independent output graph,
// pruning any subtree the caller's keep callback rejects. Leaves are carried
// over as-is; containers are freshly allocated.
//
// # Usage Example
//
//	doc := map[string]any{"a": map[string]any{"b": 1.0}, "c": []any{1.0, 2.0}}
//
//	err := objwalk.Walk(doc, func(key, parent any, path objwalk.Path) error {
//		fmt.Println(key, path.Segments)
//		return nil
//	}, objwalk.Options{WalkArrays: true})
//
// Inputs are assumed acyclic, which holds for anything decoded from JSON.
// There is no cycle detection.
package objwalk
