package objwalk

import "fmt"

// Stats describes the shape of a plain-data document.
type Stats struct {
	Maps   uint64 `json:"maps"`   // mapping containers, including the root if it is one
	Slices uint64 `json:"slices"` // sequence containers, including the root if it is one
	Leaves uint64 `json:"leaves"` // non-container values
	Keys   uint64 `json:"keys"`   // total keys and indices visited
	Depth  int    `json:"depth"`  // maximum nesting depth (root container = depth 0)
}

// Count walks input once, with array descent enabled, and gathers shape
// statistics. This is useful for sizing, debugging, and sanity-checking
// documents before they are handed to a dashboard.
//
// Example:
//
//	stats, err := objwalk.Count(doc)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("leaves: %d, depth: %d\n", stats.Leaves, stats.Depth)
func Count(input any) (Stats, error) {
	var s Stats
	switch input.(type) {
	case map[string]any:
		s.Maps++
	case []any:
		s.Slices++
	}

	err := Walk(input, func(key, parent any, path Path) error {
		s.Keys++
		depth := len(path.Segments) + 1
		if depth > s.Depth {
			s.Depth = depth
		}
		switch childAt(parent, key).(type) {
		case map[string]any:
			s.Maps++
		case []any:
			s.Slices++
		default:
			s.Leaves++
		}
		return nil
	}, Options{WalkArrays: true})
	if err != nil {
		return Stats{}, err
	}

	return s, nil
}

// String returns a human-readable summary of the statistics.
func (s Stats) String() string {
	return fmt.Sprintf(
		"keys: %d (maps: %d, slices: %d, leaves: %d), depth: %d",
		s.Keys, s.Maps, s.Slices, s.Leaves, s.Depth,
	)
}
