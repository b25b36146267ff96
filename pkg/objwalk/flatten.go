package objwalk

// Flatten walks input with array descent enabled and returns every leaf
// value keyed by its flattened accessor path, e.g. "data[2].name". Empty
// containers contribute no entries.
//
// Example:
//
//	flat, err := objwalk.Flatten(map[string]any{
//		"x": map[string]any{"y": 5.0},
//		"c": []any{1.0, 2.0},
//	})
//	// flat == map[string]any{"x.y": 5.0, "c[0]": 1.0, "c[1]": 2.0}
func Flatten(input any) (map[string]any, error) {
	out := make(map[string]any)
	err := Walk(input, func(key, parent any, path Path) error {
		value := childAt(parent, key)
		if isContainer(value) {
			return nil
		}
		out[path.Attr] = value
		return nil
	}, Options{WalkArrays: true, PathType: PathAttr})
	if err != nil {
		return nil, err
	}
	return out, nil
}
