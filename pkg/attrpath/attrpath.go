// Package attrpath converts between positional segment lists and the
// flattened dotted/bracketed accessor strings used to address attributes in
// chart figures, e.g. "transforms[3].type".
//
// Segment lists produced by walking a full figure carry framework-internal
// root markers (the computed-data, user-input, and computed-layout roots)
// that must never appear in a public accessor; MakeSetterPath strips them.
package attrpath

import (
	"strconv"
	"strings"
)

// Framework-internal root markers stripped from accessor paths.
const (
	fullDataRoot   = "_fullData"
	fullInputRoot  = "_fullInput"
	fullLayoutRoot = "_fullLayout"
)

// MakeSetterPath converts a positional segment list into a flattened
// accessor string. Segments are strings for mapping keys and ints (or
// float64s, as JSON decoding produces) for sequence indices; a
// single-element numeric sub-list counts as an index as well.
//
// The computed-data root is stripped together with its trace index, the
// user-input root alone, and a computed-layout root following either:
//
//	MakeSetterPath([]any{"_fullData", 0, "transforms", 3, "type"})
//	// "transforms[3].type"
func MakeSetterPath(parts []any) string {
	parts = stripRoots(parts)

	var b strings.Builder
	for _, part := range parts {
		if i, ok := indexPart(part); ok {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(i))
			b.WriteByte(']')
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part.(string))
	}
	return b.String()
}

// stripRoots removes the framework-internal prefix segments.
func stripRoots(parts []any) []any {
	if len(parts) > 0 && parts[0] == fullDataRoot {
		// The data root is always followed by a trace index; drop both.
		parts = parts[min(2, len(parts)):]
	} else if len(parts) > 0 && parts[0] == fullInputRoot {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[0] == fullLayoutRoot {
		parts = parts[1:]
	}
	return parts
}

// indexPart reports whether part addresses a sequence index and returns it.
func indexPart(part any) (int, bool) {
	switch p := part.(type) {
	case int:
		return p, true
	case float64:
		return int(p), true
	case []any:
		if len(p) == 1 {
			return indexPart(p[0])
		}
	}
	return 0, false
}

// Split parses a flattened accessor string back into its segment list,
// the inverse of MakeSetterPath for paths without root markers:
//
//	Split("transforms[3].type") // []any{"transforms", 3, "type"}
//
// Malformed bracket runs are kept as literal name characters rather than
// rejected; accessor strings are caller-built and trusted.
func Split(path string) []any {
	var parts []any
	var name strings.Builder

	flushName := func() {
		if name.Len() > 0 {
			parts = append(parts, name.String())
			name.Reset()
		}
	}

	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '.':
			flushName()
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				name.WriteByte(path[i])
				continue
			}
			idx, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil {
				name.WriteByte(path[i])
				continue
			}
			flushName()
			parts = append(parts, idx)
			i += end
		default:
			name.WriteByte(path[i])
		}
	}
	flushName()

	return parts
}
