package printer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dashkit/objwalk/pkg/objwalk"
)

// printText renders the document as indented text, one line per key. Keys
// holding containers open a new indent level; leaves print inline.
func (p *Printer) printText(doc any) error {
	indentSize := p.opts.IndentSize
	if indentSize <= 0 {
		indentSize = DefaultIndentSize
	}

	return objwalk.Walk(doc, func(key, parent any, path objwalk.Path) error {
		depth := len(path.Segments)
		if !p.withinDepth(depth) {
			return objwalk.ErrSkip
		}
		indent := strings.Repeat(" ", depth*indentSize)

		value := childAt(parent, key)
		switch v := value.(type) {
		case map[string]any:
			_, err := fmt.Fprintf(p.writer, "%s%s:\n", indent, keyLabel(key))
			return err
		case []any:
			_, err := fmt.Fprintf(p.writer, "%s%s: (%d items)\n", indent, keyLabel(key), len(v))
			return err
		default:
			_, err := fmt.Fprintf(p.writer, "%s%s = %s\n", indent, keyLabel(key), p.formatLeaf(value))
			return err
		}
	}, objwalk.Options{WalkArrays: true})
}

// keyLabel formats a mapping key or sequence index for text output.
func keyLabel(key any) string {
	if i, ok := key.(int); ok {
		return fmt.Sprintf("[%d]", i)
	}
	return key.(string)
}

// formatLeaf renders a leaf value, truncating long strings per MaxValueLen.
func (p *Printer) formatLeaf(v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	if p.opts.MaxValueLen > 0 && len(s) > p.opts.MaxValueLen {
		// Back up to a rune boundary so a multi-byte rune is never split.
		cut := p.opts.MaxValueLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return fmt.Sprintf("%q", s)
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
