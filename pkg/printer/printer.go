// Package printer renders plain-data documents (map[string]any / []any
// trees) as indented text or JSON for inspection tooling.
package printer

import (
	"fmt"
	"io"

	"github.com/dashkit/objwalk/pkg/objwalk"
)

const (
	DefaultIndentSize  = 2
	DefaultMaxDepth    = 0
	DefaultMaxValueLen = 64
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs indented JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level.
	// Default: 2
	IndentSize int

	// MaxDepth limits how deep the rendering descends (0 = unlimited).
	// Keys below the limit are elided.
	// Default: 0 (unlimited)
	MaxDepth int

	// MaxValueLen limits how many characters of string leaves to display
	// in text format. Longer values are truncated. Set to 0 for no limit.
	// Default: 64
	MaxValueLen int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		IndentSize:  DefaultIndentSize,
		MaxDepth:    DefaultMaxDepth,
		MaxValueLen: DefaultMaxValueLen,
	}
}

// Printer handles formatted output of plain-data documents.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	return &Printer{opts: opts, writer: w}
}

// Print renders doc, which must be a map[string]any or []any, in the
// configured format.
func (p *Printer) Print(doc any) error {
	switch p.opts.Format {
	case FormatText, "":
		return p.printText(doc)
	case FormatJSON:
		return p.printJSON(doc)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// withinDepth reports whether a key at the given parent depth should be
// rendered under the MaxDepth limit.
func (p *Printer) withinDepth(parentDepth int) bool {
	return p.opts.MaxDepth <= 0 || parentDepth < p.opts.MaxDepth
}

// keep returns the prune callback enforcing MaxDepth during Copy-based
// rendering, or nil when depth is unlimited.
func (p *Printer) keep() objwalk.KeepFunc {
	if p.opts.MaxDepth <= 0 {
		return nil
	}
	return func(key, parent any, path objwalk.Path) bool {
		return p.withinDepth(len(path.Segments))
	}
}
