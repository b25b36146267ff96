package printer

import (
	"encoding/json"

	"github.com/dashkit/objwalk/pkg/objwalk"
)

// printJSON renders the document as indented JSON. Depth limiting is done
// with a pruning structural copy so the original document is never touched.
func (p *Printer) printJSON(doc any) error {
	out := doc
	if keep := p.keep(); keep != nil {
		pruned, err := objwalk.Copy(doc, keep)
		if err != nil {
			return err
		}
		out = pruned
	} else if !isContainer(doc) {
		// Match text mode: only documents are printable.
		return objwalk.ErrInvalidInput
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}
