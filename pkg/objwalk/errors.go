package objwalk

import "errors"

var (
	// ErrInvalidInput indicates that a value passed to Walk or Copy is
	// neither a plain mapping (map[string]any) nor a sequence ([]any).
	ErrInvalidInput = errors.New("objwalk: input must be a map[string]any or []any")

	// ErrInvalidPathType indicates an unrecognized Options.PathType.
	ErrInvalidPathType = errors.New("objwalk: unrecognized path type")

	// ErrSkip can be returned from a visit callback to skip descent into
	// the current key's value. Sibling iteration continues. It is never
	// returned by Walk itself.
	ErrSkip = errors.New("skip this subtree")

	// ErrStop can be returned from a visit callback to stop the walk early
	// without triggering an error condition. Walk returns nil.
	ErrStop = errors.New("stop walk")
)
