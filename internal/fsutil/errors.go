package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind is a coarse-grained categorization for filesystem failures.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindPermission Kind = "permission"
	KindExists     Kind = "exists"
	KindOther      Kind = "other"
)

// Operation names used in errors and log records.
const (
	OpCreateDir = "create_dir"
	OpRemoveDir = "remove_dir"
	OpCopy      = "copy"
	OpMove      = "move"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind Kind
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err carries an OpError of the given kind.
func IsKind(err error, kind Kind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrExist):
		return KindExists
	default:
		return KindOther
	}
}

func (k Kind) message() string {
	switch k {
	case KindNotFound:
		return "Path not found"
	case KindPermission:
		return "Permission denied"
	case KindExists:
		return "Destination already exists"
	default:
		return "Filesystem operation failed"
	}
}
