package vault

import (
	"errors"
	"fmt"
)

// ErrInvalidManifest is wrapped by every manifest validation failure.
var ErrInvalidManifest = errors.New("invalid manifest")

// ErrUnknownBook is returned when a requested book is not in the manifest.
var ErrUnknownBook = errors.New("unknown book")

// ValidationError reports a malformed manifest field.
type ValidationError struct {
	Field   string // e.g. "books[3].chapters"
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidManifest
}

// IOError reports a filesystem operation that failed on a vault path.
type IOError struct {
	Operation string // "write", "mkdir", "rename", ...
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func newValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
