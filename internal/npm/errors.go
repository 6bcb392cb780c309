package npm

import (
	"fmt"
	"strings"
)

// Error indicates a package manifest could not be read, decoded, or written.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("npm manifest error (%s): %s: %v", e.Path, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ValidationError reports a manifest that does not satisfy the package schema.
type ValidationError struct {
	Path     string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("npm manifest %s failed validation: %s", e.Path, strings.Join(e.Problems, "; "))
}
