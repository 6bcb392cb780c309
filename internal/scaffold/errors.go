package scaffold

import "fmt"

// Error indicates a template or staging operation failed.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("scaffold error (%s): %s: %v", e.Path, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
