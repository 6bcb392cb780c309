package project

import "fmt"

// RecordError indicates the project record could not be read, written, or
// validated.
type RecordError struct {
	Message string
	Cause   error
}

func (e *RecordError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("project record error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("project record error: %s", e.Message)
}

func (e *RecordError) Unwrap() error {
	return e.Cause
}
