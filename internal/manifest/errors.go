package manifest

import "fmt"

// ParseError indicates the fetched document could not be decoded or does not
// have the shape the selection menus require.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("manifest parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("manifest parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
