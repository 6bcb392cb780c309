package prompt

import "fmt"

// Error indicates a prompt could not be rendered or answered.
type Error struct {
	Prompt  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("prompt error (%s): %s: %v", e.Prompt, e.Message, e.Cause)
	}
	return fmt.Sprintf("prompt error (%s): %s", e.Prompt, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
