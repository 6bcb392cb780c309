package venv

import "fmt"

// Error indicates a virtual environment operation could not run.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("venv error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("venv error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// InstallError indicates the interpreter or pip ran but failed. LogOutput
// carries the captured tool output for diagnosis.
type InstallError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("venv install error: %s", e.Message)
}

func (e *InstallError) Unwrap() error {
	return e.Cause
}
