// Package requirements appends selected packages to the generated project's
// pip requirements file.
package requirements

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the pip requirements file inside the researcher hub.
const FileName = "requirements.txt"

// File appends package specifiers to a requirements file. Appends never
// rewrite existing content; each specifier lands on its own line.
type File struct {
	Path string
}

// NewFile returns the requirements file under dir.
func NewFile(dir string) *File {
	return &File{Path: filepath.Join(dir, FileName)}
}

// Append adds each package specifier on a new line. The file is created if
// the template did not seed one.
func (f *File) Append(packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	file, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &Error{Path: f.Path, Message: "opening requirements file", Cause: err}
	}
	defer file.Close()

	for _, pkg := range packages {
		if _, err := fmt.Fprintf(file, "\n%s", pkg); err != nil {
			return &Error{Path: f.Path, Message: "appending " + pkg, Cause: err}
		}
	}
	return nil
}

// Lines returns the requirement lines currently in the file, blank lines
// dropped.
func (f *File) Lines() ([]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &Error{Path: f.Path, Message: "reading requirements file", Cause: err}
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines, nil
}

// Error indicates a requirements file operation failed.
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("requirements error (%s): %s: %v", e.Path, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
