// Package toolchain runs the external developer tools a generation run leans
// on (node's npx and npm, the firebase CLI, python) behind a stub-friendly
// interface.
package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Result holds the outcome of one command execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Opts holds optional parameters for command execution.
type Opts struct {
	Dir    string    // working directory
	Echo   io.Writer // mirrors combined output live when set
	UseEnv []string  // extra KEY=VALUE environment entries
}

// Runner executes external commands. Run returns a Result with ExitCode set
// whenever the process actually ran, even when it exited non-zero; an error
// return means the command could not be executed at all (binary missing,
// context cancelled). LookPath reports whether a tool is on PATH.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Opts) (Result, error)
	LookPath(name string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts Opts) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if opts.Echo != nil {
		cmd.Stdout = io.MultiWriter(&stdout, opts.Echo)
		cmd.Stderr = io.MultiWriter(&stderr, opts.Echo)
	}
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.UseEnv) > 0 {
		cmd.Env = append(cmd.Environ(), opts.UseEnv...)
	}

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, &Error{Tool: name, Message: "command did not run", Cause: err}
	}
	return result, nil
}

func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Error indicates a tool invocation could not be started.
type Error struct {
	Tool    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("toolchain error (%s): %s: %v", e.Tool, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
