// Package venv creates and provisions the throwaway python virtual
// environment that backs a scaffolded researcher hub. The environment lives
// in the project's temp directory so generation cleanup can reclaim it.
package venv

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/autoresearch/autora-scaffold/internal/toolchain"
)

const (
	// Dir is the environment directory under the project root.
	Dir = "temp"

	// DefaultPythonVersion pins the interpreter the AutoRA packages are
	// tested against.
	DefaultPythonVersion = "3.8"

	// CreateTimeout bounds environment creation.
	CreateTimeout = 2 * time.Minute
	// InstallTimeout bounds the pip install of the requirements set.
	InstallTimeout = 15 * time.Minute
)

// Env is a project-local virtual environment.
type Env struct {
	Root   string    // project root directory
	Python string    // interpreter version ("3.8") or binary name ("python3.11")
	Echo   io.Writer // live pip output when set

	runner toolchain.Runner
}

// New returns the environment rooted at root. An empty pythonVersion pins the
// default.
func New(root, pythonVersion string, runner toolchain.Runner) *Env {
	if pythonVersion == "" {
		pythonVersion = DefaultPythonVersion
	}
	return &Env{Root: root, Python: pythonVersion, runner: runner}
}

// Path returns the environment directory.
func (e *Env) Path() string {
	return filepath.Join(e.Root, Dir)
}

// Interpreter returns the python binary used to create the environment.
func (e *Env) Interpreter() string {
	if strings.HasPrefix(e.Python, "python") || strings.ContainsRune(e.Python, os.PathSeparator) {
		return e.Python
	}
	return "python" + e.Python
}

// Exists reports whether the environment directory is present.
func (e *Env) Exists() bool {
	info, err := os.Stat(e.Path())
	return err == nil && info.IsDir()
}

// Create materializes the environment. Unlike the web tooling steps, a
// failure here is fatal: nothing downstream works without the environment.
func (e *Env) Create(ctx context.Context) error {
	interpreter := e.Interpreter()
	if _, err := e.runner.LookPath(interpreter); err != nil {
		return &Error{
			Message: fmt.Sprintf("%s not found in PATH. Install Python %s or pass another interpreter", interpreter, DefaultPythonVersion),
			Cause:   err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, CreateTimeout)
	defer cancel()

	result, err := e.runner.Run(ctx, interpreter, []string{"-m", "venv", e.Path()}, toolchain.Opts{Echo: e.Echo})
	if err != nil {
		return &Error{Message: "creating virtual environment", Cause: err}
	}
	if result.ExitCode != 0 {
		return &InstallError{
			Message:   fmt.Sprintf("%s -m venv exited with code %d", interpreter, result.ExitCode),
			LogOutput: result.Stdout + result.Stderr,
		}
	}
	return nil
}

// InstallRequirements pip-installs the requirements file into the
// environment. pre opts in to release candidates of the AutoRA packages.
func (e *Env) InstallRequirements(ctx context.Context, requirementsPath string, pre bool) error {
	args := []string{"install"}
	if pre {
		args = append(args, "--pre")
	}
	args = append(args, "-r", requirementsPath)
	return e.pip(ctx, args)
}

// InstallPackages pip-installs individual package specifiers. pre opts in to
// release candidates.
func (e *Env) InstallPackages(ctx context.Context, pre bool, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	args := []string{"install"}
	if pre {
		args = append(args, "--pre")
	}
	return e.pip(ctx, append(args, packages...))
}

func (e *Env) pip(ctx context.Context, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, InstallTimeout)
	defer cancel()

	result, err := e.runner.Run(ctx, e.PipBinary(), args, toolchain.Opts{Echo: e.Echo})
	if err != nil {
		return &Error{Message: "running pip", Cause: err}
	}
	if result.ExitCode != 0 {
		return &InstallError{
			Message:   fmt.Sprintf("pip exited with code %d", result.ExitCode),
			LogOutput: result.Stdout + result.Stderr,
		}
	}
	return nil
}

// PipBinary returns the environment's pip, accounting for the Scripts layout
// on Windows.
func (e *Env) PipBinary() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Path(), "Scripts", "pip.exe")
	}
	return filepath.Join(e.Path(), "bin", "pip")
}

// Remove deletes the environment directory. Removing an absent environment
// is a no-op, so cleanup can run unconditionally.
func (e *Env) Remove() error {
	if !e.Exists() {
		return nil
	}
	if err := os.RemoveAll(e.Path()); err != nil {
		return &Error{Message: "removing virtual environment", Cause: err}
	}
	return nil
}
