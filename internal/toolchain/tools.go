package toolchain

import (
	"context"
	"io"
	"time"
)

const (
	// ProbeTimeout bounds version probes of installed tools.
	ProbeTimeout = 30 * time.Second
	// InstallTimeout bounds global npm installs.
	InstallTimeout = 10 * time.Minute
	// ScaffoldTimeout bounds the create-react-app run, which downloads the
	// template and its dependency tree.
	ScaffoldTimeout = 20 * time.Minute
)

// WebAppTemplate is the create-react-app template that wires the experiment
// to Firebase hosting.
const WebAppTemplate = "autora-firebase"

// Tools exposes the external tool invocations of a generation run.
type Tools struct {
	Runner Runner
	Echo   io.Writer // live output for long-running installs; nil keeps them quiet
}

func New(runner Runner) *Tools {
	return &Tools{Runner: runner}
}

// NodeAvailable reports whether npx is on PATH. The web experiment cannot be
// scaffolded without it.
func (t *Tools) NodeAvailable() bool {
	_, err := t.Runner.LookPath("npx")
	return err == nil
}

// ScaffoldWebApp runs create-react-app in dir to materialize the web
// experiment under appName.
func (t *Tools) ScaffoldWebApp(ctx context.Context, dir, appName, template string) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, ScaffoldTimeout)
	defer cancel()

	return t.Runner.Run(ctx, "npx", []string{"create-react-app", appName, "--template", template}, Opts{
		Dir:  dir,
		Echo: t.Echo,
	})
}

// FirebaseCLIInstalled probes for a working firebase CLI. A missing binary or
// a failing version probe both count as not installed.
func (t *Tools) FirebaseCLIInstalled(ctx context.Context) bool {
	if _, err := t.Runner.LookPath("firebase"); err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	result, err := t.Runner.Run(ctx, "firebase", []string{"--version"}, Opts{})
	return err == nil && result.ExitCode == 0
}

// InstallFirebaseCLI installs firebase-tools globally through npm.
func (t *Tools) InstallFirebaseCLI(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, InstallTimeout)
	defer cancel()

	return t.Runner.Run(ctx, "npm", []string{"install", "-g", "firebase-tools"}, Opts{
		Echo: t.Echo,
	})
}
