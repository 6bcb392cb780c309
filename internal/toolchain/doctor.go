package toolchain

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DoctorTools are the external tools a generation run may shell out to, in
// report order.
var DoctorTools = []string{"node", "npm", "npx", "firebase", "python3"}

// ToolStatus is the probe result for one external tool.
type ToolStatus struct {
	Name    string
	Path    string // resolved location, empty when absent
	Version string // first line of the version probe, empty when it failed
	Present bool
}

// Doctor probes the named tools (DoctorTools when none are given) and reports
// their presence and versions. Probes run concurrently; the generation flow
// itself never does, but doctor only reads. Results keep the requested order.
func Doctor(ctx context.Context, runner Runner, names ...string) []ToolStatus {
	// Cobra hands subcommands a nil context when none was set on the root.
	if ctx == nil {
		ctx = context.Background()
	}
	if len(names) == 0 {
		names = DoctorTools
	}

	statuses := make([]ToolStatus, len(names))
	group, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		group.Go(func() error {
			statuses[i] = probe(ctx, runner, name)
			return nil
		})
	}
	// Probes report absence through the status, never through an error.
	_ = group.Wait()
	return statuses
}

func probe(ctx context.Context, runner Runner, name string) ToolStatus {
	status := ToolStatus{Name: name}

	path, err := runner.LookPath(name)
	if err != nil {
		return status
	}
	status.Path = path
	status.Present = true

	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	result, err := runner.Run(ctx, name, []string{"--version"}, Opts{})
	if err != nil || result.ExitCode != 0 {
		return status
	}
	version, _, _ := strings.Cut(strings.TrimSpace(result.Stdout), "\n")
	status.Version = version
	return status
}
