package toolchain

import (
	"context"
	"strings"
	"sync"
)

// Call records one command handed to a ScriptedRunner.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// Command renders the call the way it would appear on a shell line.
func (c Call) Command() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ScriptedRunner replays canned results instead of executing anything. The
// test suites of every package that drives external tools substitute it for
// the real runner. Results are keyed by the full command line, falling back
// to the bare tool name; unscripted commands succeed with empty output.
type ScriptedRunner struct {
	Results map[string]Result
	Errs    map[string]error
	Missing map[string]bool // tools LookPath should report absent

	mu    sync.Mutex
	Calls []Call
}

func NewScriptedRunner() *ScriptedRunner {
	return &ScriptedRunner{
		Results: make(map[string]Result),
		Errs:    make(map[string]error),
		Missing: make(map[string]bool),
	}
}

// On scripts the result for a full command line, e.g. "firebase --version".
func (s *ScriptedRunner) On(command string, result Result) *ScriptedRunner {
	s.Results[command] = result
	return s
}

// FailWith scripts an execution error for a full command line or tool name.
func (s *ScriptedRunner) FailWith(command string, err error) *ScriptedRunner {
	s.Errs[command] = err
	return s
}

// WithoutTool makes LookPath miss the named tool.
func (s *ScriptedRunner) WithoutTool(name string) *ScriptedRunner {
	s.Missing[name] = true
	return s
}

func (s *ScriptedRunner) Run(_ context.Context, name string, args []string, opts Opts) (Result, error) {
	call := Call{Name: name, Args: args, Dir: opts.Dir}
	s.mu.Lock()
	s.Calls = append(s.Calls, call)
	s.mu.Unlock()

	if err, ok := s.Errs[call.Command()]; ok {
		return Result{}, err
	}
	if err, ok := s.Errs[name]; ok {
		return Result{}, err
	}
	if result, ok := s.Results[call.Command()]; ok {
		return result, nil
	}
	if result, ok := s.Results[name]; ok {
		return result, nil
	}
	return Result{}, nil
}

func (s *ScriptedRunner) LookPath(name string) (string, error) {
	if s.Missing[name] {
		return "", &Error{Tool: name, Message: "not on PATH"}
	}
	return "/usr/bin/" + name, nil
}

// CommandLines returns every recorded call as a shell-style line, in order.
func (s *ScriptedRunner) CommandLines() []string {
	lines := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		lines = append(lines, call.Command())
	}
	return lines
}
