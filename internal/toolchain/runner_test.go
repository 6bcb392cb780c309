package toolchain

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantCode int
	}{
		{"exit 0", "exit 0", 0},
		{"exit 1", "exit 1", 1},
		{"exit 42", "exit 42", 42},
	}

	runner := NewExecRunner()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := runner.Run(context.Background(), "sh", []string{"-c", tt.script}, Opts{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, result.ExitCode)
		})
	}
}

func TestExecRunner_CapturesStdoutAndStderr(t *testing.T) {
	runner := NewExecRunner()

	result, err := runner.Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"}, Opts{})
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "out")
	assert.Contains(t, result.Stderr, "err")
}

func TestExecRunner_EchoMirrorsOutput(t *testing.T) {
	runner := NewExecRunner()

	var echoed bytes.Buffer
	result, err := runner.Run(context.Background(), "sh", []string{"-c", "echo mirrored"}, Opts{Echo: &echoed})
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "mirrored")
	assert.Contains(t, echoed.String(), "mirrored")
}

func TestExecRunner_Dir(t *testing.T) {
	runner := NewExecRunner()
	dir := t.TempDir()

	result, err := runner.Run(context.Background(), "pwd", nil, Opts{Dir: dir})
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, dir)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	runner := NewExecRunner()

	_, err := runner.Run(context.Background(), "no_such_tool_xyz", nil, Opts{})
	require.Error(t, err)

	var toolErr *Error
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "no_such_tool_xyz", toolErr.Tool)
}

func TestExecRunner_LookPath(t *testing.T) {
	runner := NewExecRunner()

	path, err := runner.LookPath("sh")
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	_, err = runner.LookPath("no_such_tool_xyz")
	assert.Error(t, err)
}
