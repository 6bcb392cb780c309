package toolchain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctor_ReportsEveryToolInOrder(t *testing.T) {
	runner := NewScriptedRunner().
		On("node --version", Result{Stdout: "v20.11.0\n"}).
		On("npx --version", Result{Stdout: "10.2.4\n"}).
		On("firebase --version", Result{Stdout: "13.35.1\n"}).
		WithoutTool("npm").
		WithoutTool("python3")

	statuses := Doctor(context.Background(), runner)
	require.Len(t, statuses, len(DoctorTools))

	byName := make(map[string]ToolStatus, len(statuses))
	for i, status := range statuses {
		assert.Equal(t, DoctorTools[i], status.Name, "results must keep the requested order")
		byName[status.Name] = status
	}

	assert.True(t, byName["node"].Present)
	assert.Equal(t, "v20.11.0", byName["node"].Version)
	assert.True(t, byName["firebase"].Present)
	assert.False(t, byName["npm"].Present)
	assert.Empty(t, byName["npm"].Path)
	assert.False(t, byName["python3"].Present)
}

func TestDoctor_NilContextDoesNotPanic(t *testing.T) {
	runner := NewScriptedRunner().On("node --version", Result{Stdout: "v20.11.0\n"})

	statuses := Doctor(nil, runner, "node")
	require.Len(t, statuses, 1)
	assert.True(t, statuses[0].Present)
	assert.Equal(t, "v20.11.0", statuses[0].Version)
}

func TestDoctor_FailedVersionProbeStillCountsAsPresent(t *testing.T) {
	runner := NewScriptedRunner().On("node --version", Result{ExitCode: 1, Stderr: "segfault"})

	statuses := Doctor(context.Background(), runner, "node")
	require.Len(t, statuses, 1)

	assert.True(t, statuses[0].Present)
	assert.Equal(t, "/usr/bin/node", statuses[0].Path)
	assert.Empty(t, statuses[0].Version)
}

func TestDoctor_VersionKeepsFirstLineOnly(t *testing.T) {
	runner := NewScriptedRunner().On("python3 --version", Result{Stdout: "Python 3.11.2\nbuild details\n"})

	statuses := Doctor(context.Background(), runner, "python3")
	require.Len(t, statuses, 1)
	assert.Equal(t, "Python 3.11.2", statuses[0].Version)
}
