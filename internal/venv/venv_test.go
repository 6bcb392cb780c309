package venv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoresearch/autora-scaffold/internal/toolchain"
)

func TestInterpreter(t *testing.T) {
	tests := []struct {
		name   string
		python string
		want   string
	}{
		{"default version", "", "python3.8"},
		{"bare version", "3.11", "python3.11"},
		{"full binary name", "python3.11", "python3.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := New(t.TempDir(), tt.python, toolchain.NewScriptedRunner())
			assert.Equal(t, tt.want, env.Interpreter())
		})
	}
}

func TestCreate_CommandShape(t *testing.T) {
	runner := toolchain.NewScriptedRunner()
	root := t.TempDir()
	env := New(root, "", runner)

	require.NoError(t, env.Create(context.Background()))

	require.Len(t, runner.Calls, 1)
	call := runner.Calls[0]
	assert.Equal(t, "python3.8", call.Name)
	assert.Equal(t, []string{"-m", "venv", filepath.Join(root, Dir)}, call.Args)
}

func TestCreate_InterpreterMissing(t *testing.T) {
	runner := toolchain.NewScriptedRunner().WithoutTool("python3.8")
	env := New(t.TempDir(), "", runner)

	err := env.Create(context.Background())
	require.Error(t, err)

	var venvErr *Error
	require.ErrorAs(t, err, &venvErr)
	assert.Contains(t, venvErr.Message, "python3.8 not found")
	assert.Empty(t, runner.Calls)
}

func TestCreate_NonZeroExitIsFatal(t *testing.T) {
	runner := toolchain.NewScriptedRunner().On("python3.8", toolchain.Result{
		ExitCode: 1,
		Stderr:   "Error: ensurepip is not available\n",
	})
	env := New(t.TempDir(), "", runner)

	err := env.Create(context.Background())
	require.Error(t, err)

	var installErr *InstallError
	require.ErrorAs(t, err, &installErr)
	assert.Contains(t, installErr.LogOutput, "ensurepip")
}

func TestInstallRequirements_CommandShape(t *testing.T) {
	runner := toolchain.NewScriptedRunner()
	root := t.TempDir()
	env := New(root, "", runner)

	require.NoError(t, env.InstallRequirements(context.Background(), "researcher_hub/requirements.txt", false))

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, env.PipBinary(), runner.Calls[0].Name)
	assert.Equal(t, []string{"install", "-r", "researcher_hub/requirements.txt"}, runner.Calls[0].Args)
}

func TestInstallRequirements_PreReleases(t *testing.T) {
	runner := toolchain.NewScriptedRunner()
	env := New(t.TempDir(), "", runner)

	require.NoError(t, env.InstallRequirements(context.Background(), "requirements.txt", true))

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, []string{"install", "--pre", "-r", "requirements.txt"}, runner.Calls[0].Args)
}

func TestInstallRequirements_PipFailureIsFatal(t *testing.T) {
	runner := toolchain.NewScriptedRunner()
	env := New(t.TempDir(), "", runner)
	runner.On(env.PipBinary(), toolchain.Result{ExitCode: 1, Stderr: "No matching distribution found\n"})

	err := env.InstallRequirements(context.Background(), "requirements.txt", false)
	require.Error(t, err)

	var installErr *InstallError
	require.ErrorAs(t, err, &installErr)
	assert.Contains(t, installErr.LogOutput, "No matching distribution")
}

func TestInstallPackages_CommandShape(t *testing.T) {
	runner := toolchain.NewScriptedRunner()
	env := New(t.TempDir(), "", runner)

	require.NoError(t, env.InstallPackages(context.Background(), false, "autora", "autora[theorist-bms]"))

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, []string{"install", "autora", "autora[theorist-bms]"}, runner.Calls[0].Args)
}

func TestInstallPackages_PreReleases(t *testing.T) {
	runner := toolchain.NewScriptedRunner()
	env := New(t.TempDir(), "", runner)

	require.NoError(t, env.InstallPackages(context.Background(), true, "autora"))

	require.Len(t, runner.Calls, 1)
	assert.Equal(t, []string{"install", "--pre", "autora"}, runner.Calls[0].Args)
}

func TestInstallPackages_NothingIsNoOp(t *testing.T) {
	runner := toolchain.NewScriptedRunner()
	env := New(t.TempDir(), "", runner)

	require.NoError(t, env.InstallPackages(context.Background(), false))
	assert.Empty(t, runner.Calls)
}

func TestRemove_Idempotent(t *testing.T) {
	root := t.TempDir()
	env := New(root, "", toolchain.NewScriptedRunner())

	require.NoError(t, os.MkdirAll(env.Path(), 0o755))
	require.True(t, env.Exists())

	require.NoError(t, env.Remove())
	assert.False(t, env.Exists())

	require.NoError(t, env.Remove())
	require.NoError(t, env.Remove())
}
