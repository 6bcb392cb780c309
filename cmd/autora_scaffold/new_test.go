package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoresearch/autora-scaffold/internal/project"
)

func TestNewCommand_SkipSetupMaterializesProject(t *testing.T) {
	binaryPath, err := filepath.Abs(getBinaryPath(t))
	require.NoError(t, err)

	workDir := t.TempDir()
	cmd := exec.Command(binaryPath, "new", "--name", "My Lab", "--skip-setup")
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	projectDir := filepath.Join(workDir, "my_lab")
	assert.DirExists(t, projectDir)
	assert.FileExists(t, filepath.Join(projectDir, "researcher_hub", "requirements.txt"))
	assert.DirExists(t, filepath.Join(projectDir, "example_workflows"))

	record, err := project.LoadRecord(projectDir)
	require.NoError(t, err)
	assert.Equal(t, "My Lab", record.Name)
	assert.Equal(t, "my_lab", record.Slug)
}

func TestNewCommand_ExistingDirectoryFails(t *testing.T) {
	binaryPath, err := filepath.Abs(getBinaryPath(t))
	require.NoError(t, err)

	workDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "my_lab"), 0o755))

	cmd := exec.Command(binaryPath, "new", "--name", "My Lab", "--skip-setup")
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "already exists")
}

func TestNewCommand_UnusableNameFails(t *testing.T) {
	binaryPath, err := filepath.Abs(getBinaryPath(t))
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "new", "--name", "!!!", "--skip-setup")
	cmd.Dir = t.TempDir()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "nothing usable")
}
