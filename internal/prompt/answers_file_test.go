package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAnswers(t *testing.T) {
	content := `
confirms:
  advanced: true
  firebase: false
selections:
  project-type: sweet_bean
multi_selections:
  all-theorists:
    - autora[theorist-bms]
    - autora[theorist-darts]
inputs:
  project-name: visual search study
`
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	answers, err := LoadAnswers(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{"advanced": true, "firebase": false}, answers.Confirms)
	assert.Equal(t, "sweet_bean", answers.Selections["project-type"])
	assert.Equal(t, []string{"autora[theorist-bms]", "autora[theorist-darts]"}, answers.MultiSelections["all-theorists"])
	assert.Equal(t, "visual search study", answers.Inputs["project-name"])
}

func TestLoadAnswers_MissingFile(t *testing.T) {
	_, err := LoadAnswers(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var promptErr *Error
	assert.ErrorAs(t, err, &promptErr)
}

func TestLoadAnswers_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("confirms: [not a map"), 0644))

	_, err := LoadAnswers(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding answers file")
}
