package prompt

import (
	"os"

	"gopkg.in/yaml.v3"
)

// answersFile is the on-disk shape of a recorded answer set.
type answersFile struct {
	Confirms        map[string]bool     `yaml:"confirms"`
	Selections      map[string]string   `yaml:"selections"`
	MultiSelections map[string][]string `yaml:"multi_selections"`
	Inputs          map[string]string   `yaml:"inputs"`
}

// LoadAnswers reads a recorded answer set from a YAML file. Keys address
// prompts by their stable keys; multi-select groups are addressed by group
// key.
func LoadAnswers(path string) (*Answers, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Prompt: path, Message: "reading answers file", Cause: err}
	}

	var file answersFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, &Error{Prompt: path, Message: "decoding answers file", Cause: err}
	}

	return &Answers{
		Confirms:        file.Confirms,
		Selections:      file.Selections,
		MultiSelections: file.MultiSelections,
		Inputs:          file.Inputs,
	}, nil
}
