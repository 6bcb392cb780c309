// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvSourceBranch names the environment variable that supplies a default
// manifest source branch.
const EnvSourceBranch = "AUTORA_SOURCE_BRANCH"

// DefaultSourceBranch is the manifest branch used when neither a flag, a
// config file, nor the environment names one.
const DefaultSourceBranch = "main"

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// CLI flags and the environment.
type Config struct {
	// Dir is the project directory the flow operates in.
	Dir string `json:"dir,omitempty"`
	// SourceBranch selects the AutoRA branch the dependency manifest is
	// fetched from.
	SourceBranch string `json:"source_branch,omitempty"`
	// PythonVersion pins the interpreter for bootstrap's virtual environment.
	PythonVersion string `json:"python_version,omitempty"`
	// Answers points at a recorded answer set for non-interactive runs.
	Answers string `json:"answers,omitempty"`
	// Verbose prints detailed progress information.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Branch names land in a URL path; whitespace means a mangled flag.
	if strings.ContainsAny(c.SourceBranch, " \t") {
		return fmt.Errorf("config error: 'source_branch' must not contain whitespace")
	}

	if c.Answers != "" {
		if _, err := os.Stat(c.Answers); os.IsNotExist(err) {
			return fmt.Errorf("config error: answers file not found: %s", c.Answers)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Dir == "" {
		result.Dir = defaults.Dir
	}
	if result.SourceBranch == "" {
		result.SourceBranch = defaults.SourceBranch
	}
	if result.PythonVersion == "" {
		result.PythonVersion = defaults.PythonVersion
	}
	if result.Answers == "" {
		result.Answers = defaults.Answers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResolveSourceBranch picks the branch from the flag value, the environment,
// then the default, in that order.
func ResolveSourceBranch(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvSourceBranch); env != "" {
		return env
	}
	return DefaultSourceBranch
}
