package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/autoresearch/autora-scaffold/internal/config"
	"github.com/autoresearch/autora-scaffold/internal/generator"
	"github.com/autoresearch/autora-scaffold/internal/observability"
	"github.com/autoresearch/autora-scaffold/internal/project"
	"github.com/autoresearch/autora-scaffold/internal/prompt"
)

// resolveConfig merges flag values with an optional config file and fills the
// source branch from the environment when nothing else names one.
func resolveConfig(flags config.Config, configPath string) (config.Config, error) {
	cfg := flags
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg.SourceBranch = config.ResolveSourceBranch(cfg.SourceBranch)
	if cfg.Dir == "" {
		cfg.Dir = "."
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// buildPrompter picks the prompt implementation for a run. A recorded answer
// set replays without a terminal; otherwise prompts render interactively.
// Interactive is false for replayed runs so spinners and live tool output
// stay off.
func buildPrompter(answersPath string, nonInteractive bool) (prompt.Prompter, bool, error) {
	if answersPath != "" {
		answers, err := prompt.LoadAnswers(answersPath)
		if err != nil {
			return nil, false, err
		}
		return answers, false, nil
	}
	if nonInteractive {
		return nil, false, fmt.Errorf("--non-interactive requires --answers")
	}
	return prompt.Terminal{}, true, nil
}

// generatorOptions assembles run options for a project directory. The project
// name comes from an existing record when one is present, falling back to the
// directory name.
func generatorOptions(cfg config.Config, interactive bool) (generator.Options, error) {
	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return generator.Options{}, fmt.Errorf("resolving project directory: %w", err)
	}

	name := filepath.Base(dir)
	if record, err := project.LoadRecord(dir); err == nil {
		name = record.Name
	}

	return generator.Options{
		Dir:           dir,
		ProjectName:   name,
		SourceBranch:  cfg.SourceBranch,
		PythonVersion: cfg.PythonVersion,
		Interactive:   interactive,
		Verbose:       cfg.Verbose,
	}, nil
}

// reportOutcome maps a flow error to the command result. Backing out of a
// prompt ends the run quietly instead of as a failure.
func reportOutcome(printer *observability.Printer, err error) error {
	if err == nil {
		return nil
	}
	if generator.Aborted(err) {
		printer.Info("Cancelled.")
		return nil
	}
	return err
}

func newPrinter(verbose bool) *observability.Printer {
	return observability.NewPrinter(os.Stdout, verbose)
}
