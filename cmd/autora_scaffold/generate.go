package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autoresearch/autora-scaffold/internal/config"
	"github.com/autoresearch/autora-scaffold/internal/generator"
	"github.com/autoresearch/autora-scaffold/internal/toolchain"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the interactive setup flow in an existing project",
	Long:  "Run the post-generation flow: choose optional AutoRA packages from the published dependency manifest, optionally scaffold the Firebase web experiment, and wire the chosen example into place.",
	RunE:  runGenerate,
}

var (
	generateDir            string
	generateBranch         string
	generateConfigPath     string
	generateAnswers        string
	generateNonInteractive bool
	generateVerbose        bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateDir, "dir", "d", "", "Project directory (default current directory)")
	generateCmd.Flags().StringVarP(&generateBranch, "source-branch", "b", "", "AutoRA branch the dependency manifest is fetched from")
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Path to JSON config file")
	generateCmd.Flags().StringVarP(&generateAnswers, "answers", "a", "", "Path to recorded answers YAML for non-interactive runs")
	generateCmd.Flags().BoolVar(&generateNonInteractive, "non-interactive", false, "Fail instead of prompting (requires --answers)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(config.Config{
		Dir:          generateDir,
		SourceBranch: generateBranch,
		Answers:      generateAnswers,
		Verbose:      generateVerbose,
	}, generateConfigPath)
	if err != nil {
		return err
	}

	prompter, interactive, err := buildPrompter(cfg.Answers, generateNonInteractive)
	if err != nil {
		return err
	}

	opts, err := generatorOptions(cfg, interactive)
	if err != nil {
		return err
	}

	printer := newPrinter(cfg.Verbose)
	gen := generator.New(opts, prompter, toolchain.NewExecRunner(), nil, printer)

	record, err := gen.Run(cmd.Context())
	if outcome := reportOutcome(printer, err); outcome != nil || record == nil {
		return outcome
	}

	printer.Success("Project %s is ready.", record.Name)
	fmt.Fprintf(cmd.OutOrStdout(), "Researcher hub: %s/researcher_hub\n", opts.Dir)
	if record.Firebase {
		fmt.Fprintf(cmd.OutOrStdout(), "Web experiment: %s/testing_zone\n", opts.Dir)
	}
	return nil
}
