package main

import (
	"github.com/spf13/cobra"

	"github.com/autoresearch/autora-scaffold/internal/config"
	"github.com/autoresearch/autora-scaffold/internal/generator"
	"github.com/autoresearch/autora-scaffold/internal/toolchain"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Set up a Python environment with the selected AutoRA packages",
	Long:  "Create a version-pinned virtual environment, choose optional AutoRA packages from the published dependency manifest, and pip-install them into it. For researcher-hub-only projects without a web experiment.",
	RunE:  runBootstrap,
}

var (
	bootstrapDir     string
	bootstrapBranch  string
	bootstrapPython  string
	bootstrapAnswers string
	bootstrapVerbose bool
)

func init() {
	bootstrapCmd.Flags().StringVarP(&bootstrapDir, "dir", "d", "", "Project directory (default current directory)")
	bootstrapCmd.Flags().StringVarP(&bootstrapBranch, "source-branch", "b", "", "AutoRA branch the dependency manifest is fetched from")
	bootstrapCmd.Flags().StringVarP(&bootstrapPython, "python", "p", "", "Python version to pin, e.g. 3.8")
	bootstrapCmd.Flags().StringVarP(&bootstrapAnswers, "answers", "a", "", "Path to recorded answers YAML for non-interactive runs")
	bootstrapCmd.Flags().BoolVarP(&bootstrapVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(bootstrapCmd)
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(config.Config{
		Dir:           bootstrapDir,
		SourceBranch:  bootstrapBranch,
		PythonVersion: bootstrapPython,
		Answers:       bootstrapAnswers,
		Verbose:       bootstrapVerbose,
	}, "")
	if err != nil {
		return err
	}

	prompter, interactive, err := buildPrompter(cfg.Answers, false)
	if err != nil {
		return err
	}

	opts, err := generatorOptions(cfg, interactive)
	if err != nil {
		return err
	}

	printer := newPrinter(cfg.Verbose)
	gen := generator.New(opts, prompter, toolchain.NewExecRunner(), nil, printer)

	_, err = gen.Bootstrap(cmd.Context())
	return reportOutcome(printer, err)
}
