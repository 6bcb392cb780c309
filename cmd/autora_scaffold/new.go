package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/autoresearch/autora-scaffold/internal/config"
	"github.com/autoresearch/autora-scaffold/internal/generator"
	"github.com/autoresearch/autora-scaffold/internal/project"
	"github.com/autoresearch/autora-scaffold/internal/scaffold"
	"github.com/autoresearch/autora-scaffold/internal/toolchain"
)

var newCmd = &cobra.Command{
	Use:   "new [dir]",
	Short: "Create a new AutoRA project",
	Long:  "Create a new AutoRA project: materialize the researcher hub and its staged example assets, then run the interactive setup flow inside it.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNew,
}

var (
	newName      string
	newBranch    string
	newAnswers   string
	newSkipSetup bool
	newVerbose   bool
)

// KeyProjectName addresses the project name prompt in recorded answer sets.
const KeyProjectName = "project-name"

func init() {
	newCmd.Flags().StringVarP(&newName, "name", "n", "", "Project name (prompted for when omitted)")
	newCmd.Flags().StringVarP(&newBranch, "source-branch", "b", "", "AutoRA branch the dependency manifest is fetched from")
	newCmd.Flags().StringVarP(&newAnswers, "answers", "a", "", "Path to recorded answers YAML for non-interactive runs")
	newCmd.Flags().BoolVar(&newSkipSetup, "skip-setup", false, "Materialize the template without running the setup flow")
	newCmd.Flags().BoolVarP(&newVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	branch := config.ResolveSourceBranch(newBranch)
	printer := newPrinter(newVerbose)

	prompter, interactive, err := buildPrompter(newAnswers, false)
	if err != nil {
		return err
	}

	name := newName
	if name == "" {
		name, err = prompter.Input(KeyProjectName, "What is your project named?", "my_autora_project")
		if err != nil {
			return reportOutcome(printer, err)
		}
	}
	slug := project.Slugify(name)
	if slug == "" {
		return fmt.Errorf("project name %q leaves nothing usable as a directory name", name)
	}

	dir := slug
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %s already exists", dir)
	}

	printer.Info("Creating project %s in %s...", name, dir)
	if err := scaffold.Materialize(dir, scaffold.Vars{ProjectName: name, SourceBranch: branch}); err != nil {
		return err
	}

	record := project.NewRecord(name, filepath.Base(dir), project.ModeBasic, branch)
	if err := record.Save(dir); err != nil {
		return err
	}

	if newSkipSetup {
		printer.Success("Project materialized. Run `autora_scaffold generate --dir %s` to finish setup.", dir)
		return nil
	}

	opts := generator.Options{
		Dir:          dir,
		ProjectName:  name,
		SourceBranch: branch,
		Interactive:  interactive,
		Verbose:      newVerbose,
	}
	gen := generator.New(opts, prompter, toolchain.NewExecRunner(), nil, printer)

	_, err = gen.Run(cmd.Context())
	return reportOutcome(printer, err)
}
