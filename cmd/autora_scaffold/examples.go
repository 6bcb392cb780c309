package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autoresearch/autora-scaffold/internal/scaffold"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the available example experiments",
	RunE:  runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "%-30s %-32s %s\n", "LABEL", "TOKEN", "EXTRAS")
	for _, example := range scaffold.Examples {
		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %-32s %s\n", example.Label, example.Token, exampleExtras(example))
	}
	return nil
}

// exampleExtras summarizes what an example adds beyond its main/workflow pair.
func exampleExtras(example scaffold.Example) string {
	var extras []string
	if len(example.PipPackages) > 0 {
		extras = append(extras, "pip: "+strings.Join(example.PipPackages, ", "))
	}
	if len(example.NpmDependencies) > 0 {
		extras = append(extras, fmt.Sprintf("npm pins: %d", len(example.NpmDependencies)))
	}
	if example.Stylesheet != nil {
		extras = append(extras, "stylesheet: "+example.Stylesheet.Target)
	}
	if len(extras) == 0 {
		return "-"
	}
	return strings.Join(extras, "; ")
}
