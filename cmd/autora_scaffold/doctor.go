package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autoresearch/autora-scaffold/internal/toolchain"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check for the external tools the scaffolder shells out to",
	Long:  "Probe for node, npm, npx, the firebase CLI, and python, and report which are available. Missing tools only matter for the flows that use them.",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	statuses := toolchain.Doctor(cmd.Context(), toolchain.NewExecRunner())

	missing := 0
	for _, status := range statuses {
		switch {
		case status.Present && status.Version != "":
			fmt.Fprintf(cmd.OutOrStdout(), "  ok      %-10s %s (%s)\n", status.Name, status.Version, status.Path)
		case status.Present:
			fmt.Fprintf(cmd.OutOrStdout(), "  ok      %-10s version probe failed (%s)\n", status.Name, status.Path)
		default:
			missing++
			fmt.Fprintf(cmd.OutOrStdout(), "  missing %s\n", status.Name)
		}
	}

	if missing > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d tools missing. The web experiment needs node/npm/npx; bootstrap needs python.\n", missing, len(statuses))
	}
	return nil
}
