// Package main provides the entry point for the AutoRA project scaffolder.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autora_scaffold",
	Short: "AutoRA project scaffolder",
	Long:  "autora_scaffold generates a researcher project for AutoRA closed-loop experiments: a Python researcher hub, an optional Firebase web experiment, and a workflow example wired to both.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
