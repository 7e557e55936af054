// Package main provides the entry point for the tax document finalizer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taxdoc_agent",
	Short: "Tax Document Finalizer",
	Long:  "Tax Document Finalizer ingests form-recognition extraction records for paystubs, W-2s, and 1120 corporate returns, and consolidates them into a single deduplicated catalog grouped by document kind.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
