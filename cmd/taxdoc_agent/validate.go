package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/taxdoc-finalizer/internal/schemas"
)

var validateCommand = &cobra.Command{
	Use:   "validate <catalog.json>",
	Short: "Validate a finalized catalog file against the output schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if err := schemas.ValidateCatalogFile(args[0]); err != nil {
			return err
		}
		fmt.Printf("%s is a valid finalized catalog\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCommand)
}
