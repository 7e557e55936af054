package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/taxdoc-finalizer/internal/config"
	"github.com/jonathan/taxdoc-finalizer/internal/discover"
	"github.com/jonathan/taxdoc-finalizer/internal/observability"
	"github.com/jonathan/taxdoc-finalizer/internal/pipeline"
	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

// outputFileName is the catalog file written into the output directory.
const outputFileName = "finalized_output.json"

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full document finalization pipeline end-to-end",
	Long: `Discovers extraction records, runs classification -> extraction -> date normalization -> validation per record, then groups and deduplicates the batch into a single finalized catalog.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runFinalizeCmd,
}

var (
	runConfigPath  string
	runInput       string
	runOutput      string
	runDefaultType string
	runWorkers     int
	runVerbose     bool
	runDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runInput, "input", "i", "", "Directory scanned recursively for *.json extraction records")
	runCommand.Flags().StringVarP(&runOutput, "output", "o", "", "Directory the finalized catalog is written to")
	runCommand.Flags().StringVar(&runDefaultType, "default-type", "", "Document kind assigned when classification finds no signal (paystub, w2, or 1120)")
	runCommand.Flags().IntVar(&runWorkers, "workers", 0, "Record-processing worker count")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for run persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runFinalizeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = runInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("default-type") {
		cfg.DefaultType = runDefaultType
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = runWorkers
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Input:   "input",
		Output:  "output",
		Workers: 4,
	})

	// Step 4: Database URL env fallback (persistence stays optional)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 5: Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputs, err := discover.CollectInputs(cfg.Input)
	if err != nil {
		return err
	}

	catalog, report, err := pipeline.Run(ctx, pipeline.RunOptions{
		Inputs:      inputs,
		InputDir:    cfg.Input,
		DefaultKind: cfg.DefaultKind(),
		Workers:     cfg.Workers,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	outputPath := filepath.Join(cfg.Output, outputFileName)
	if err := discover.WriteCatalog(outputPath, catalog); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printSummary(outputPath, catalog, report)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintCatalogSummary(catalog)
		printer.PrintRejections(report)
	}

	return nil
}

// printSummary mirrors the operator report: counts, per-file failures, and
// per-kind totals.
func printSummary(outputPath string, catalog *types.Catalog, report *types.RunReport) {
	fmt.Printf("\nProcessing complete. Output saved to: %s\n", outputPath)
	fmt.Printf("Successfully processed: %d files\n", report.Processed)
	fmt.Printf("Files with errors: %d files\n", report.Errors)

	if len(report.Rejections) > 0 {
		fmt.Printf("\nFiles with errors:\n")
		for _, rej := range report.Rejections {
			fmt.Printf("  - %s: %s\n", rej.Source, rej.Reason)
		}
	}

	for _, kind := range types.Kinds {
		fmt.Printf("Found %d %s documents\n", len(catalog.KindRecords(kind)), kind)
	}
}
