// Package pipeline provides the high-level orchestration for the document
// finalization process.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/taxdoc-finalizer/internal/classify"
	"github.com/jonathan/taxdoc-finalizer/internal/dates"
	"github.com/jonathan/taxdoc-finalizer/internal/db"
	"github.com/jonathan/taxdoc-finalizer/internal/dedup"
	"github.com/jonathan/taxdoc-finalizer/internal/discover"
	"github.com/jonathan/taxdoc-finalizer/internal/extract"
	"github.com/jonathan/taxdoc-finalizer/internal/types"
	"github.com/jonathan/taxdoc-finalizer/internal/validate"
)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Inputs      []discover.Input
	InputDir    string
	DefaultKind types.DocumentKind
	Workers     int
	Verbose     bool
	DatabaseURL string
}

// recordResult is the outcome of the per-record stages for one input.
// Exactly one of rec and rejection is set.
type recordResult struct {
	kind      types.DocumentKind
	rec       *types.CanonicalRecord
	rejection *types.Rejection
}

// Run executes the full batch: per-record classification, extraction, date
// normalization, and validation fan out over a bounded worker pool, then the
// grouping stage runs once per kind after every record has settled. The
// batch always completes; per-record failures surface in the report, never
// as an error.
func Run(ctx context.Context, opts RunOptions) (*types.Catalog, *types.RunReport, error) {
	report := &types.RunReport{RunID: uuid.New()}

	// Initialize database persistence if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			runID, err = database.CreateRun(ctx, opts.InputDir)
			if err != nil {
				fmt.Printf("Warning: Failed to create database run: %v\n", err)
			} else {
				report.RunID = runID
				if opts.Verbose {
					fmt.Printf("[VERBOSE] Created database run: %s\n", runID)
				}
			}
		}
	}

	classifier := classify.Classifier{Default: opts.DefaultKind}

	fmt.Printf("Step 1/3: Processing %d records...\n", len(opts.Inputs))

	// Stages 1-4 are pure per record, so they fan out freely. Results land
	// at the input's index to keep downstream accumulation deterministic.
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	results := make([]recordResult, len(opts.Inputs))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range opts.Inputs {
		i := i
		g.Go(func() error {
			results[i] = processOne(classifier, opts.Inputs[i])
			return nil
		})
	}
	// Workers never return errors; Wait is the stage barrier.
	_ = g.Wait()

	byKind := make(map[types.DocumentKind][]types.CanonicalRecord, len(types.Kinds))
	for _, res := range results {
		if res.rejection != nil {
			report.Errors++
			report.Rejections = append(report.Rejections, *res.rejection)
			continue
		}
		report.Processed++
		byKind[res.kind] = append(byKind[res.kind], *res.rec)
	}

	fmt.Printf("Step 2/3: Grouping and deduplicating...\n")
	catalog := &types.Catalog{}
	for _, kind := range types.Kinds {
		catalog.SetKindRecords(kind, dedup.AssignStatus(byKind[kind], kind))
	}

	fmt.Printf("Step 3/3: Finalized %d records (%d rejected).\n", report.Processed, report.Errors)

	// Persist results if connected
	if database != nil && runID != uuid.Nil {
		_ = database.SaveCatalog(ctx, runID, catalog)
		_ = database.SaveRejections(ctx, runID, report.Rejections)
		_ = database.CompleteRun(ctx, runID, "completed", report.Processed, report.Errors)
	}

	return catalog, report, nil
}

// processOne runs stages 1-4 for a single input. Any panic inside the record
// boundary is converted to a rejection so one bad record cannot abort the
// batch.
func processOne(classifier classify.Classifier, in discover.Input) (res recordResult) {
	defer func() {
		if r := recover(); r != nil {
			res = recordResult{rejection: &types.Rejection{
				Source: in.Name,
				Reason: fmt.Sprintf("Error extracting data: %v", r),
			}}
		}
	}()

	if in.Err != nil {
		return recordResult{rejection: &types.Rejection{
			Source: in.Name,
			Reason: fmt.Sprintf("Invalid input: %v", in.Err),
		}}
	}

	kind := classifier.Classify(in.Record)

	rec, err := extract.ExtractRecord(in.Record, kind, in.Name)
	if err != nil {
		return recordResult{rejection: &types.Rejection{Source: in.Name, Kind: kind, Reason: err.Error()}}
	}

	dates.NormalizeFields(rec, kind)

	if err := validate.CheckRequired(rec, kind); err != nil {
		return recordResult{rejection: &types.Rejection{Source: in.Name, Kind: kind, Reason: err.Error()}}
	}

	rec.Status = types.StatusOriginal
	return recordResult{kind: kind, rec: rec}
}
