// Package discover handles input discovery and output materialization: the
// simple I/O collaborators around the record pipeline.
package discover

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

// Input is one discovered source file. Err is set when the file could not be
// decoded; the pipeline reports such inputs as rejections instead of
// aborting the batch.
type Input struct {
	// Name is the base file name, used for reporting and as the filename
	// fallback when the record carries no FileName.
	Name   string
	Path   string
	Record *types.RawRecord
	Err    error
}

// CollectInputs recursively discovers *.json files under root and decodes
// each into a raw record. Decode failures are captured per input; only a
// failed directory walk is an error.
func CollectInputs(root string) ([]Input, error) {
	var inputs []Input
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}
		inputs = append(inputs, readInput(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory %s: %w", root, err)
	}
	return inputs, nil
}

func readInput(path string) Input {
	in := Input{Name: filepath.Base(path), Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		in.Err = err
		return in
	}

	var rec types.RawRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		in.Err = err
		return in
	}
	in.Record = &rec
	return in
}

// WriteCatalog materializes the finalized catalog as a single pretty-printed
// JSON file, creating the output directory if needed. Failure here is fatal
// to the run; the pipeline itself has already completed.
func WriteCatalog(path string, catalog *types.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(catalog, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
