// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCatalogSummary outputs per-kind record and duplicate counts for the
// finalized catalog.
func (p *Printer) PrintCatalogSummary(catalog *types.Catalog) {
	if catalog == nil {
		return
	}

	var sb strings.Builder
	for _, kind := range types.Kinds {
		records := catalog.KindRecords(kind)
		duplicates := 0
		for _, rec := range records {
			if rec.Status == types.StatusDuplicate {
				duplicates++
			}
		}
		sb.WriteString(fmt.Sprintf("%-8s %3d records, %d duplicates\n", kind, len(records), duplicates))
	}

	p.printBox("FINALIZED CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRejections outputs the rejected inputs with their reasons.
func (p *Printer) PrintRejections(report *types.RunReport) {
	if report == nil || len(report.Rejections) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(report.Rejections), maxItemsToShow)
	for i := 0; i < count; i++ {
		rej := report.Rejections[i]
		sb.WriteString(fmt.Sprintf("• %s: %s\n", rej.Source, rej.Reason))
	}
	if len(report.Rejections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(report.Rejections)-maxItemsToShow))
	}

	p.printBox("REJECTED RECORDS", strings.TrimSuffix(sb.String(), "\n"))
}
