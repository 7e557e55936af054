// Package dates normalizes free-form date strings into MM/DD/YYYY form.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

// monthNumbers maps lowercase month names and abbreviations to month numbers.
var monthNumbers = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may":  5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var (
	numericTriple = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
	dayMonthName  = regexp.MustCompile(`^(\d{1,2})-(\w+)-(\d{4})$`)
	monthNameDay  = regexp.MustCompile(`^(\w+)\s+(\d{1,2}),?\s+(\d{4})$`)
	isoDate       = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

// Normalize converts a raw date string to MM/DD/YYYY. When no pattern
// matches, the input is returned unchanged for downstream validation to
// accept or reject; normalization never fails.
//
// A numeric triple like 04-05-2025 is always read month-first. A day-first
// reading of the same shape would be structurally indistinguishable, so no
// such branch exists.
func Normalize(raw string) string {
	if raw == "" || raw == types.Sentinel {
		return types.Sentinel
	}
	s := strings.TrimSpace(raw)

	if m := numericTriple.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if plausible(month, day, year) {
			return formatDate(month, day, year)
		}
	}

	if m := dayMonthName.FindStringSubmatch(s); m != nil {
		if month, ok := monthNumbers[strings.ToLower(m[2])]; ok {
			day, _ := strconv.Atoi(m[1])
			year, _ := strconv.Atoi(m[3])
			if day >= 1 && day <= 31 {
				return formatDate(month, day, year)
			}
		}
	}

	if m := monthNameDay.FindStringSubmatch(s); m != nil {
		if month, ok := monthNumbers[strings.ToLower(m[1])]; ok {
			day, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			if day >= 1 && day <= 31 {
				return formatDate(month, day, year)
			}
		}
	}

	if m := isoDate.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return formatDate(month, day, year)
		}
	}

	// Last resort: flexible non-fuzzy parsing for shapes the explicit
	// patterns miss.
	if t, err := dateparse.ParseStrict(s); err == nil {
		return t.Format("01/02/2006")
	}

	return raw
}

// NormalizeFields normalizes the kind's date fields in place, leaving
// sentinel values untouched.
func NormalizeFields(rec *types.CanonicalRecord, kind types.DocumentKind) {
	for _, field := range kind.Spec().DateFields {
		ref := rec.FieldRef(field)
		if ref == nil || *ref == types.Sentinel {
			continue
		}
		*ref = Normalize(*ref)
	}
}

func plausible(month, day, year int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31 && year >= 1000 && year <= 9999
}

func formatDate(month, day, year int) string {
	return fmt.Sprintf("%02d/%02d/%d", month, day, year)
}
