package types

import "strings"

// Sentinel is the canonical representation of an absent, blank, or invalid
// field value.
const Sentinel = "N/A"

// Record statuses assigned by duplicate grouping.
const (
	StatusOriginal  = "original"
	StatusDuplicate = "duplicate"
)

// sentinelWords are raw values that clean to the sentinel after trimming.
// Matched case-insensitively so "NULL" and "none" behave like an absent value.
var sentinelWords = []string{Sentinel, "null", "None"}

// CleanValue trims a raw value and maps blank or placeholder values to the
// sentinel. Idempotent: CleanValue(CleanValue(x)) == CleanValue(x).
func CleanValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Sentinel
	}
	for _, word := range sentinelWords {
		if strings.EqualFold(trimmed, word) {
			return Sentinel
		}
	}
	return trimmed
}

// CanonicalRecord is the flat, per-document output of the extraction
// pipeline. Kind-specific fields are tagged omitempty; fields active for the
// record's kind are seeded with the sentinel, inactive ones stay empty and
// are omitted from JSON.
type CanonicalRecord struct {
	DocumentType string `json:"document_type"`
	Filename     string `json:"filename"`
	// DocID is reserved for a future document registry; always empty but
	// always serialized.
	DocID string `json:"docId"`

	// Paystub and W-2 fields.
	EmployeeName       string `json:"employee_name,omitempty"`
	EmployerName       string `json:"employer_name,omitempty"`
	PayPeriodEndDate   string `json:"pay_period_end_date,omitempty"`
	PayPeriodStartDate string `json:"pay_period_start_date,omitempty"`
	YearToDateEarnings string `json:"year_to_date_earnings,omitempty"`

	// W-2 and 1120 fields.
	Year string `json:"year,omitempty"`

	// 1120 fields.
	Name             string `json:"name,omitempty"`
	BeginningTaxYear string `json:"beginning_tax_year,omitempty"`
	EndingTaxYear    string `json:"ending_tax_year,omitempty"`

	Status string `json:"status"`
}

// FieldRef returns a pointer to the member backing the given canonical field
// name, or nil for unknown names. Extraction and normalization write through
// this registry so label maps stay data-driven.
func (r *CanonicalRecord) FieldRef(name string) *string {
	switch name {
	case "employee_name":
		return &r.EmployeeName
	case "employer_name":
		return &r.EmployerName
	case "pay_period_end_date":
		return &r.PayPeriodEndDate
	case "pay_period_start_date":
		return &r.PayPeriodStartDate
	case "year_to_date_earnings":
		return &r.YearToDateEarnings
	case "year":
		return &r.Year
	case "name":
		return &r.Name
	case "beginning_tax_year":
		return &r.BeginningTaxYear
	case "ending_tax_year":
		return &r.EndingTaxYear
	}
	return nil
}

// Field returns the value of the given canonical field name, or the empty
// string for unknown names.
func (r *CanonicalRecord) Field(name string) string {
	if ref := r.FieldRef(name); ref != nil {
		return *ref
	}
	return ""
}
