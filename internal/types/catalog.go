package types

import "github.com/google/uuid"

// Finalisation groups the deduplicated canonical records by document kind.
// Member names and order pin the output JSON contract.
type Finalisation struct {
	Paystubs []CanonicalRecord `json:"Paystubs"`
	W2       []CanonicalRecord `json:"W2"`
	Form1120 []CanonicalRecord `json:"1120"`
}

// Catalog is the single finalized output object for a batch run.
type Catalog struct {
	Finalisation Finalisation `json:"finalisation"`
}

// KindRecords returns the catalog slice for the given kind.
func (c *Catalog) KindRecords(kind DocumentKind) []CanonicalRecord {
	switch kind {
	case KindW2:
		return c.Finalisation.W2
	case Kind1120:
		return c.Finalisation.Form1120
	default:
		return c.Finalisation.Paystubs
	}
}

// SetKindRecords stores the deduplicated records for the given kind. A nil
// slice is stored as an empty one so every kind serializes as an array.
func (c *Catalog) SetKindRecords(kind DocumentKind, records []CanonicalRecord) {
	if records == nil {
		records = []CanonicalRecord{}
	}
	switch kind {
	case KindW2:
		c.Finalisation.W2 = records
	case Kind1120:
		c.Finalisation.Form1120 = records
	default:
		c.Finalisation.Paystubs = records
	}
}

// Rejection records one input that did not survive the pipeline.
type Rejection struct {
	Source string       `json:"source"`
	Kind   DocumentKind `json:"kind,omitempty"`
	Reason string       `json:"reason"`
}

// RunReport summarizes one batch run for the operator and for persistence.
type RunReport struct {
	RunID      uuid.UUID   `json:"run_id"`
	Processed  int         `json:"processed"`
	Errors     int         `json:"errors"`
	Rejections []Rejection `json:"rejections,omitempty"`
}
