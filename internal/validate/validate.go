// Package validate checks canonical records against their kind's
// required-field list and defines the pipeline's rejection errors.
package validate

import "github.com/jonathan/taxdoc-finalizer/internal/types"

// CheckRequired returns nil when every required field for the record's kind
// is populated, or a *MissingFieldsError naming each field still blank or at
// the sentinel. Field order in the error follows the kind spec.
func CheckRequired(rec *types.CanonicalRecord, kind types.DocumentKind) error {
	var missing []string
	for _, field := range kind.Spec().Required {
		value := rec.Field(field)
		if value == types.Sentinel || value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Kind: kind, Fields: missing}
	}
	return nil
}
