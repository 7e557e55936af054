// Package extract populates canonical records from the label forest of a raw
// extraction record.
package extract

import (
	"github.com/jonathan/taxdoc-finalizer/internal/types"
	"github.com/jonathan/taxdoc-finalizer/internal/validate"
)

// NewCanonicalRecord seeds a canonical record for the given kind: base
// metadata plus every kind-specific field at the sentinel. sourceName is the
// originating file name, used when the record carries no FileName of its own.
func NewCanonicalRecord(raw *types.RawRecord, kind types.DocumentKind, sourceName string) *types.CanonicalRecord {
	name := sourceName
	if raw != nil && raw.Meta != nil && raw.Meta.FileName != "" {
		name = raw.Meta.FileName
	}

	rec := &types.CanonicalRecord{
		DocumentType: string(kind),
		Filename:     types.CleanValue(name) + ".json",
	}
	for _, field := range kind.Spec().LabelMap {
		if ref := rec.FieldRef(field); ref != nil {
			*ref = types.Sentinel
		}
	}
	return rec
}

// ExtractRecord seeds a canonical record, locates the kind's skill section
// (first SkillName match in summary order), and extracts its label forest.
// Returns a *validate.SkillNotFoundError when the section is absent.
func ExtractRecord(raw *types.RawRecord, kind types.DocumentKind, sourceName string) (*types.CanonicalRecord, error) {
	rec := NewCanonicalRecord(raw, kind, sourceName)
	spec := kind.Spec()

	for i := range raw.Summary {
		if raw.Summary[i].SkillName == spec.SkillName {
			ExtractFields(raw.Summary[i].Labels, spec.LabelMap, rec)
			return rec, nil
		}
	}
	return nil, &validate.SkillNotFoundError{Kind: kind, Skill: spec.SkillName}
}

// ExtractFields walks labels and all nested child labels depth-first. For
// each visited label mapped in labelMap, the first value whose cleaned form
// is not the sentinel overwrites the target field, so a later visit to a
// same-mapped label wins over an earlier one.
func ExtractFields(labels []types.Label, labelMap map[string]string, rec *types.CanonicalRecord) {
	for i := range labels {
		label := &labels[i]

		if field, ok := labelMap[label.LabelName]; ok && len(label.Values) > 0 {
			for _, v := range label.Values {
				cleaned := types.CleanValue(v.Value)
				if cleaned == types.Sentinel {
					continue
				}
				if ref := rec.FieldRef(field); ref != nil {
					*ref = cleaned
				}
				break
			}
		}

		if len(label.ChildLabels) > 0 {
			ExtractFields(label.ChildLabels, labelMap, rec)
		}
	}
}
