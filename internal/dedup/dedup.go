// Package dedup clusters canonical records of one kind by identity key and
// assigns original/duplicate status deterministically.
package dedup

import (
	"sort"
	"strings"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

// keySeparator joins identity fields into a grouping key. The unit separator
// never appears in cleaned field values.
const keySeparator = "\x1f"

// GroupingKey builds the record's identity key from the kind's ordered key
// fields, each passed through the sentinel cleaner. Records with equal keys
// are the same logical document.
func GroupingKey(rec *types.CanonicalRecord, kind types.DocumentKind) string {
	fields := kind.Spec().KeyFields
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, types.CleanValue(rec.Field(field)))
	}
	return strings.Join(parts, keySeparator)
}

// AssignStatus clusters records by grouping key and marks, per cluster, the
// record with the lexicographically smallest filename as "original" and the
// rest as "duplicate". Clusters are emitted in first-encounter order with
// members sorted by filename, so the same input multiset always yields the
// same output.
func AssignStatus(records []types.CanonicalRecord, kind types.DocumentKind) []types.CanonicalRecord {
	groups := make(map[string][]types.CanonicalRecord, len(records))
	order := make([]string, 0, len(records))

	for _, rec := range records {
		key := GroupingKey(&rec, kind)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], rec)
	}

	out := make([]types.CanonicalRecord, 0, len(records))
	for _, key := range order {
		cluster := groups[key]
		sort.SliceStable(cluster, func(i, j int) bool {
			return cluster[i].Filename < cluster[j].Filename
		})
		for i := range cluster {
			if i == 0 {
				cluster[i].Status = types.StatusOriginal
			} else {
				cluster[i].Status = types.StatusDuplicate
			}
			out = append(out, cluster[i])
		}
	}
	return out
}
