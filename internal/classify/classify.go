// Package classify resolves the document kind of a raw extraction record
// from its redundant, occasionally conflicting signals.
package classify

import (
	"strings"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

// Indicator substrings scanned case-insensitively in record metadata.
var (
	w2Indicators    = []string{"w2", "w-2", "income w-2"}
	f1120Indicators = []string{"1120", "form 1120"}
)

// exactSkillKinds maps exact skill-section names to kinds, the
// least-ambiguous but last-consulted signal.
var exactSkillKinds = map[string]types.DocumentKind{
	"IC - 1120":     types.Kind1120,
	"IC - W2":       types.KindW2,
	"IC - Paystubs": types.KindPaystub,
}

// Classifier assigns a document kind to raw records. It is fail-open: every
// record resolves to some kind, falling back to Default when no signal
// matches.
type Classifier struct {
	// Default is returned when no signal matches. The zero value resolves
	// to paystub, the business default for unclassified documents.
	Default types.DocumentKind
}

// Classify resolves the record's kind. Precedence, first match wins:
// explicit metadata (Meta.Type, Title), loose skill-name substrings, exact
// skill-section names, then the configured default.
func (c Classifier) Classify(rec *types.RawRecord) types.DocumentKind {
	if rec == nil {
		return c.fallback()
	}

	metaType := ""
	if rec.Meta != nil {
		metaType = strings.ToLower(rec.Meta.Type)
	}
	title := strings.ToLower(rec.Title)

	if containsAny(metaType, w2Indicators) || containsAny(title, w2Indicators) {
		return types.KindW2
	}
	if containsAny(metaType, f1120Indicators) || containsAny(title, f1120Indicators) {
		return types.Kind1120
	}

	for _, skill := range rec.Summary {
		name := strings.ToLower(skill.SkillName)
		switch {
		case strings.Contains(name, "1120"):
			return types.Kind1120
		case strings.Contains(name, "w2"), strings.Contains(name, "w-2"):
			return types.KindW2
		case strings.Contains(name, "paystub"):
			return types.KindPaystub
		}
	}

	for _, skill := range rec.Summary {
		if kind, ok := exactSkillKinds[skill.SkillName]; ok {
			return kind
		}
	}

	return c.fallback()
}

func (c Classifier) fallback() types.DocumentKind {
	if c.Default.Valid() {
		return c.Default
	}
	return types.KindPaystub
}

func containsAny(s string, indicators []string) bool {
	for _, indicator := range indicators {
		if strings.Contains(s, indicator) {
			return true
		}
	}
	return false
}
