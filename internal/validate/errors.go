package validate

import (
	"fmt"
	"strings"

	"github.com/jonathan/taxdoc-finalizer/internal/types"
)

// SkillNotFoundError reports that the skill section a kind's labels live in
// is absent from the raw record.
type SkillNotFoundError struct {
	Kind  types.DocumentKind
	Skill string
}

func (e *SkillNotFoundError) Error() string {
	return fmt.Sprintf("Required skill '%s' not found", e.Skill)
}

// MissingFieldsError reports required fields that are still blank or at the
// sentinel after extraction.
type MissingFieldsError struct {
	Kind   types.DocumentKind
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("Missing fields: %s", strings.Join(e.Fields, ", "))
}
