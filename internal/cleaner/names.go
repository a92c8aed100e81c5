package cleaner

import (
	"fmt"
	"strings"
)

type nameStage struct{}

func (s nameStage) Name() string    { return "name_standardization" }
func (s nameStage) Needs() []string { return []string{FieldName} }

// Apply rewrites every Name value to Title Case, coercing non-text
// values to their text representation first. Rows with no name at all
// are left alone so the fuzzy stage can treat them as unmatched.
func (s nameStage) Apply(rs *RecordSet) (StageResult, error) {
	for _, row := range rs.Rows {
		v, ok := row[FieldName]
		if !ok || v == nil {
			continue
		}
		row[FieldName] = strings.Title(strings.ToLower(fmt.Sprintf("%v", v)))
	}

	return StageResult{Log: []string{"Standardized Names to Title Case."}}, nil
}
