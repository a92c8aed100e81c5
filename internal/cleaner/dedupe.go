package cleaner

import (
	"encoding/json"
	"fmt"
	"strings"
)

type dedupeStage struct{}

func (s dedupeStage) Name() string    { return "exact_deduplication" }
func (s dedupeStage) Needs() []string { return nil }

// Apply removes duplicates in two phases: full-row equality first, then
// same-identity rows by lower-cased email. The email phase catches rows
// that differ in some other field but represent the same person; it
// deliberately overlaps with the fuzzy stage, which resolves identities
// the exact match misses. First occurrence wins in both phases.
func (s dedupeStage) Apply(rs *RecordSet) (StageResult, error) {
	initial := len(rs.Rows)

	seen := make(map[string]bool, len(rs.Rows))
	kept := make([]Record, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		key := rowKey(row)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, row)
	}

	if rs.HasField(FieldEmail) {
		seenEmail := make(map[string]bool, len(kept))
		filtered := make([]Record, 0, len(kept))
		for _, row := range kept {
			v, ok := row[FieldEmail]
			if !ok || v == nil {
				filtered = append(filtered, row)
				continue
			}
			email := strings.ToLower(fmt.Sprintf("%v", v))
			if seenEmail[email] {
				continue
			}
			seenEmail[email] = true
			filtered = append(filtered, row)
		}
		kept = filtered
	}

	rs.Rows = kept
	removed := initial - len(kept)
	return StageResult{
		Log:               []string{fmt.Sprintf("Removed %d duplicate rows.", removed)},
		DuplicatesRemoved: removed,
	}, nil
}

// rowKey builds a field-for-field equality key. json.Marshal sorts map
// keys, so identical rows always produce identical keys.
func rowKey(row Record) string {
	b, err := json.Marshal(row)
	if err != nil {
		return fmt.Sprintf("%v", row)
	}
	return string(b)
}
