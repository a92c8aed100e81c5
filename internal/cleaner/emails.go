package cleaner

import (
	"fmt"
	"regexp"
	"strings"
)

type emailStage struct {
	pattern *regexp.Regexp
}

func (s emailStage) Name() string    { return "email_normalization" }
func (s emailStage) Needs() []string { return []string{FieldEmail} }

// Apply lower-cases and trims every email, repairs the known " at "
// corruption pattern from upstream data entry, and drops rows whose
// address is still invalid afterwards. Unrecoverable identity data
// disqualifies the whole row from downstream use.
func (s emailStage) Apply(rs *RecordSet) (StageResult, error) {
	kept := make([]Record, 0, len(rs.Rows))
	removed := 0

	for _, row := range rs.Rows {
		v, ok := row[FieldEmail]
		if !ok || v == nil {
			removed++
			continue
		}

		email := strings.TrimSpace(strings.ToLower(fmt.Sprintf("%v", v)))
		email = strings.ReplaceAll(email, " at ", "@")

		if !s.pattern.MatchString(email) {
			removed++
			continue
		}

		row[FieldEmail] = email
		kept = append(kept, row)
	}

	rs.Rows = kept
	return StageResult{
		Log:                  []string{fmt.Sprintf("Fixed email formatting. Removed %d invalid emails.", removed)},
		InvalidEmailsRemoved: removed,
	}, nil
}
