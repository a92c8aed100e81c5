package cleaner

import "fmt"

type missingStage struct {
	fill float64
}

func (s missingStage) Name() string    { return "missing_value_imputation" }
func (s missingStage) Needs() []string { return []string{FieldAttendance} }

// Apply replaces missing or non-numeric Event_Attendance values with
// the policy default. Non-numeric garbage is downgraded to missing
// rather than raised as an error.
func (s missingStage) Apply(rs *RecordSet) (StageResult, error) {
	filled := 0
	for _, row := range rs.Rows {
		v, ok := row[FieldAttendance]
		if ok && v != nil && isNumeric(v) {
			continue
		}
		row[FieldAttendance] = s.fill
		filled++
	}

	return StageResult{
		Log:                 []string{fmt.Sprintf("Filled %d missing Attendance records with %v.", filled, s.fill)},
		MissingValuesFilled: filled,
	}, nil
}

func isNumeric(v interface{}) bool {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return true
	}
	return false
}
