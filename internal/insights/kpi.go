package insights

import "community-pulse/internal/cleaner"

// KPI targets for member data quality.
const (
	TargetDuplicateRate   = 5.0  // max acceptable duplicate rate (%)
	TargetMissingRate     = 3.0  // max acceptable missing data rate (%)
	TargetEmailValidity   = 95.0 // min acceptable email validity rate (%)
	TargetDataHealthScore = 90.0 // min acceptable overall health score
)

// KPI is one target compared against the achieved value.
type KPI struct {
	Name   string  `json:"name"`
	Target float64 `json:"target"`
	Actual float64 `json:"actual"`
	Met    bool    `json:"met"`
}

// EvaluateKPIs compares a cleaning report against the quality targets.
func EvaluateKPIs(rep cleaner.Report) []KPI {
	emailValidity := 100 - rep.InvalidEmailRate
	return []KPI{
		{Name: "Duplicate Rate", Target: TargetDuplicateRate, Actual: rep.DuplicateRate, Met: rep.DuplicateRate <= TargetDuplicateRate},
		{Name: "Missing Data Rate", Target: TargetMissingRate, Actual: rep.MissingRate, Met: rep.MissingRate <= TargetMissingRate},
		{Name: "Email Validity", Target: TargetEmailValidity, Actual: emailValidity, Met: emailValidity >= TargetEmailValidity},
		{Name: "Data Health Score", Target: TargetDataHealthScore, Actual: rep.DataHealthScore, Met: rep.DataHealthScore >= TargetDataHealthScore},
	}
}
