package cleaner

import "math"

// Report packages the counters, derived rates and health score for one
// run. It is computed on demand and immutable once handed out.
type Report struct {
	InitialRecords       int     `json:"initial_records"`
	FinalRecords         int     `json:"final_records"`
	DuplicatesRemoved    int     `json:"duplicates_removed"`
	InvalidEmailsRemoved int     `json:"invalid_emails_removed"`
	MissingValuesFilled  int     `json:"missing_values_filled"`
	DuplicateRate        float64 `json:"duplicate_rate"`
	InvalidEmailRate     float64 `json:"invalid_email_rate"`
	MissingRate          float64 `json:"missing_rate"`
	DataHealthScore      float64 `json:"data_health_score"`
}

// HealthScore derives the 0-100 data health score from the counters
// accumulated so far. It is a pure function of the counters and can be
// called at any point, not only at pipeline end. An empty input scores
// 100: there is nothing unhealthy about no data.
func (c *Cleaner) HealthScore() float64 {
	if c.initialCount == 0 {
		return 100
	}

	duplicateRate := float64(c.duplicateCount) / float64(c.initialCount) * 100
	invalidEmailRate := float64(c.invalidEmailCount) / float64(c.initialCount) * 100
	missingRate := float64(c.missingValueCount) / float64(c.initialCount) * 100

	return math.Max(0, 100-(duplicateRate+invalidEmailRate+missingRate))
}

// Metrics returns the full quality report for the run so far.
func (c *Cleaner) Metrics() Report {
	rep := Report{
		InitialRecords:       c.initialCount,
		FinalRecords:         c.clean.Len(),
		DuplicatesRemoved:    c.duplicateCount,
		InvalidEmailsRemoved: c.invalidEmailCount,
		MissingValuesFilled:  c.missingValueCount,
		DataHealthScore:      c.HealthScore(),
	}
	if c.initialCount > 0 {
		rep.DuplicateRate = float64(c.duplicateCount) / float64(c.initialCount) * 100
		rep.InvalidEmailRate = float64(c.invalidEmailCount) / float64(c.initialCount) * 100
		rep.MissingRate = float64(c.missingValueCount) / float64(c.initialCount) * 100
	}
	return rep
}
