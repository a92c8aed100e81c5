package cleaner

// StageResult reports what a single stage did: the audit entries it
// produced and the counter deltas it contributes to the quality
// metrics. Stages never mutate shared counters directly.
type StageResult struct {
	Log                  []string
	DuplicatesRemoved    int
	InvalidEmailsRemoved int
	MissingValuesFilled  int
}

// Stage is one self-contained transformation applied to a record set.
// Needs declares the columns a stage operates on; the driver skips the
// stage silently when any of them is absent, so stages tolerate being
// invoked out of the canonical order.
type Stage interface {
	Name() string
	Needs() []string
	Apply(rs *RecordSet) (StageResult, error)
}
