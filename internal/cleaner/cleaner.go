package cleaner

import (
	"fmt"
	"regexp"
	"time"
)

// Column names the pipeline knows about. Name and Email are required;
// the rest are cleaned opportunistically when present.
const (
	FieldName       = "Name"
	FieldEmail      = "Email"
	FieldJoinDate   = "Join_Date"
	FieldAttendance = "Event_Attendance"
	FieldRole       = "Role"
)

// DefaultEmailPattern accepts local@domain.tld-shaped addresses: at
// least one non-@ character, an @, a non-@ run, a dot, a non-@ tail.
const DefaultEmailPattern = `^[^@]+@[^@]+\.[^@]+`

// DefaultFuzzyThreshold is the minimum name similarity ratio treated as
// a near-duplicate identity.
const DefaultFuzzyThreshold = 0.85

// Options fixes the tunables for one pipeline run. They are read at
// stage invocation and never change mid-run.
type Options struct {
	FuzzyThreshold float64
	EmailPattern   string
	AttendanceFill float64
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		FuzzyThreshold: DefaultFuzzyThreshold,
		EmailPattern:   DefaultEmailPattern,
		AttendanceFill: 0,
	}
}

// Cleaner owns one record set and audit log for the duration of a
// single run. It is not safe for concurrent use; clean independent
// datasets with independent Cleaner instances.
type Cleaner struct {
	raw   *RecordSet
	clean *RecordSet
	opts  Options

	logs              []string
	initialCount      int
	duplicateCount    int
	invalidEmailCount int
	missingValueCount int

	emailPattern *regexp.Regexp
	now          func() time.Time
}

// New snapshots the input record set and prepares a cleaner. The
// caller's record set is never mutated. Zero-valued options fall back
// to the defaults.
func New(rs *RecordSet, opts Options) (*Cleaner, error) {
	if opts.FuzzyThreshold == 0 {
		opts.FuzzyThreshold = DefaultFuzzyThreshold
	}
	if opts.EmailPattern == "" {
		opts.EmailPattern = DefaultEmailPattern
	}

	re, err := regexp.Compile(opts.EmailPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid email pattern: %w", err)
	}

	return &Cleaner{
		raw:          rs.Copy(),
		clean:        rs.Copy(),
		opts:         opts,
		initialCount: rs.Len(),
		emailPattern: re,
		now:          time.Now,
	}, nil
}

// CleanAll runs the full pipeline in the fixed order. Validation runs
// first and aborts the run on a SchemaError; text normalization runs
// before deduplication so matching sees standardized values, and
// deduplication runs before date/number cleanup so no work is spent on
// rows about to be dropped.
func (c *Cleaner) CleanAll() (*RecordSet, error) {
	if err := c.ValidateSchema(); err != nil {
		return nil, err
	}
	c.StandardizeNames()
	c.FixEmails()
	c.RemoveDuplicates()
	c.RemoveFuzzyDuplicates()
	c.CleanDates()
	c.FillMissingValues()
	return c.clean, nil
}

// ValidateSchema confirms the required columns exist. On failure it
// returns a *SchemaError naming every missing column; callers should
// treat that as fatal and run no further stage on this instance.
func (c *Cleaner) ValidateSchema() error {
	return c.runStage(schemaStage{required: []string{FieldName, FieldEmail}})
}

// StandardizeNames rewrites every Name to Title Case. Silent no-op when
// the column is absent.
func (c *Cleaner) StandardizeNames() {
	c.runStage(nameStage{})
}

// FixEmails normalizes and repairs email values, dropping rows whose
// address remains invalid after repair.
func (c *Cleaner) FixEmails() {
	c.runStage(emailStage{pattern: c.emailPattern})
}

// RemoveDuplicates drops fully identical rows, then rows sharing an
// already-kept email identity. First occurrence wins in both phases.
func (c *Cleaner) RemoveDuplicates() {
	c.runStage(dedupeStage{})
}

// RemoveFuzzyDuplicates drops near-duplicate identities found by
// pairwise name similarity. Quadratic in the row count; comfortable up
// to a few thousand rows.
func (c *Cleaner) RemoveFuzzyDuplicates() {
	c.runStage(fuzzyStage{matcher: SimilarityMatcher{Threshold: c.opts.FuzzyThreshold}})
}

// CleanDates coerces Join_Date values to a single temporal type,
// discards future dates and imputes gaps with the modal valid date.
func (c *Cleaner) CleanDates() {
	c.runStage(dateStage{now: c.now})
}

// FillMissingValues replaces missing Event_Attendance values with the
// configured fill default.
func (c *Cleaner) FillMissingValues() {
	c.runStage(missingStage{fill: c.opts.AttendanceFill})
}

// Records returns the current (possibly partially cleaned) record set.
func (c *Cleaner) Records() *RecordSet {
	return c.clean
}

// AuditLog returns the ordered audit trail accumulated so far.
func (c *Cleaner) AuditLog() []string {
	return c.logs
}

// runStage applies one stage, folding its result into the shared audit
// log and counters. Stages whose declared columns are absent are
// skipped without a log line.
func (c *Cleaner) runStage(s Stage) error {
	for _, f := range s.Needs() {
		if !c.clean.HasField(f) {
			return nil
		}
	}

	res, err := s.Apply(c.clean)
	c.logs = append(c.logs, res.Log...)
	c.duplicateCount += res.DuplicatesRemoved
	c.invalidEmailCount += res.InvalidEmailsRemoved
	c.missingValueCount += res.MissingValuesFilled
	return err
}
