package cleaner

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts covers the encodings seen in member exports: ISO dates
// and datetimes, US slashed dates and European dashed dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"02-01-2006",
}

type dateStage struct {
	now func() time.Time
}

func (s dateStage) Name() string    { return "date_normalization" }
func (s dateStage) Needs() []string { return []string{FieldJoinDate} }

// Apply coerces every Join_Date to time.Time. Values that cannot be
// parsed, including sentinel text like "Unknown", become unknown rather
// than failing the stage; dates later than now are implausible and are
// reclassified as unknown too. Unknowns are imputed with the modal
// valid date; when no valid value exists the column is left as-is.
func (s dateStage) Apply(rs *RecordSet) (StageResult, error) {
	now := s.now()
	futures := 0
	unknown := 0

	for _, row := range rs.Rows {
		t, ok := parseDate(row[FieldJoinDate])
		if ok && t.After(now) {
			futures++
			ok = false
		}
		if !ok {
			row[FieldJoinDate] = nil
			unknown++
			continue
		}
		row[FieldJoinDate] = t
	}

	var logs []string
	if futures > 0 {
		logs = append(logs, fmt.Sprintf("Found %d future dates - reset to unknown.", futures))
	}

	mode, hasMode := modalDate(rs.Rows)
	if unknown > 0 && hasMode {
		for _, row := range rs.Rows {
			if row[FieldJoinDate] == nil {
				row[FieldJoinDate] = mode
			}
		}
		logs = append(logs, fmt.Sprintf("Standardized Dates. Imputed %d missing/bad dates with mode.", unknown))
	} else {
		logs = append(logs, "Standardized Dates. No missing values found or mode undefined.")
	}

	return StageResult{Log: logs}, nil
}

// parseDate coerces a raw cell to a time.Time, trying each known layout
// in turn. Returns false for nil, empty and unparseable values.
func parseDate(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, true
	}

	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// modalDate returns the most frequent valid Join_Date. Ties go to the
// earliest date so imputation stays deterministic.
func modalDate(rows []Record) (time.Time, bool) {
	counts := make(map[time.Time]int)
	for _, row := range rows {
		if t, ok := row[FieldJoinDate].(time.Time); ok {
			counts[t]++
		}
	}
	if len(counts) == 0 {
		return time.Time{}, false
	}

	var mode time.Time
	best := 0
	for t, n := range counts {
		if n > best || (n == best && t.Before(mode)) {
			mode = t
			best = n
		}
	}
	return mode, true
}
