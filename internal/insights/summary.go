package insights

import (
	"time"

	"community-pulse/internal/cleaner"
	"community-pulse/pkg/utils"
)

// Summary aggregates a cleaned record set into the numbers a dashboard
// would chart: role distribution, attendance statistics and monthly
// join counts.
type Summary struct {
	TotalMembers int             `json:"total_members"`
	RoleCounts   map[string]int  `json:"role_counts,omitempty"`
	Attendance   AttendanceStats `json:"attendance"`
	JoinsByMonth map[string]int  `json:"joins_by_month,omitempty"`
}

// AttendanceStats summarizes the Event_Attendance column.
type AttendanceStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Total float64 `json:"total"`
}

// Summarize builds the summary. It is meant to run on cleaned data but
// tolerates anything: non-numeric attendance counts as zero and
// non-temporal join dates are skipped.
func Summarize(rs *cleaner.RecordSet) Summary {
	s := Summary{TotalMembers: rs.Len()}

	if rs.HasField(cleaner.FieldRole) {
		s.RoleCounts = make(map[string]int)
		for _, row := range rs.Rows {
			if role, ok := row[cleaner.FieldRole].(string); ok && role != "" {
				s.RoleCounts[role]++
			}
		}
	}

	if rs.HasField(cleaner.FieldAttendance) && rs.Len() > 0 {
		first := true
		for _, row := range rs.Rows {
			v := utils.Numeric(row[cleaner.FieldAttendance])
			s.Attendance.Total += v
			if first || v < s.Attendance.Min {
				s.Attendance.Min = v
			}
			if first || v > s.Attendance.Max {
				s.Attendance.Max = v
			}
			first = false
		}
		s.Attendance.Mean = s.Attendance.Total / float64(rs.Len())
	}

	if rs.HasField(cleaner.FieldJoinDate) {
		s.JoinsByMonth = make(map[string]int)
		for _, row := range rs.Rows {
			if t, ok := row[cleaner.FieldJoinDate].(time.Time); ok {
				s.JoinsByMonth[t.Format("2006-01")]++
			}
		}
	}

	return s
}
