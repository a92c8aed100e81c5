package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameStageTitleCases(t *testing.T) {
	rs := memberSet(
		Record{FieldName: "JOHN DOE"},
		Record{FieldName: "jane smith"},
		Record{FieldName: "mIxEd CaSe"},
		Record{FieldName: 42},
		Record{FieldName: nil},
	)

	res, err := nameStage{}.Apply(rs)
	require.NoError(t, err)

	assert.Equal(t, "John Doe", rs.Rows[0][FieldName])
	assert.Equal(t, "Jane Smith", rs.Rows[1][FieldName])
	assert.Equal(t, "Mixed Case", rs.Rows[2][FieldName])
	assert.Equal(t, "42", rs.Rows[3][FieldName])
	assert.Nil(t, rs.Rows[4][FieldName])
	require.Len(t, res.Log, 1)
}

func TestMissingStageFillsAttendance(t *testing.T) {
	rs := memberSet(
		Record{FieldAttendance: 5},
		Record{FieldAttendance: nil},
		Record{FieldAttendance: "N/A"},
		Record{},
		Record{FieldAttendance: 2.5},
	)

	res, err := missingStage{fill: 0}.Apply(rs)
	require.NoError(t, err)

	assert.Equal(t, 5, rs.Rows[0][FieldAttendance])
	assert.Equal(t, float64(0), rs.Rows[1][FieldAttendance])
	assert.Equal(t, float64(0), rs.Rows[2][FieldAttendance])
	assert.Equal(t, float64(0), rs.Rows[3][FieldAttendance])
	assert.Equal(t, 2.5, rs.Rows[4][FieldAttendance])

	assert.Equal(t, 3, res.MissingValuesFilled)
	require.Len(t, res.Log, 1)
	assert.Contains(t, res.Log[0], "Filled 3 missing Attendance")
}

func TestHealthScoreBounds(t *testing.T) {
	empty, err := New(NewRecordSet([]string{FieldName, FieldEmail}, nil), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 100.0, empty.HealthScore())

	rep := empty.Metrics()
	assert.Equal(t, 0, rep.InitialRecords)
	assert.Equal(t, 100.0, rep.DataHealthScore)
	assert.Zero(t, rep.DuplicateRate)
}

func TestHealthScoreClampedAtZero(t *testing.T) {
	c, err := New(memberSet(
		Record{FieldName: "A", FieldEmail: "a@x.co"},
		Record{FieldName: "B", FieldEmail: "b@x.co"},
		Record{FieldName: "C", FieldEmail: "c@x.co"},
	), DefaultOptions())
	require.NoError(t, err)

	// One duplicate, one invalid email, one missing value out of three
	// initial rows: the three 33.3% rates consume the whole score.
	c.duplicateCount = 1
	c.invalidEmailCount = 1
	c.missingValueCount = 1

	assert.InDelta(t, 0, c.HealthScore(), 1e-9)
	assert.GreaterOrEqual(t, c.HealthScore(), 0.0)
}

func TestRecordSetSnapshotting(t *testing.T) {
	fields := []string{FieldName, FieldEmail}
	rows := []Record{{FieldName: "John", FieldEmail: "john@test.com"}}

	rs := NewRecordSet(fields, rows)
	rs.Rows[0][FieldName] = "changed"
	assert.Equal(t, "John", rows[0][FieldName])

	cp := rs.Copy()
	cp.Rows[0][FieldEmail] = "other@test.com"
	assert.Equal(t, "john@test.com", rs.Rows[0][FieldEmail])

	assert.True(t, rs.HasField(FieldEmail))
	assert.False(t, rs.HasField(FieldJoinDate))
}
