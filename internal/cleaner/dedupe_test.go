package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeStageFullRowAndEmailIdentity(t *testing.T) {
	rs := memberSet(
		Record{FieldName: "John Doe", FieldEmail: "john@test.com", FieldAttendance: 5},
		Record{FieldName: "John Doe", FieldEmail: "john@test.com", FieldAttendance: 5},   // full-row duplicate
		Record{FieldName: "Johnny Doe", FieldEmail: "JOHN@TEST.COM", FieldAttendance: 2}, // same identity, different fields
		Record{FieldName: "Jane Smith", FieldEmail: "jane@test.com", FieldAttendance: 1},
	)

	res, err := dedupeStage{}.Apply(rs)
	require.NoError(t, err)

	require.Equal(t, 2, rs.Len())
	// First occurrence wins.
	assert.Equal(t, "John Doe", rs.Rows[0][FieldName])
	assert.Equal(t, "Jane Smith", rs.Rows[1][FieldName])
	assert.Equal(t, 2, res.DuplicatesRemoved)
}

func TestDedupeStageIdempotent(t *testing.T) {
	rs := memberSet(
		Record{FieldName: "John Doe", FieldEmail: "john@test.com"},
		Record{FieldName: "John Doe", FieldEmail: "john@test.com"},
		Record{FieldName: "Jane Smith", FieldEmail: "jane@test.com"},
	)

	first, err := dedupeStage{}.Apply(rs)
	require.NoError(t, err)
	assert.Equal(t, 1, first.DuplicatesRemoved)

	second, err := dedupeStage{}.Apply(rs)
	require.NoError(t, err)
	assert.Equal(t, 0, second.DuplicatesRemoved)
	assert.Equal(t, 2, rs.Len())
}

func TestDedupeStageWithoutEmailColumn(t *testing.T) {
	rs := NewRecordSet([]string{FieldName}, []Record{
		{FieldName: "John Doe"},
		{FieldName: "John Doe"},
		{FieldName: "Jane Smith"},
	})

	res, err := dedupeStage{}.Apply(rs)
	require.NoError(t, err)

	// Phase 1 still collapses identical rows; phase 2 is skipped.
	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, 1, res.DuplicatesRemoved)
}
