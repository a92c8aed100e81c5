package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-pulse/internal/cleaner"
)

func testSet() *cleaner.RecordSet {
	return cleaner.NewRecordSet(
		[]string{"Name", "Email", "Join_Date", "Event_Attendance"},
		[]cleaner.Record{
			{"Name": "John Doe", "Email": "john@test.com", "Join_Date": time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), "Event_Attendance": float64(5)},
			{"Name": "Jane Smith", "Email": "jane@test.com", "Join_Date": nil, "Event_Attendance": float64(0)},
		},
	)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.csv")

	n, err := WriteCSV(testSet(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Name,Email,Join_Date,Event_Attendance")
	assert.Contains(t, content, "John Doe,john@test.com,2023-05-01,5")
	assert.Contains(t, content, "Jane Smith,jane@test.com,,0")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.json")

	n, err := WriteJSON(testSet(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "john@test.com", rows[0]["Email"])
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "join_date", columnName("Join_Date"))
	assert.Equal(t, "event_attendance", columnName("Event_Attendance"))
	assert.Equal(t, "weird_col_", columnName("Weird Col!"))
}
