package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-pulse/internal/cleaner"
	"community-pulse/internal/model"
)

func openTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(":memory:"))
	t.Cleanup(func() { db.Close() })
}

func TestJobLifecycle(t *testing.T) {
	openTestDB(t)

	spec := model.CleaningJobSpec{
		Source: model.Source{Type: "generated", Records: 50, Seed: 7},
	}
	require.NoError(t, SaveJob("job-1", spec))

	job, err := GetJob("job-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", job["status"])

	got, ok := job["spec"].(model.CleaningJobSpec)
	require.True(t, ok)
	assert.Equal(t, "generated", got.Source.Type)
	assert.Equal(t, 50, got.Source.Records)

	require.NoError(t, UpdateJobStatus("job-1", "completed"))
	job, err = GetJob("job-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", job["status"])

	jobs, err := ListJobs()
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "job-1", jobs[0]["id"])
}

func TestJobErrorsAndDelete(t *testing.T) {
	openTestDB(t)

	spec := model.CleaningJobSpec{Source: model.Source{Type: "generated", Records: 10}}
	require.NoError(t, SaveJob("job-2", spec))
	require.NoError(t, SaveJobError("job-2", errors.New("source file missing")))
	require.NoError(t, SaveJobError("job-2", nil))

	msgs, err := GetJobErrors("job-2")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "source file missing", msgs[0])

	require.NoError(t, DeleteJob("job-2"))
	_, err = GetJob("job-2")
	assert.Error(t, err)
}

func TestAuditLogRoundTrip(t *testing.T) {
	openTestDB(t)

	entries := []string{
		"Schema validation passed - all required columns present.",
		"Standardized Names to Title Case.",
		"Removed 2 duplicate rows.",
	}
	require.NoError(t, SaveAuditLog("job-3", entries))

	got, err := GetAuditLog("job-3")
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestMetricsRoundTrip(t *testing.T) {
	openTestDB(t)

	rep := cleaner.Report{
		InitialRecords:       100,
		FinalRecords:         90,
		DuplicatesRemoved:    8,
		InvalidEmailsRemoved: 2,
		DuplicateRate:        8.0,
		InvalidEmailRate:     2.0,
		DataHealthScore:      90.0,
	}
	require.NoError(t, SaveMetrics("job-4", rep))

	got, err := GetMetrics("job-4")
	require.NoError(t, err)
	assert.Equal(t, rep, got)

	// overwrite keeps a single row per job
	rep.FinalRecords = 91
	require.NoError(t, SaveMetrics("job-4", rep))
	got, err = GetMetrics("job-4")
	require.NoError(t, err)
	assert.Equal(t, 91, got.FinalRecords)
}

func TestOutputFiles(t *testing.T) {
	openTestDB(t)

	require.NoError(t, SaveOutputFile("job-5", "members_clean.csv", "outputs/job-5/members_clean.csv", "csv", 90))
	require.NoError(t, SaveOutputFile("job-5", "members_clean.json", "outputs/job-5/members_clean.json", "json", 90))

	files, err := GetOutputFiles("job-5")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "members_clean.csv", files[0]["file_name"])
	assert.Equal(t, "json", files[1]["file_type"])
}
