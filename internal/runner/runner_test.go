package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community-pulse/internal/cleaner"
	"community-pulse/internal/config"
	"community-pulse/internal/model"
)

func testConfig() config.Config {
	return config.Config{
		FuzzyMatchThreshold: 0.85,
		EmailPattern:        cleaner.DefaultEmailPattern,
		AttendanceFill:      0,
	}
}

func TestResolveOptionsDefaults(t *testing.T) {
	opts := ResolveOptions(model.CleaningJobSpec{}, testConfig())
	assert.Equal(t, 0.85, opts.FuzzyThreshold)
	assert.Equal(t, cleaner.DefaultEmailPattern, opts.EmailPattern)
	assert.Equal(t, 0.0, opts.AttendanceFill)
}

func TestResolveOptionsOverrides(t *testing.T) {
	spec := model.CleaningJobSpec{
		Options: model.Options{FuzzyThreshold: 0.9, AttendanceFill: 1},
	}
	opts := ResolveOptions(spec, testConfig())
	assert.Equal(t, 0.9, opts.FuzzyThreshold)
	assert.Equal(t, cleaner.DefaultEmailPattern, opts.EmailPattern)
	assert.Equal(t, 1.0, opts.AttendanceFill)
}

func TestLoadSourceUnknownType(t *testing.T) {
	_, err := LoadSource(model.Source{Type: "ftp"})
	assert.Error(t, err)
}

func TestExecuteGenerated(t *testing.T) {
	spec := model.CleaningJobSpec{
		Source: model.Source{Type: "generated", Records: 100, Seed: 42},
	}

	res, err := Execute(spec, testConfig())
	require.NoError(t, err)
	require.NotNil(t, res.Records)

	assert.Greater(t, res.Report.InitialRecords, 100) // duplicates injected
	assert.Greater(t, res.Report.FinalRecords, 0)
	assert.LessOrEqual(t, res.Report.FinalRecords, res.Report.InitialRecords)
	assert.NotEmpty(t, res.Audit)
	assert.Equal(t, res.Report.FinalRecords, res.Summary.TotalMembers)
}

func TestExecuteDeterministicWithSeed(t *testing.T) {
	spec := model.CleaningJobSpec{
		Source: model.Source{Type: "generated", Records: 60, Seed: 7},
	}

	a, err := Execute(spec, testConfig())
	require.NoError(t, err)
	b, err := Execute(spec, testConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Report, b.Report)
	assert.Equal(t, a.Audit, b.Audit)
}

func TestExecuteMissingCSV(t *testing.T) {
	spec := model.CleaningJobSpec{
		Source: model.Source{Type: "csv", URL: "testdata/does-not-exist.csv"},
	}
	_, err := Execute(spec, testConfig())
	assert.Error(t, err)
}
