package config

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.85, cfg.FuzzyMatchThreshold)
	assert.Equal(t, `^[^@]+@[^@]+\.[^@]+`, cfg.EmailPattern)
	assert.Equal(t, float64(0), cfg.AttendanceFill)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "pulse.db", cfg.DBPath)
	assert.Equal(t, "outputs", cfg.OutputDir)

	// The default pattern must compile and keep its shape.
	re, err := regexp.Compile(cfg.EmailPattern)
	require.NoError(t, err)
	assert.True(t, re.MatchString("john@test.com"))
	assert.False(t, re.MatchString("john@testcom"))
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PULSE_FUZZY_MATCH_THRESHOLD", "0.9")
	t.Setenv("PULSE_HTTP_ADDR", ":9999")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.FuzzyMatchThreshold)
	assert.Equal(t, ":9999", cfg.HTTPAddr)
}
