package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CleaningJobSpec is the full configuration for one cleaning run,
// submitted as JSON over the API (POST /api/v1/cleanings) or loaded
// from a YAML file by the CLI.
type CleaningJobSpec struct {
	Source  Source  `json:"source" yaml:"source"`
	Options Options `json:"options" yaml:"options"`
	Export  *Export `json:"export,omitempty" yaml:"export,omitempty"`
}

// Source describes where the raw member records come from.
type Source struct {
	Type    string `json:"type" yaml:"type"`                           // csv or generated
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`         // file path or http URL for csv
	Records int    `json:"records,omitempty" yaml:"records,omitempty"` // row count for generated
	Seed    int64  `json:"seed,omitempty" yaml:"seed,omitempty"`       // deterministic generation when non-zero
}

// Options overrides the environment defaults for a single run. Zero
// values mean "use the configured default".
type Options struct {
	FuzzyThreshold float64 `json:"fuzzyThreshold,omitempty" yaml:"fuzzyThreshold,omitempty"`
	EmailPattern   string  `json:"emailPattern,omitempty" yaml:"emailPattern,omitempty"`
	AttendanceFill float64 `json:"attendanceFill,omitempty" yaml:"attendanceFill,omitempty"`
}

// Export defines optional destinations for the cleaned record set in
// addition to the CSV and JSON files every run writes.
type Export struct {
	DB    string `json:"db,omitempty" yaml:"db,omitempty"`       // postgres DSN
	Table string `json:"table,omitempty" yaml:"table,omitempty"` // target table, default members_clean
}

// Validate checks the spec is runnable before a job is accepted.
func (s CleaningJobSpec) Validate() error {
	switch s.Source.Type {
	case "csv":
		if s.Source.URL == "" {
			return fmt.Errorf("csv source requires a url")
		}
	case "generated":
		if s.Source.Records <= 0 {
			return fmt.Errorf("generated source requires a positive record count")
		}
	default:
		return fmt.Errorf("unknown source type: %q", s.Source.Type)
	}
	return nil
}

// LoadSpecFile reads a job spec from a YAML file.
func LoadSpecFile(path string) (CleaningJobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CleaningJobSpec{}, fmt.Errorf("failed to read spec file: %w", err)
	}

	var spec CleaningJobSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return CleaningJobSpec{}, fmt.Errorf("failed to parse spec file: %w", err)
	}
	return spec, nil
}
