package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"community-pulse/internal/cleaner"
	"community-pulse/internal/config"
	"community-pulse/internal/export"
	"community-pulse/internal/generator"
	"community-pulse/internal/ingest"
	"community-pulse/internal/insights"
	"community-pulse/internal/model"
	"community-pulse/internal/store"
	"community-pulse/pkg/utils"
)

// Result carries everything a single cleaning run produced.
type Result struct {
	Records *cleaner.RecordSet
	Report  cleaner.Report
	Audit   []string
	Summary insights.Summary
}

// ResolveOptions merges per-job overrides onto the configured defaults.
// Zero values in the spec mean "use the default".
func ResolveOptions(spec model.CleaningJobSpec, cfg config.Config) cleaner.Options {
	opts := cleaner.Options{
		FuzzyThreshold: cfg.FuzzyMatchThreshold,
		EmailPattern:   cfg.EmailPattern,
		AttendanceFill: cfg.AttendanceFill,
	}
	if spec.Options.FuzzyThreshold > 0 {
		opts.FuzzyThreshold = spec.Options.FuzzyThreshold
	}
	if spec.Options.EmailPattern != "" {
		opts.EmailPattern = spec.Options.EmailPattern
	}
	if spec.Options.AttendanceFill != 0 {
		opts.AttendanceFill = spec.Options.AttendanceFill
	}
	return opts
}

// LoadSource materialises the raw record set a job asks for.
func LoadSource(src model.Source) (*cleaner.RecordSet, error) {
	switch src.Type {
	case "csv":
		return ingest.LoadCSV(src.URL)
	case "generated":
		fmt.Printf("🎲 Generating %d messy member records...\n", src.Records)
		return generator.New(src.Seed).Generate(src.Records), nil
	default:
		return nil, fmt.Errorf("unknown source type: %q", src.Type)
	}
}

// Execute runs the full cleaning pipeline for a spec without touching
// the job store. The CLI uses this directly; the API wraps it in Run.
// On pipeline failure the partial result still carries the audit log.
func Execute(spec model.CleaningJobSpec, cfg config.Config) (*Result, error) {
	raw, err := LoadSource(spec.Source)
	if err != nil {
		return nil, err
	}

	c, err := cleaner.New(raw, ResolveOptions(spec, cfg))
	if err != nil {
		return nil, err
	}

	cleaned, err := c.CleanAll()
	if err != nil {
		return &Result{Audit: c.AuditLog(), Report: c.Metrics()}, err
	}

	return &Result{
		Records: cleaned,
		Report:  c.Metrics(),
		Audit:   c.AuditLog(),
		Summary: insights.Summarize(cleaned),
	}, nil
}

// Run executes a stored job end to end: clean, persist the audit trail
// and metrics, write the output files, then flip the job status.
func Run(ctx context.Context, jobID string, spec model.CleaningJobSpec, cfg config.Config) error {
	fmt.Printf("🚀 Starting cleaning job %s\n", jobID)

	if err := store.UpdateJobStatus(jobID, "running"); err != nil {
		return err
	}

	res, err := Execute(spec, cfg)
	if err != nil {
		if res != nil {
			store.SaveAuditLog(jobID, res.Audit)
		}
		return fail(jobID, err)
	}

	if err := store.SaveAuditLog(jobID, res.Audit); err != nil {
		return fail(jobID, err)
	}
	if err := store.SaveMetrics(jobID, res.Report); err != nil {
		return fail(jobID, err)
	}

	if err := writeOutputs(ctx, jobID, spec, cfg, res); err != nil {
		return fail(jobID, err)
	}

	if err := store.UpdateJobStatus(jobID, "completed"); err != nil {
		return err
	}
	fmt.Printf("✅ Cleaning job %s completed: %d records, health score %.2f\n",
		jobID, res.Report.FinalRecords, res.Report.DataHealthScore)
	return nil
}

func writeOutputs(ctx context.Context, jobID string, spec model.CleaningJobSpec, cfg config.Config, res *Result) error {
	om := utils.NewOutputManager(cfg.OutputDir)
	if _, err := om.CreateJobOutputDir(jobID); err != nil {
		return err
	}

	for _, name := range []string{"members_clean.csv", "members_clean.json"} {
		path, err := om.GetOutputFilePath(jobID, name)
		if err != nil {
			return err
		}

		var count int
		if om.GetFileType(name) == "csv" {
			count, err = export.WriteCSV(res.Records, path)
		} else {
			count, err = export.WriteJSON(res.Records, path)
		}
		if err != nil {
			return err
		}
		if err := store.SaveOutputFile(jobID, name, path, om.GetFileType(name), count); err != nil {
			return err
		}
	}

	summaryPath, err := om.GetOutputFilePath(jobID, "summary.json")
	if err != nil {
		return err
	}
	summaryJSON, err := json.MarshalIndent(map[string]interface{}{
		"report":  res.Report,
		"summary": res.Summary,
		"kpis":    insights.EvaluateKPIs(res.Report),
	}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(summaryPath, summaryJSON, 0644); err != nil {
		return err
	}
	if err := store.SaveOutputFile(jobID, "summary.json", summaryPath, "json", res.Summary.TotalMembers); err != nil {
		return err
	}

	if spec.Export != nil && spec.Export.DB != "" {
		count, err := export.WritePostgres(ctx, spec.Export.DB, spec.Export.Table, res.Records)
		if err != nil {
			return err
		}
		fmt.Printf("🐘 Exported %d records to postgres\n", count)
	}
	return nil
}

func fail(jobID string, err error) error {
	fmt.Printf("❌ Cleaning job %s failed: %v\n", jobID, err)
	store.SaveJobError(jobID, err)
	store.UpdateJobStatus(jobID, "failed")
	return err
}
