package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-runewidth"

	"community-pulse/internal/cleaner"
	"community-pulse/internal/config"
	"community-pulse/internal/export"
	"community-pulse/internal/insights"
	"community-pulse/internal/model"
	"community-pulse/internal/runner"
)

func main() {
	inputPath := flag.String("input", "", "path or URL of a members CSV file")
	generate := flag.Int("generate", 0, "generate N messy member records instead of reading a file")
	seed := flag.Int64("seed", 0, "random seed for -generate, 0 uses the clock")
	specPath := flag.String("spec", "", "YAML job spec file, overrides -input and -generate")
	outDir := flag.String("out", "", "output directory, overrides PULSE_OUTPUT_DIR")
	saveMessy := flag.Bool("save-messy", false, "also write the raw records before cleaning")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatalf("failed to load configuration: %v", err)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	var spec model.CleaningJobSpec
	switch {
	case *specPath != "":
		spec, err = model.LoadSpecFile(*specPath)
		if err != nil {
			fatalf("%v", err)
		}
	case *inputPath != "":
		spec.Source = model.Source{Type: "csv", URL: *inputPath}
	case *generate > 0:
		spec.Source = model.Source{Type: "generated", Records: *generate, Seed: *seed}
	default:
		fmt.Println("Usage: pulse -input members.csv | pulse -generate 500 [-seed 42] | pulse -spec job.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := spec.Validate(); err != nil {
		fatalf("%v", err)
	}

	raw, err := runner.LoadSource(spec.Source)
	if err != nil {
		fatalf("%v", err)
	}

	c, err := cleaner.New(raw, runner.ResolveOptions(spec, cfg))
	if err != nil {
		fatalf("%v", err)
	}

	cleaned, err := c.CleanAll()
	printAudit(c.AuditLog())
	if err != nil {
		var schemaErr *cleaner.SchemaError
		if errors.As(err, &schemaErr) {
			fatalf("input rejected: %v", err)
		}
		fatalf("cleaning failed: %v", err)
	}

	rep := c.Metrics()
	printReport(rep)
	printKPIs(insights.EvaluateKPIs(rep))
	printSummary(insights.Summarize(cleaned))

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fatalf("failed to create output directory: %v", err)
	}

	if *saveMessy {
		path := filepath.Join(cfg.OutputDir, "members_messy.csv")
		if _, err := export.WriteCSV(raw, path); err != nil {
			fatalf("failed to write %s: %v", path, err)
		}
	}

	csvPath := filepath.Join(cfg.OutputDir, "members_clean.csv")
	if _, err := export.WriteCSV(cleaned, csvPath); err != nil {
		fatalf("failed to write %s: %v", csvPath, err)
	}
	jsonPath := filepath.Join(cfg.OutputDir, "members_clean.json")
	if _, err := export.WriteJSON(cleaned, jsonPath); err != nil {
		fatalf("failed to write %s: %v", jsonPath, err)
	}

	if spec.Export != nil && spec.Export.DB != "" {
		count, err := export.WritePostgres(context.Background(), spec.Export.DB, spec.Export.Table, cleaned)
		if err != nil {
			fatalf("postgres export failed: %v", err)
		}
		fmt.Printf("🐘 Exported %d records to postgres\n", count)
	}
}

func printAudit(logs []string) {
	fmt.Println("\n🧹 Cleaning audit trail:")
	for i, line := range logs {
		fmt.Printf("  %2d. %s\n", i+1, line)
	}
}

func printReport(rep cleaner.Report) {
	fmt.Println("\n📋 Quality report:")
	rows := []struct {
		label string
		value string
	}{
		{"Initial records", fmt.Sprintf("%d", rep.InitialRecords)},
		{"Final records", fmt.Sprintf("%d", rep.FinalRecords)},
		{"Duplicates removed", fmt.Sprintf("%d", rep.DuplicatesRemoved)},
		{"Invalid emails removed", fmt.Sprintf("%d", rep.InvalidEmailsRemoved)},
		{"Missing values filled", fmt.Sprintf("%d", rep.MissingValuesFilled)},
		{"Duplicate rate", fmt.Sprintf("%.2f%%", rep.DuplicateRate)},
		{"Invalid email rate", fmt.Sprintf("%.2f%%", rep.InvalidEmailRate)},
		{"Missing rate", fmt.Sprintf("%.2f%%", rep.MissingRate)},
		{"Data health score", fmt.Sprintf("%.2f / 100", rep.DataHealthScore)},
	}

	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.label); w > width {
			width = w
		}
	}
	for _, row := range rows {
		fmt.Printf("  %s  %s\n", runewidth.FillRight(row.label, width), row.value)
	}
}

func printKPIs(kpis []insights.KPI) {
	fmt.Println("\n🎯 KPI targets:")

	width := 0
	for _, k := range kpis {
		if w := runewidth.StringWidth(k.Name); w > width {
			width = w
		}
	}
	for _, k := range kpis {
		status := "✅"
		if !k.Met {
			status = "❌"
		}
		fmt.Printf("  %s %s  target %6.2f  actual %6.2f\n",
			status, runewidth.FillRight(k.Name, width), k.Target, k.Actual)
	}
}

func printSummary(s insights.Summary) {
	fmt.Println("\n📈 Community snapshot:")
	fmt.Printf("  Members: %d\n", s.TotalMembers)
	if len(s.RoleCounts) > 0 {
		fmt.Print("  Roles:  ")
		for role, n := range s.RoleCounts {
			fmt.Printf(" %s=%d", role, n)
		}
		fmt.Println()
	}
	fmt.Printf("  Attendance: min %.0f, max %.0f, mean %.1f\n",
		s.Attendance.Min, s.Attendance.Max, s.Attendance.Mean)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "❌ "+format+"\n", args...)
	os.Exit(1)
}
