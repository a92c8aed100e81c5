package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"community-pulse/internal/cleaner"
	"community-pulse/pkg/utils"
)

// LoadCSV reads a member dataset from a local file or an http(s) URL
// and returns it as a record set. Header names are trimmed and
// de-quoted; cell values are parsed into typed values.
func LoadCSV(pathOrURL string) (*cleaner.RecordSet, error) {
	var reader io.Reader
	if strings.HasPrefix(pathOrURL, "http") {
		resp, err := http.Get(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to GET CSV: %w", err)
		}
		defer resp.Body.Close()
		reader = resp.Body
	} else {
		file, err := os.Open(pathOrURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		defer file.Close()
		reader = file
	}

	csvReader := csv.NewReader(reader)
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	fields := make([]string, len(headers))
	for i, h := range headers {
		fields[i] = strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
	}

	var rows []cleaner.Record
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		row := make(cleaner.Record, len(fields))
		for i, f := range fields {
			if i < len(record) {
				row[f] = utils.ParseValue(record[i])
			}
		}
		rows = append(rows, row)
	}

	fmt.Printf("📄 CSV ingestion done: %d records read from %s\n", len(rows), pathOrURL)
	return cleaner.NewRecordSet(fields, rows), nil
}
