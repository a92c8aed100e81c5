package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"community-pulse/internal/cleaner"
	"community-pulse/pkg/utils"
)

// WriteCSV writes the record set to a CSV file, one column per field in
// the record set's order. Returns the number of rows written.
func WriteCSV(rs *cleaner.RecordSet, path string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(rs.Fields); err != nil {
		return 0, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rs.Rows {
		cells := make([]string, len(rs.Fields))
		for i, f := range rs.Fields {
			cells[i] = utils.FormatValue(row[f])
		}
		if err := w.Write(cells); err != nil {
			return 0, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("CSV write error: %w", err)
	}
	return rs.Len(), nil
}

// WriteJSON writes the record set as a JSON array of row objects.
func WriteJSON(rs *cleaner.RecordSet, path string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rs.Rows); err != nil {
		return 0, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return rs.Len(), nil
}
