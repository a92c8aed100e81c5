package cleaner

import (
	"fmt"
	"strings"
)

// SchemaError is returned when the input is missing required columns.
// It is the only fatal error the pipeline produces; every other
// malformation is downgraded to a counter and an audit log entry.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}
