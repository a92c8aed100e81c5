package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"community-pulse/internal/cleaner"
	"community-pulse/pkg/utils"
)

// WritePostgres inserts the cleaned record set into a postgres table,
// creating it as all-text columns if it does not exist. Returns the
// number of rows inserted.
func WritePostgres(ctx context.Context, dsn, table string, rs *cleaner.RecordSet) (int, error) {
	if table == "" {
		table = "members_clean"
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer conn.Close(ctx)

	cols := make([]string, len(rs.Fields))
	defs := make([]string, len(rs.Fields))
	for i, f := range rs.Fields {
		col := columnName(f)
		cols[i] = col
		defs[i] = col + " TEXT"
	}

	createSQL := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", table, strings.Join(defs, ", "))
	if _, err := conn.Exec(ctx, createSQL); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", table, err)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	for _, row := range rs.Rows {
		args := make([]interface{}, len(rs.Fields))
		for i, f := range rs.Fields {
			args[i] = utils.FormatValue(row[f])
		}
		if _, err := conn.Exec(ctx, insertSQL, args...); err != nil {
			return 0, fmt.Errorf("failed to insert row: %w", err)
		}
	}

	return rs.Len(), nil
}

// columnName lower-cases a field name into a safe identifier.
func columnName(field string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(field) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
