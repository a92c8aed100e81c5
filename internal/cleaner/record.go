package cleaner

// Record is a schema-agnostic row keyed by column name.
type Record map[string]interface{}

// RecordSet is the in-memory table the cleaning stages mutate. Fields
// carries the column names present in the input so stages can check for
// optional columns even when individual rows omit a value.
type RecordSet struct {
	Fields []string
	Rows   []Record
}

// NewRecordSet builds a record set from a column list and rows. The
// rows are deep-copied so the caller's data is never mutated by the
// cleaning stages.
func NewRecordSet(fields []string, rows []Record) *RecordSet {
	rs := &RecordSet{
		Fields: append([]string(nil), fields...),
		Rows:   make([]Record, 0, len(rows)),
	}
	for _, row := range rows {
		rs.Rows = append(rs.Rows, copyRecord(row))
	}
	return rs
}

// Copy returns a deep copy of the record set.
func (rs *RecordSet) Copy() *RecordSet {
	return NewRecordSet(rs.Fields, rs.Rows)
}

// HasField reports whether a column exists in the record set.
func (rs *RecordSet) HasField(name string) bool {
	for _, f := range rs.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// Len returns the current row count.
func (rs *RecordSet) Len() int {
	return len(rs.Rows)
}

func copyRecord(row Record) Record {
	out := make(Record, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
