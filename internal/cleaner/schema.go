package cleaner

type schemaStage struct {
	required []string
}

func (s schemaStage) Name() string    { return "schema_validation" }
func (s schemaStage) Needs() []string { return nil }

func (s schemaStage) Apply(rs *RecordSet) (StageResult, error) {
	var missing []string
	for _, col := range s.required {
		if !rs.HasField(col) {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		err := &SchemaError{Missing: missing}
		return StageResult{Log: []string{"ERROR: " + err.Error()}}, err
	}

	return StageResult{Log: []string{"Schema validation passed - all required columns present."}}, nil
}
