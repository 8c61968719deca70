package types

import "strings"

// Record is a single raw input row: the column names in their original order
// plus one scalar value per column. CSV rows carry string values, GeoJSON
// properties carry whatever the JSON held (string, float64, bool, nil).
// A Record is not mutated after parsing.
type Record struct {
	Columns []string
	Fields  map[string]any
}

func NewRecord(columns []string, fields map[string]any) Record {
	return Record{
		Columns: columns,
		Fields:  fields,
	}
}

// Lookup returns the value for the given column name, matched
// case-insensitively against the record's columns.
func (r Record) Lookup(name string) (any, bool) {
	for _, col := range r.Columns {
		if strings.EqualFold(col, name) {
			v, ok := r.Fields[col]
			return v, ok
		}
	}
	return nil, false
}
