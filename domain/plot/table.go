package plot

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Table is the caller-supplied tabular input: column labels plus row tuples.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"data"`
}

// Validate checks that every row has one value per column.
func (t Table) Validate() error {
	if t.Columns == nil || t.Rows == nil {
		return ErrInvalidFormat
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidFormat, i, len(row), len(t.Columns))
		}
	}
	return nil
}

// DecodeTable decodes a JSON document of the form
// {"columns": [...], "data": [[...], ...]}. Numbers are kept as json.Number.
func DecodeTable(data []byte) (Table, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Table{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return ParseTable(v)
}

// ParseTable converts a loosely-typed value into a Table. It accepts a Table,
// a *Table, or a map with "columns" and "data" lists as produced by decoding JSON.
func ParseTable(v any) (Table, error) {
	var m map[string]any
	switch in := v.(type) {
	case Table:
		return in, in.Validate()
	case *Table:
		if in == nil {
			return Table{}, ErrInvalidFormat
		}
		return *in, in.Validate()
	case map[string]any:
		m = in
	default:
		return Table{}, ErrInvalidFormat
	}

	rawCols, ok := m["columns"]
	if !ok {
		return Table{}, ErrInvalidFormat
	}
	rawRows, ok := m["data"]
	if !ok {
		return Table{}, ErrInvalidFormat
	}

	cols, ok := parseColumns(rawCols)
	if !ok {
		return Table{}, ErrInvalidFormat
	}
	rows, ok := parseRows(rawRows)
	if !ok {
		return Table{}, ErrInvalidFormat
	}

	t := Table{Columns: cols, Rows: rows}
	return t, t.Validate()
}

func parseColumns(v any) ([]string, bool) {
	switch cols := v.(type) {
	case []string:
		return cols, true
	case []any:
		out := make([]string, len(cols))
		for i, c := range cols {
			if s, ok := c.(string); ok {
				out[i] = s
			} else {
				out[i] = fmt.Sprint(c)
			}
		}
		return out, true
	}
	return nil, false
}

func parseRows(v any) ([][]any, bool) {
	switch rows := v.(type) {
	case [][]any:
		return rows, true
	case []any:
		out := make([][]any, len(rows))
		for i, r := range rows {
			row, ok := r.([]any)
			if !ok {
				return nil, false
			}
			out[i] = row
		}
		return out, true
	}
	return nil, false
}
