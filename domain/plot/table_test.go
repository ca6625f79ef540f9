package plot_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/felixgeelhaar/plotmcp/domain/plot"
)

func TestParseTable_Valid(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"columns": []any{"Category", "Value"},
		"data":    []any{[]any{"A", 10}, []any{"B", 15}},
	}

	table, err := plot.ParseTable(input)
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	if len(table.Columns) != 2 || table.Columns[0] != "Category" {
		t.Errorf("Columns = %v", table.Columns)
	}
	if len(table.Rows) != 2 || table.Rows[1][1] != 15 {
		t.Errorf("Rows = %v", table.Rows)
	}
}

func TestParseTable_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
	}{
		{"string input", "not a dict"},
		{"nil input", nil},
		{"slice input", []any{1, 2}},
		{"missing keys", map[string]any{"nodata": true}},
		{"missing data", map[string]any{"columns": []any{"X"}}},
		{"missing columns", map[string]any{"data": []any{}}},
		{"columns not a list", map[string]any{"columns": "X", "data": []any{}}},
		{"row not a list", map[string]any{"columns": []any{"X"}, "data": []any{"A"}}},
		{"row arity mismatch", map[string]any{"columns": []any{"X", "Y"}, "data": []any{[]any{"A"}}}},
		{"nil table pointer", (*plot.Table)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := plot.ParseTable(tt.input)
			if !errors.Is(err, plot.ErrInvalidFormat) {
				t.Errorf("ParseTable() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestParseTable_EmptyRowsIsValidShape(t *testing.T) {
	t.Parallel()

	table, err := plot.ParseTable(map[string]any{
		"columns": []any{"X", "Y"},
		"data":    []any{},
	})
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("Rows = %v, want empty", table.Rows)
	}
}

func TestDecodeTable(t *testing.T) {
	t.Parallel()

	table, err := plot.DecodeTable([]byte(`{"columns":["X","Y"],"data":[[1,2.5],[3,4]]}`))
	if err != nil {
		t.Fatalf("DecodeTable() error = %v", err)
	}
	if n, ok := table.Rows[0][1].(json.Number); !ok || n.String() != "2.5" {
		t.Errorf("Rows[0][1] = %#v, want json.Number 2.5", table.Rows[0][1])
	}

	if _, err := plot.DecodeTable([]byte(`{broken`)); !errors.Is(err, plot.ErrInvalidFormat) {
		t.Errorf("DecodeTable(broken) error = %v, want ErrInvalidFormat", err)
	}
	if _, err := plot.DecodeTable([]byte(`[1,2,3]`)); !errors.Is(err, plot.ErrInvalidFormat) {
		t.Errorf("DecodeTable(array) error = %v, want ErrInvalidFormat", err)
	}
}

func TestTable_Validate(t *testing.T) {
	t.Parallel()

	valid := plot.Table{Columns: []string{"X", "Y"}, Rows: [][]any{{1, 2}}}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	missing := plot.Table{Columns: []string{"X"}}
	if err := missing.Validate(); !errors.Is(err, plot.ErrInvalidFormat) {
		t.Errorf("Validate() error = %v, want ErrInvalidFormat", err)
	}
}
