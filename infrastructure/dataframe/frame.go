// Package dataframe converts tabular input into a gota DataFrame, the
// internal table form figures are built from.
package dataframe

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/felixgeelhaar/plotmcp/domain/plot"
)

// Frame is a gota-backed plot.Frame. Column labels are kept verbatim;
// gota renames duplicates internally but callers see the original labels.
type Frame struct {
	df    dataframe.DataFrame
	names []string
	// missing marks cells that were null in the input. gota reads the
	// string "NaN" as missing, so the mask is authoritative.
	missing [][]bool
}

var _ plot.Frame = (*Frame)(nil)

// FromTable converts a validated table into a Frame. Column types are
// inferred per column: all-integer becomes int, other all-numeric becomes
// float, all-bool becomes bool, anything else is kept as strings.
func FromTable(t plot.Table) (*Frame, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	names := append([]string(nil), t.Columns...)
	if len(names) == 0 {
		return &Frame{names: names}, nil
	}

	cols := make([]series.Series, len(names))
	missing := make([][]bool, len(names))
	for c, name := range names {
		values := make([]any, len(t.Rows))
		mask := make([]bool, len(t.Rows))
		for r, row := range t.Rows {
			values[r] = row[c]
			mask[r] = row[c] == nil
		}
		cols[c] = column(values, name)
		missing[c] = mask
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %v", plot.ErrInvalidFormat, df.Err)
	}
	return &Frame{df: df, names: names, missing: missing}, nil
}

// Nrow implements plot.Frame.
func (f *Frame) Nrow() int {
	if len(f.names) == 0 {
		return 0
	}
	return f.df.Nrow()
}

// Ncol implements plot.Frame.
func (f *Frame) Ncol() int {
	return len(f.names)
}

// Names implements plot.Frame.
func (f *Frame) Names() []string {
	return append([]string(nil), f.names...)
}

// Values implements plot.Frame. Missing cells are nil.
func (f *Frame) Values(col int) []any {
	n := f.Nrow()
	out := make([]any, n)
	isString := f.df.Types()[col] == series.String
	for r := 0; r < n; r++ {
		if f.missing[col][r] {
			continue
		}
		e := f.df.Elem(r, col)
		if isString {
			out[r] = e.String()
			continue
		}
		out[r] = e.Val()
	}
	return out
}

// Types returns the inferred type of each column.
func (f *Frame) Types() []string {
	if len(f.names) == 0 {
		return nil
	}
	types := f.df.Types()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

// Describe returns gota's summary statistics table as text.
func (f *Frame) Describe() string {
	if f.Nrow() == 0 {
		return ""
	}
	return f.df.Describe().String()
}

// DataFrame exposes the underlying gota DataFrame.
func (f *Frame) DataFrame() dataframe.DataFrame {
	return f.df
}

func column(values []any, name string) series.Series {
	if ints, ok := asInts(values); ok {
		return series.New(ints, series.Int, name)
	}
	if floats, ok := asFloats(values); ok {
		return series.New(floats, series.Float, name)
	}
	if bools, ok := asBools(values); ok {
		return series.New(bools, series.Bool, name)
	}
	strs := make([]string, len(values))
	for i, v := range values {
		if v != nil {
			strs[i] = fmt.Sprint(v)
		}
	}
	return series.New(strs, series.String, name)
}

// asInts succeeds when every non-nil value is an integer that fits an int
// and at least one is present. Nil cells stay nil so gota marks them NA.
func asInts(values []any) ([]any, bool) {
	out := make([]any, len(values))
	seen := false
	for i, v := range values {
		if v == nil {
			continue
		}
		n, ok := toInt(v)
		if !ok {
			return nil, false
		}
		out[i] = n
		seen = true
	}
	return out, seen
}

// asFloats succeeds when every non-nil value is numeric and at least one is present.
func asFloats(values []any) ([]float64, bool) {
	out := make([]float64, len(values))
	seen := false
	for i, v := range values {
		if v == nil {
			out[i] = math.NaN()
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			return nil, false
		}
		out[i] = f
		seen = true
	}
	return out, seen
}

func asBools(values []any) ([]bool, bool) {
	out := make([]bool, len(values))
	for i, v := range values {
		b, ok := v.(bool)
		if !ok {
			return nil, false
		}
		out[i] = b
	}
	return out, len(values) > 0
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if int64(int(n)) != n {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil || int64(int(i)) != i {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
