package render

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// number converts a cell to float64. Strings are parsed.
func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// numeric reports whether every non-nil value is a number and at least one is present.
func numeric(values []any) bool {
	seen := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if _, ok := number(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// labels formats values as category labels.
func labels(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		if f, ok := v.(float64); ok {
			out[i] = strconv.FormatFloat(f, 'f', -1, 64)
			continue
		}
		out[i] = fmt.Sprint(v)
	}
	return out
}
