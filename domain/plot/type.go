// Package plot provides the domain model for single-series figures built
// from tabular input.
package plot

import "fmt"

// Type identifies a chart kind.
type Type string

// Supported chart kinds.
const (
	// TypeBar draws categorical or numeric bars.
	TypeBar Type = "bar"
	// TypeScatter draws unconnected points.
	TypeScatter Type = "scatter"
	// TypeLine draws points connected by lines, with markers.
	TypeLine Type = "line"
)

// Types returns every supported chart kind in a stable order.
func Types() []Type {
	return []Type{TypeBar, TypeScatter, TypeLine}
}

// ParseType resolves a plot-type tag.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.Valid() {
		return "", unsupported(s)
	}
	return t, nil
}

// Valid reports whether the type is one of the supported kinds.
func (t Type) Valid() bool {
	switch t {
	case TypeBar, TypeScatter, TypeLine:
		return true
	}
	return false
}

// String returns the tag.
func (t Type) String() string {
	return string(t)
}

// Label returns the human-readable name used in messages.
func (t Type) Label() string {
	switch t {
	case TypeBar:
		return "bar chart"
	case TypeScatter:
		return "scatter plot"
	case TypeLine:
		return "line chart"
	}
	return string(t)
}

func unsupported(tag string) error {
	return fmt.Errorf("%w: plot type '%s' is not yet supported", ErrUnsupportedPlotType, tag)
}
