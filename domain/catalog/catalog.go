// Package catalog provides the read-only table of plot descriptions and
// example payloads used by the lookup feature.
package catalog

import (
	"fmt"
	"maps"
	"slices"
	"sort"
)

// TypeKey is the field every example record is tagged with.
const TypeKey = "type"

// Example is an opaque example record tagged with a plot type.
type Example map[string]any

// Type returns the record's plot-type tag.
func (e Example) Type() string {
	s, _ := e[TypeKey].(string)
	return s
}

// Validate checks the record carries a string type tag.
func (e Example) Validate() error {
	if _, ok := e[TypeKey].(string); !ok {
		return ErrMissingType
	}
	return nil
}

// Catalog holds plot descriptions and examples. It is immutable after
// construction and safe for concurrent use.
type Catalog struct {
	descriptions map[string]string
	examples     []Example
}

// New creates a catalog from deep copies of the given tables. Nil inputs
// yield empty tables.
func New(descriptions map[string]string, examples []Example) *Catalog {
	c := &Catalog{
		descriptions: maps.Clone(descriptions),
		examples:     make([]Example, len(examples)),
	}
	if c.descriptions == nil {
		c.descriptions = map[string]string{}
	}
	for i, ex := range examples {
		c.examples[i] = ex.Clone()
	}
	return c
}

// Clone returns a deep copy of the record. Nested maps and lists decoded
// from JSON are copied; other values are shared.
func (e Example) Clone() Example {
	if e == nil {
		return nil
	}
	return Example(cloneMap(e))
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case Example:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return slices.Clone(t)
	default:
		return v
	}
}

// Empty returns a catalog with no descriptions and no examples.
func Empty() *Catalog {
	return New(nil, nil)
}

// LookupDescription returns the description for plotType, or an error
// wrapping ErrDescriptionNotFound.
func (c *Catalog) LookupDescription(plotType string) (string, error) {
	d, ok := c.descriptions[plotType]
	if !ok {
		return "", fmt.Errorf("%w for plot type: %s", ErrDescriptionNotFound, plotType)
	}
	return d, nil
}

// Description returns the description for plotType, or a message naming the
// type when none is available.
func (c *Catalog) Description(plotType string) string {
	d, err := c.LookupDescription(plotType)
	if err != nil {
		return DescriptionNotAvailable(plotType)
	}
	return d
}

// Example returns a copy of the first example tagged plotType, in load order.
func (c *Catalog) Example(plotType string) (Example, error) {
	for _, ex := range c.examples {
		if ex.Type() == plotType {
			return ex.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w for plot type: %s", ErrExampleNotFound, plotType)
}

// Types returns the described plot types in sorted order.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.descriptions))
	for t := range c.descriptions {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// DescriptionCount returns the number of descriptions.
func (c *Catalog) DescriptionCount() int {
	return len(c.descriptions)
}

// ExampleCount returns the number of example records.
func (c *Catalog) ExampleCount() int {
	return len(c.examples)
}

// DescriptionNotAvailable is the message returned for an unknown description.
func DescriptionNotAvailable(plotType string) string {
	return "Description not available for plot type: " + plotType
}

// ExampleNotAvailable is the message shown for an unknown example.
func ExampleNotAvailable(plotType string) string {
	return "Example not available for plot type: " + plotType
}
