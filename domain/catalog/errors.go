package catalog

import "errors"

// Domain errors for catalog lookups.
var (
	// ErrDescriptionNotFound indicates no description exists for a plot type.
	ErrDescriptionNotFound = errors.New("description not available")

	// ErrExampleNotFound indicates no example exists for a plot type.
	ErrExampleNotFound = errors.New("example not available")

	// ErrMissingType indicates an example record has no string "type" field.
	ErrMissingType = errors.New("example record has no type")
)
