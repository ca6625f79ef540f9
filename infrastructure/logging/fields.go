package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// PlotType adds a plot type field.
func PlotType(t string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("plot_type", t)
	}
}

// FigureID adds a figure ID field.
func FigureID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("figure_id", id)
	}
}

// Resource adds the name of a loaded resource (descriptions, examples).
func Resource(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("resource", name)
	}
}

// Path adds a file path field.
func Path(p string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("path", p)
	}
}

// Reason adds a reason field.
func Reason(reason string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("reason", reason)
	}
}

// Shape adds row and column counts.
func Shape(rows, cols int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("rows", rows).Int("columns", cols)
	}
}

// Count adds a named count field.
func Count(key string, n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, n)
	}
}

// Recommended marks whether the plot type came from the recommender.
func Recommended(recommended bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool("recommended", recommended)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

// Component adds a component field for categorization.
func Component(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("component", name)
	}
}

// Operation adds an operation field.
func Operation(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("operation", op)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
