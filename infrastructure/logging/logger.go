// Package logging provides structured logging using bolt.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/felixgeelhaar/bolt/v3"
)

var (
	defaultLogger *bolt.Logger
	once          sync.Once
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format (json or console).
	Format string

	// Output is the output destination. Defaults to stderr so that
	// stdout stays free for figures and the MCP stdio transport.
	Output io.Writer
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

// ErrUnknownLevel is returned by ParseLevel for an unrecognised level name.
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel converts a level name to bolt.Level. An empty name means info.
func ParseLevel(s string) (bolt.Level, error) {
	switch strings.TrimSpace(s) {
	case "trace":
		return bolt.TRACE, nil
	case "debug":
		return bolt.DEBUG, nil
	case "", "info":
		return bolt.INFO, nil
	case "warn":
		return bolt.WARN, nil
	case "error":
		return bolt.ERROR, nil
	default:
		return bolt.INFO, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// New builds a standalone logger from config.
func New(config Config) *bolt.Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	var handler bolt.Handler
	if config.Format == "json" {
		handler = bolt.NewJSONHandler(output)
	} else {
		handler = bolt.NewConsoleHandler(output)
	}

	// Unknown levels are rejected by ParseLevel callers; here they mean info.
	level, _ := ParseLevel(config.Level)
	return bolt.New(handler).SetLevel(level)
}

// Init initializes the default logger with the given configuration.
// Only the first call has an effect.
func Init(config Config) {
	once.Do(func() {
		defaultLogger = New(config)
	})
}

// Get returns the default logger, initializing if necessary.
func Get() *bolt.Logger {
	if defaultLogger == nil {
		Init(DefaultConfig())
	}
	return defaultLogger
}

// LogEvent is a wrapper that allows adding Fields to a bolt.Event.
type LogEvent struct {
	event *bolt.Event
}

// NewEvent wraps a bolt.Event for field application.
func NewEvent(e *bolt.Event) *LogEvent {
	return &LogEvent{event: e}
}

// Add applies a field to the event and returns the wrapper for chaining.
func (l *LogEvent) Add(f Field) *LogEvent {
	l.event = f(l.event)
	return l
}

// Msg sends the log event with a message.
func (l *LogEvent) Msg(msg string) {
	l.event.Msg(msg)
}

// Fields applies several fields in order.
func (l *LogEvent) Fields(fs ...Field) *LogEvent {
	for _, f := range fs {
		l.event = f(l.event)
	}
	return l
}

// Failure tags the event with a failure reason and the error behind it.
func (l *LogEvent) Failure(reason string, err error) *LogEvent {
	return l.Add(Reason(reason)).Add(ErrorField(err))
}

// Send sends the log event without a message.
func (l *LogEvent) Send() {
	l.event.Send()
}
