package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Path is the dotted path to the invalid field.
	Path string
	// Message describes the validation error.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e), strings.Join(msgs, "\n  - "))
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator validates application configuration.
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the configuration and returns any errors.
func (v *Validator) Validate(config *AppConfig) ValidationErrors {
	v.errors = nil

	v.validateLogging(config)
	v.validateServer(config)
	v.validateRender(config)
	v.validateTracing(config)

	return v.errors
}

func (v *Validator) addError(path, message string) {
	v.errors = append(v.errors, ValidationError{Path: path, Message: message})
}

func (v *Validator) validateLogging(config *AppConfig) {
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error":
	default:
		v.addError("logging.level", fmt.Sprintf("invalid level: %s", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		v.addError("logging.format", fmt.Sprintf("invalid format: %s", config.Logging.Format))
	}
}

func (v *Validator) validateServer(config *AppConfig) {
	switch config.Server.Transport {
	case "", TransportStdio:
	case TransportHTTP:
		if config.Server.Addr == "" {
			v.addError("server.addr", "addr is required for http transport")
		}
	default:
		v.addError("server.transport", fmt.Sprintf("invalid transport: %s", config.Server.Transport))
	}
}

func (v *Validator) validateRender(config *AppConfig) {
	switch config.Render.Format {
	case "", FormatHTML, FormatPNG, FormatSVG, FormatJSON:
	default:
		v.addError("render.format", fmt.Sprintf("invalid format: %s", config.Render.Format))
	}
	if config.Render.Width < 0 {
		v.addError("render.width", "width must be non-negative")
	}
	if config.Render.Height < 0 {
		v.addError("render.height", "height must be non-negative")
	}
}

func (v *Validator) validateTracing(config *AppConfig) {
	tracing := config.Telemetry.Tracing
	switch tracing.Exporter {
	case "", ExporterNoop, ExporterStdout:
	case ExporterOTLP:
		if tracing.Enabled && tracing.Endpoint == "" {
			v.addError("telemetry.tracing.endpoint", "endpoint is required for otlp exporter")
		}
	default:
		v.addError("telemetry.tracing.exporter", fmt.Sprintf("invalid exporter: %s", tracing.Exporter))
	}
	if tracing.SampleRate < 0 || tracing.SampleRate > 1 {
		v.addError("telemetry.tracing.sample_rate", "sample_rate must be between 0 and 1")
	}
}
