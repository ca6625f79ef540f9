// Package observability provides OpenTelemetry tracing setup.
package observability

import (
	"io"
	"os"
	"time"

	domainconfig "github.com/felixgeelhaar/plotmcp/domain/config"
)

// Config configures the observability infrastructure.
type Config struct {
	// ServiceName is the name of the service for telemetry.
	ServiceName string

	// ServiceVersion is the version of the service.
	ServiceVersion string

	// Environment is the deployment environment (e.g., "production", "staging").
	Environment string

	// Tracing configures distributed tracing.
	Tracing TracingConfig

	// SetGlobal installs the tracer provider as the OpenTelemetry global.
	SetGlobal bool
}

// TracingConfig configures distributed tracing.
type TracingConfig struct {
	// Enabled enables tracing (default: false).
	Enabled bool

	// Exporter specifies the trace exporter type.
	Exporter ExporterType

	// Endpoint is the OTLP endpoint (e.g., "localhost:4317").
	Endpoint string

	// Insecure disables TLS for the exporter connection.
	Insecure bool

	// SampleRate is the sampling rate (0.0-1.0, default: 1.0).
	SampleRate float64

	// BatchTimeout is the batch export timeout.
	BatchTimeout time.Duration

	// Writer receives spans from the stdout exporter. Defaults to stderr.
	Writer io.Writer
}

// ExporterType specifies the telemetry exporter.
type ExporterType string

const (
	// ExporterOTLP exports to an OTLP/gRPC endpoint.
	ExporterOTLP ExporterType = domainconfig.ExporterOTLP

	// ExporterStdout writes spans as JSON (useful for development).
	ExporterStdout ExporterType = domainconfig.ExporterStdout

	// ExporterNoop disables export.
	ExporterNoop ExporterType = domainconfig.ExporterNoop
)

// DefaultConfig returns a configuration with tracing disabled.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "plotmcp",
		ServiceVersion: "dev",
		Environment:    "development",
		SetGlobal:      true,
		Tracing: TracingConfig{
			Exporter:     ExporterNoop,
			SampleRate:   1.0,
			BatchTimeout: 5 * time.Second,
			Writer:       os.Stderr,
		},
	}
}

// Option configures the observability provider.
type Option func(*Config)

// WithServiceName sets the service name.
func WithServiceName(name string) Option {
	return func(c *Config) {
		c.ServiceName = name
	}
}

// WithServiceVersion sets the service version.
func WithServiceVersion(version string) Option {
	return func(c *Config) {
		c.ServiceVersion = version
	}
}

// WithStdoutTracing enables tracing to w.
func WithStdoutTracing(w io.Writer) Option {
	return func(c *Config) {
		c.Tracing.Enabled = true
		c.Tracing.Exporter = ExporterStdout
		if w != nil {
			c.Tracing.Writer = w
		}
	}
}

// WithOTLP enables tracing to an OTLP/gRPC endpoint.
func WithOTLP(endpoint string, insecure bool) Option {
	return func(c *Config) {
		c.Tracing.Enabled = true
		c.Tracing.Exporter = ExporterOTLP
		c.Tracing.Endpoint = endpoint
		c.Tracing.Insecure = insecure
	}
}

// WithSampleRate sets the trace sampling rate.
func WithSampleRate(rate float64) Option {
	return func(c *Config) {
		c.Tracing.SampleRate = rate
	}
}

// WithoutGlobal keeps the tracer provider out of the OpenTelemetry globals.
func WithoutGlobal() Option {
	return func(c *Config) {
		c.SetGlobal = false
	}
}

// FromAppConfig maps application telemetry settings to options.
func FromAppConfig(cfg domainconfig.TelemetryConfig) []Option {
	opts := []Option{WithServiceName(cfg.ServiceName)}
	t := cfg.Tracing
	if !t.Enabled {
		return opts
	}
	switch ExporterType(t.Exporter) {
	case ExporterStdout:
		opts = append(opts, WithStdoutTracing(nil))
	case ExporterOTLP:
		opts = append(opts, WithOTLP(t.Endpoint, t.Insecure))
	}
	if t.SampleRate > 0 {
		opts = append(opts, WithSampleRate(t.SampleRate))
	}
	if t.BatchTimeout > 0 {
		opts = append(opts, func(c *Config) { c.Tracing.BatchTimeout = t.BatchTimeout })
	}
	return opts
}
