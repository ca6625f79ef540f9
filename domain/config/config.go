// Package config provides domain models for plotmcp configuration.
package config

import "time"

// Default catalog file locations.
const (
	DefaultDescriptionsPath = "plot_desc.json"
	DefaultExamplesPath     = "plot_examples.json"
)

// Transports supported by the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Trace exporters.
const (
	ExporterNoop   = "noop"
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Output formats a figure can be rendered to.
const (
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// AppConfig represents the complete application configuration.
type AppConfig struct {
	// Catalog locates the description and example files.
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	// Logging configures the structured logger.
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	// Server configures the MCP server.
	Server ServerConfig `json:"server,omitempty" yaml:"server,omitempty"`
	// Render configures figure output.
	Render RenderConfig `json:"render,omitempty" yaml:"render,omitempty"`
	// Telemetry configures tracing.
	Telemetry TelemetryConfig `json:"telemetry,omitempty" yaml:"telemetry,omitempty"`
}

// CatalogConfig locates the catalog files.
type CatalogConfig struct {
	// Descriptions is the plot description file (JSON object of string to string).
	Descriptions string `json:"descriptions,omitempty" yaml:"descriptions,omitempty"`
	// Examples is the plot example file (JSON array of typed records).
	Examples string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level is trace, debug, info, warn or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Format is console or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	// Name is the advertised server name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Transport is stdio or http.
	Transport string `json:"transport,omitempty" yaml:"transport,omitempty"`
	// Addr is the listen address for the http transport.
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
	// Instructions are shown to MCP clients.
	Instructions string `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// RenderConfig configures figure rendering.
type RenderConfig struct {
	// Format is html, png, svg or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	// Width is the output width in pixels.
	Width int `json:"width,omitempty" yaml:"width,omitempty"`
	// Height is the output height in pixels.
	Height int `json:"height,omitempty" yaml:"height,omitempty"`
}

// TelemetryConfig configures observability.
type TelemetryConfig struct {
	// ServiceName is reported as the OpenTelemetry service name.
	ServiceName string `json:"service_name,omitempty" yaml:"service_name,omitempty"`
	// Tracing configures span export.
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`
}

// TracingConfig configures span export.
type TracingConfig struct {
	Enabled      bool          `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Exporter     string        `json:"exporter,omitempty" yaml:"exporter,omitempty"`
	Endpoint     string        `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Insecure     bool          `json:"insecure,omitempty" yaml:"insecure,omitempty"`
	SampleRate   float64       `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	BatchTimeout time.Duration `json:"batch_timeout,omitempty" yaml:"batch_timeout,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() AppConfig {
	return AppConfig{
		Catalog: CatalogConfig{
			Descriptions: DefaultDescriptionsPath,
			Examples:     DefaultExamplesPath,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Name:      "plotmcp",
			Transport: TransportStdio,
			Addr:      ":8080",
		},
		Render: RenderConfig{
			Format: FormatHTML,
			Width:  800,
			Height: 600,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "plotmcp",
			Tracing: TracingConfig{
				Exporter:     ExporterNoop,
				SampleRate:   1.0,
				BatchTimeout: 5 * time.Second,
			},
		},
	}
}

// ApplyDefaults fills unset fields from Default.
func (c *AppConfig) ApplyDefaults() {
	d := Default()

	if c.Catalog.Descriptions == "" {
		c.Catalog.Descriptions = d.Catalog.Descriptions
	}
	if c.Catalog.Examples == "" {
		c.Catalog.Examples = d.Catalog.Examples
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	if c.Server.Name == "" {
		c.Server.Name = d.Server.Name
	}
	if c.Server.Transport == "" {
		c.Server.Transport = d.Server.Transport
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Render.Format == "" {
		c.Render.Format = d.Render.Format
	}
	if c.Render.Width == 0 {
		c.Render.Width = d.Render.Width
	}
	if c.Render.Height == 0 {
		c.Render.Height = d.Render.Height
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = d.Telemetry.ServiceName
	}
	if c.Telemetry.Tracing.Exporter == "" {
		c.Telemetry.Tracing.Exporter = d.Telemetry.Tracing.Exporter
	}
	if c.Telemetry.Tracing.SampleRate == 0 {
		c.Telemetry.Tracing.SampleRate = d.Telemetry.Tracing.SampleRate
	}
	if c.Telemetry.Tracing.BatchTimeout == 0 {
		c.Telemetry.Tracing.BatchTimeout = d.Telemetry.Tracing.BatchTimeout
	}
}
