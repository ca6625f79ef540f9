package application

import (
	"github.com/felixgeelhaar/bolt/v3"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/plotmcp/domain/catalog"
	"github.com/felixgeelhaar/plotmcp/domain/plot"
	"github.com/felixgeelhaar/plotmcp/infrastructure/telemetry"
)

// Option configures the advisor.
type Option func(*AdvisorConfig)

// WithDescriptionsPath sets the plot description file.
func WithDescriptionsPath(path string) Option {
	return func(c *AdvisorConfig) {
		c.DescriptionsPath = path
	}
}

// WithExamplesPath sets the plot example file.
func WithExamplesPath(path string) Option {
	return func(c *AdvisorConfig) {
		c.ExamplesPath = path
	}
}

// WithCatalog uses an already built catalog instead of reading files.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *AdvisorConfig) {
		c.Catalog = cat
	}
}

// WithRecommender replaces the default recommender.
func WithRecommender(r plot.Recommender) Option {
	return func(c *AdvisorConfig) {
		c.Recommender = r
	}
}

// WithLogger sets the logger.
func WithLogger(logger *bolt.Logger) Option {
	return func(c *AdvisorConfig) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics provider.
func WithMetrics(m *telemetry.MetricsProvider) Option {
	return func(c *AdvisorConfig) {
		c.Metrics = m
	}
}

// WithTracer sets the tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *AdvisorConfig) {
		c.Tracer = t
	}
}

// New creates an advisor with functional options. Paths default to
// plot_desc.json and plot_examples.json in the working directory.
func New(opts ...Option) *Advisor {
	config := DefaultAdvisorConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return NewAdvisor(config)
}
