// Package telemetry provides OpenTelemetry metrics for figure construction
// and catalog lookups.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricFiguresBuilt      = "plotmcp.figures.built"
	MetricVisualizeFailures = "plotmcp.visualize.failures"
	MetricVisualizeDuration = "plotmcp.visualize.duration"
	MetricLookups           = "plotmcp.lookups"
)

// MetricsProvider provides access to metrics instruments.
type MetricsProvider struct {
	meter metric.Meter

	figuresBuilt      metric.Int64Counter
	visualizeFailures metric.Int64Counter
	lookups           metric.Int64Counter
	visualizeDuration metric.Float64Histogram

	initErr error
}

// MetricsConfig configures the metrics provider.
type MetricsConfig struct {
	// MeterName is the name of the meter (default: "github.com/felixgeelhaar/plotmcp").
	MeterName string
	// MeterVersion is the version of the meter.
	MeterVersion string
	// Provider is the meter provider to use. Nil means the global provider.
	Provider metric.MeterProvider
}

// DefaultMetricsConfig returns a default metrics configuration.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		MeterName:    "github.com/felixgeelhaar/plotmcp",
		MeterVersion: "1.0.0",
	}
}

// NewMetricsProvider creates a new metrics provider.
func NewMetricsProvider(config MetricsConfig) *MetricsProvider {
	if config.MeterName == "" {
		config.MeterName = DefaultMetricsConfig().MeterName
	}
	provider := config.Provider
	if provider == nil {
		provider = otel.GetMeterProvider()
	}

	mp := &MetricsProvider{
		meter: provider.Meter(
			config.MeterName,
			metric.WithInstrumentationVersion(config.MeterVersion),
		),
	}
	mp.initErr = mp.initInstruments()
	return mp
}

// initInstruments initializes all metric instruments.
func (mp *MetricsProvider) initInstruments() error {
	var err error

	mp.figuresBuilt, err = mp.meter.Int64Counter(
		MetricFiguresBuilt,
		metric.WithDescription("Number of figures built"),
		metric.WithUnit("{figure}"),
	)
	if err != nil {
		return err
	}

	mp.visualizeFailures, err = mp.meter.Int64Counter(
		MetricVisualizeFailures,
		metric.WithDescription("Number of rejected visualize requests"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return err
	}

	mp.lookups, err = mp.meter.Int64Counter(
		MetricLookups,
		metric.WithDescription("Number of description and example lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return err
	}

	mp.visualizeDuration, err = mp.meter.Float64Histogram(
		MetricVisualizeDuration,
		metric.WithDescription("Duration of visualize requests"),
		metric.WithUnit("ms"),
	)
	return err
}

// Error returns any error that occurred during initialization.
func (mp *MetricsProvider) Error() error {
	return mp.initErr
}

// RecordFigure records a successfully built figure.
func (mp *MetricsProvider) RecordFigure(ctx context.Context, plotType string, recommended bool, duration time.Duration) {
	if mp == nil || mp.initErr != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("plot.type", plotType),
		attribute.Bool("plot.recommended", recommended),
	)
	mp.figuresBuilt.Add(ctx, 1, attrs)
	mp.visualizeDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordFailure records a rejected visualize request.
func (mp *MetricsProvider) RecordFailure(ctx context.Context, reason string, duration time.Duration) {
	if mp == nil || mp.initErr != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("failure.reason", reason))
	mp.visualizeFailures.Add(ctx, 1, attrs)
	mp.visualizeDuration.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordLookup records a description or example lookup.
func (mp *MetricsProvider) RecordLookup(ctx context.Context, kind, plotType string, hit bool) {
	if mp == nil || mp.initErr != nil {
		return
	}
	mp.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("lookup.kind", kind),
		attribute.String("plot.type", plotType),
		attribute.Bool("lookup.hit", hit),
	))
}
