// Package application provides the chart advisor: catalog lookups and
// figure construction from tabular input.
package application

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/plotmcp/domain/catalog"
	"github.com/felixgeelhaar/plotmcp/domain/config"
	"github.com/felixgeelhaar/plotmcp/domain/plot"
	infracatalog "github.com/felixgeelhaar/plotmcp/infrastructure/catalog"
	"github.com/felixgeelhaar/plotmcp/infrastructure/dataframe"
	"github.com/felixgeelhaar/plotmcp/infrastructure/logging"
	"github.com/felixgeelhaar/plotmcp/infrastructure/telemetry"
)

const tracerName = "github.com/felixgeelhaar/plotmcp/application"

// Failure reasons recorded in metrics.
const (
	ReasonInvalidFormat       = "invalid_format"
	ReasonEmptyTable          = "empty_table"
	ReasonInsufficientColumns = "insufficient_columns"
	ReasonUnsupportedPlotType = "unsupported_plot_type"
	ReasonInternal            = "internal"
)

// Advisor answers catalog queries and builds figures.
type Advisor struct {
	catalog     *catalog.Catalog
	warnings    []infracatalog.Warning
	recommender plot.Recommender
	logger      *bolt.Logger
	metrics     *telemetry.MetricsProvider
	tracer      trace.Tracer
}

// AdvisorConfig contains configuration for the advisor.
type AdvisorConfig struct {
	DescriptionsPath string
	ExamplesPath     string
	// Catalog, when set, is used instead of loading the files.
	Catalog     *catalog.Catalog
	Recommender plot.Recommender
	Logger      *bolt.Logger
	Metrics     *telemetry.MetricsProvider
	Tracer      trace.Tracer
}

// NewAdvisor creates an advisor. The catalog files are read exactly once;
// load failures degrade to empty tables and are available via Warnings.
func NewAdvisor(config AdvisorConfig) *Advisor {
	a := &Advisor{
		catalog:     config.Catalog,
		recommender: config.Recommender,
		logger:      config.Logger,
		metrics:     config.Metrics,
		tracer:      config.Tracer,
	}

	if a.logger == nil {
		a.logger = logging.Get()
	}
	if a.recommender == nil {
		a.recommender = plot.DefaultRecommender{}
	}
	if a.tracer == nil {
		a.tracer = otel.Tracer(tracerName)
	}
	if a.catalog == nil {
		loader := infracatalog.NewLoader(infracatalog.WithLogger(a.logger))
		a.catalog, a.warnings = loader.Load(config.DescriptionsPath, config.ExamplesPath)
	}

	return a
}

// Catalog returns the loaded catalog.
func (a *Advisor) Catalog() *catalog.Catalog {
	return a.catalog
}

// Warnings returns the warnings produced while loading the catalog.
func (a *Advisor) Warnings() []infracatalog.Warning {
	return append([]infracatalog.Warning(nil), a.warnings...)
}

// PlotTypes returns the plot kinds the advisor can build.
func (a *Advisor) PlotTypes() []plot.Type {
	return plot.Types()
}

// Description returns the description for plotType or the
// "Description not available" text.
func (a *Advisor) Description(ctx context.Context, plotType string) string {
	text, err := a.catalog.LookupDescription(plotType)
	a.metrics.RecordLookup(ctx, "description", plotType, err == nil)
	if err != nil {
		return catalog.DescriptionNotAvailable(plotType)
	}
	return text
}

// Example returns the first example record whose type matches plotType.
func (a *Advisor) Example(ctx context.Context, plotType string) (catalog.Example, error) {
	ex, err := a.catalog.Example(plotType)
	a.metrics.RecordLookup(ctx, "example", plotType, err == nil)
	return ex, err
}

// Recommend returns the recommended plot kind for the given input.
func (a *Advisor) Recommend(ctx context.Context, input any) (plot.Type, error) {
	frame, err := a.frame(input)
	if err != nil {
		return "", err
	}
	return a.recommender.Recommend(frame), nil
}

// Visualize builds a figure from input. An empty plotType asks the
// recommender. Every failure is logged before it is returned.
func (a *Advisor) Visualize(ctx context.Context, input any, plotType string, opts ...plot.Option) (*plot.Figure, error) {
	start := time.Now()
	ctx, span := a.tracer.Start(ctx, "advisor.visualize",
		trace.WithAttributes(attribute.String("plot.type.requested", plotType)))
	defer span.End()

	fig, recommended, err := a.visualize(input, plotType, opts)
	elapsed := time.Since(start)

	if err != nil {
		reason := FailureReason(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
		a.metrics.RecordFailure(ctx, reason, elapsed)
		logging.NewEvent(a.logger.Error()).
			Fields(logging.Component("advisor"), logging.PlotType(plotType)).
			Failure(reason, err).
			Msg("visualize failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.String("plot.type", fig.Kind.String()),
		attribute.Bool("plot.recommended", recommended),
		attribute.Int("plot.points", fig.Primary().Len()),
	)
	a.metrics.RecordFigure(ctx, fig.Kind.String(), recommended, elapsed)
	logging.NewEvent(a.logger.Debug()).
		Add(logging.Component("advisor")).
		Add(logging.PlotType(fig.Kind.String())).
		Add(logging.FigureID(fig.ID)).
		Add(logging.Recommended(recommended)).
		Add(logging.Duration(elapsed)).
		Msg("figure built")
	return fig, nil
}

func (a *Advisor) visualize(input any, plotType string, opts []plot.Option) (*plot.Figure, bool, error) {
	frame, err := a.frame(input)
	if err != nil {
		return nil, false, err
	}
	if frame.Nrow() == 0 {
		return nil, false, plot.ErrEmptyTable
	}

	recommended := plotType == ""
	kind := plot.Type(plotType)
	if recommended {
		kind = a.recommender.Recommend(frame)
	}
	kind, err = plot.ParseType(kind.String())
	if err != nil {
		return nil, recommended, err
	}

	fig, err := plot.Build(kind, frame, opts...)
	return fig, recommended, err
}

// frame converts any accepted input form into a gota-backed frame.
func (a *Advisor) frame(input any) (*dataframe.Frame, error) {
	var (
		table plot.Table
		err   error
	)
	switch in := input.(type) {
	case []byte:
		table, err = plot.DecodeTable(in)
	case json.RawMessage:
		table, err = plot.DecodeTable(in)
	default:
		table, err = plot.ParseTable(in)
	}
	if err != nil {
		return nil, err
	}
	return dataframe.FromTable(table)
}

// FailureReason classifies a Visualize error for metrics and logs.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, plot.ErrInvalidFormat):
		return ReasonInvalidFormat
	case errors.Is(err, plot.ErrEmptyTable):
		return ReasonEmptyTable
	case errors.Is(err, plot.ErrInsufficientColumns):
		return ReasonInsufficientColumns
	case errors.Is(err, plot.ErrUnsupportedPlotType):
		return ReasonUnsupportedPlotType
	}
	return ReasonInternal
}

// DefaultAdvisorConfig returns the configuration derived from config.Default.
func DefaultAdvisorConfig() AdvisorConfig {
	d := config.Default()
	return AdvisorConfig{
		DescriptionsPath: d.Catalog.Descriptions,
		ExamplesPath:     d.Catalog.Examples,
	}
}
