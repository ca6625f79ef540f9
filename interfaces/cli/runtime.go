package cli

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/plotmcp"
	"github.com/felixgeelhaar/plotmcp/application"
	"github.com/felixgeelhaar/plotmcp/domain/config"
	infraconfig "github.com/felixgeelhaar/plotmcp/infrastructure/config"
	"github.com/felixgeelhaar/plotmcp/infrastructure/logging"
	"github.com/felixgeelhaar/plotmcp/infrastructure/observability"
	"github.com/felixgeelhaar/plotmcp/infrastructure/render"
	"github.com/felixgeelhaar/plotmcp/infrastructure/telemetry"
)

// runtime holds the components a command needs.
type runtime struct {
	config  *config.AppConfig
	logger  *bolt.Logger
	advisor *application.Advisor
	tracing *observability.Provider
}

// setup loads configuration, applies flag overrides and wires the advisor.
func (a *App) setup() (*runtime, error) {
	cfg, err := infraconfig.NewLoader().LoadOrDefault(a.global.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if a.global.logLevel != "" {
		if _, err := logging.ParseLevel(a.global.logLevel); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.Logging.Level = a.global.logLevel
	}
	if a.global.descriptionsPath != "" {
		cfg.Catalog.Descriptions = a.global.descriptionsPath
	}
	if a.global.examplesPath != "" {
		cfg.Catalog.Examples = a.global.examplesPath
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: a.stderr,
	})

	tracing, err := observability.New(append(
		observability.FromAppConfig(cfg.Telemetry),
		observability.WithServiceVersion(plotmcp.Version),
	)...)
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}

	metricsCfg := telemetry.DefaultMetricsConfig()
	metricsCfg.MeterVersion = plotmcp.Version

	advisor := application.New(
		application.WithDescriptionsPath(cfg.Catalog.Descriptions),
		application.WithExamplesPath(cfg.Catalog.Examples),
		application.WithLogger(logger),
		application.WithMetrics(telemetry.NewMetricsProvider(metricsCfg)),
		application.WithTracer(tracing.Tracer("github.com/felixgeelhaar/plotmcp/application")),
	)

	return &runtime{
		config:  cfg,
		logger:  logger,
		advisor: advisor,
		tracing: tracing,
	}, nil
}

// close flushes telemetry.
func (r *runtime) close(ctx context.Context) {
	if err := r.tracing.Shutdown(ctx); err != nil {
		logging.NewEvent(r.logger.Warn()).
			Add(logging.Component("cli")).
			Add(logging.ErrorField(err)).
			Msg("tracing shutdown failed")
	}
}

// displayer returns a browser displayer honouring the configured size.
func (a *App) displayer(cfg *config.AppConfig) *render.Displayer {
	opts := []render.DisplayerOption{render.WithRenderOptions(render.OptionsFromConfig(cfg.Render))}
	if a.opener != nil {
		opts = append(opts, render.WithOpener(a.opener))
	}
	return render.NewDisplayer(opts...)
}
