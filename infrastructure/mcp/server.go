package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/bolt/v3"
	mcpgo "github.com/felixgeelhaar/mcp-go"
	mcpserver "github.com/felixgeelhaar/mcp-go/server"

	"github.com/felixgeelhaar/plotmcp/application"
	"github.com/felixgeelhaar/plotmcp/domain/catalog"
	"github.com/felixgeelhaar/plotmcp/domain/config"
	"github.com/felixgeelhaar/plotmcp/domain/plot"
	"github.com/felixgeelhaar/plotmcp/infrastructure/logging"
	"github.com/felixgeelhaar/plotmcp/infrastructure/render"
)

// PlotServer wraps an MCP server to expose the chart advisor.
type PlotServer struct {
	srv     *mcpgo.Server
	advisor *application.Advisor
	render  render.Options
	logger  *bolt.Logger
	info    mcpgo.ServerInfo
}

// PlotServerConfig configures a plot MCP server.
type PlotServerConfig struct {
	// Name is the server name.
	Name string

	// Version is the server version.
	Version string

	// Advisor answers tool calls. Required.
	Advisor *application.Advisor

	// Render sets the dimensions of rendered figures.
	Render render.Options

	// Description is an optional server description.
	Description string

	// Instructions provides usage instructions for clients.
	Instructions string

	// Logger receives tool call logs. Defaults to the global logger.
	Logger *bolt.Logger
}

// NewPlotServer creates a new MCP server exposing the plot tools.
func NewPlotServer(cfg PlotServerConfig) *PlotServer {
	info := mcpgo.ServerInfo{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Description: cfg.Description,
		Capabilities: mcpgo.Capabilities{
			Tools: true,
		},
	}

	instructions := cfg.Instructions
	if instructions == "" {
		instructions = DefaultInstructions
	}

	s := &PlotServer{
		srv:     mcpgo.NewServer(info, mcpgo.WithInstructions(instructions)),
		advisor: cfg.Advisor,
		render:  cfg.Render,
		logger:  cfg.Logger,
		info:    info,
	}
	if s.advisor == nil {
		s.advisor = application.New()
	}
	if s.logger == nil {
		s.logger = logging.Get()
	}

	s.registerTools()
	return s
}

type plotTypeInput struct {
	PlotType string `json:"plot_type"`
}

type recommendInput struct {
	Data json.RawMessage `json:"data"`
}

type visualizeInput struct {
	Data     json.RawMessage `json:"data"`
	PlotType string          `json:"plot_type"`
	Title    string          `json:"title"`
	XLabel   string          `json:"x_label"`
	YLabel   string          `json:"y_label"`
	Options  map[string]any  `json:"options"`
	Format   string          `json:"format"`
}

type visualizeOutput struct {
	Figure   *plot.Figure `json:"figure"`
	Format   string       `json:"format,omitempty"`
	Rendered string       `json:"rendered,omitempty"`
}

type plotTypeInfo struct {
	Type        string `json:"type"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// registerTools registers the plot tools with the MCP server.
func (s *PlotServer) registerTools() {
	s.register(ToolPlotTypes, "List the supported chart kinds with their descriptions.", s.handleTypes)
	s.register(ToolPlotDescription, "Describe a chart kind. Input: {\"plot_type\": \"bar\"}.", s.handleDescription)
	s.register(ToolPlotExample, "Return the first example record for a chart kind. Input: {\"plot_type\": \"bar\"}.", s.handleExample)
	s.register(ToolPlotRecommend, "Recommend a chart kind for a table. Input: {\"data\": {\"columns\": [...], \"data\": [[...]]}}.", s.handleRecommend)
	s.register(ToolPlotVisualize, "Build a figure from a table. Input: {\"data\": {...}, \"plot_type\": \"bar|scatter|line\", "+
		"\"title\", \"x_label\", \"y_label\", \"format\": \"json|html|svg\"}.", s.handleVisualize)
}

// register wraps a handler with call logging.
func (s *PlotServer) register(name, description string, handler func(context.Context, json.RawMessage) (string, error)) {
	s.srv.Tool(name).
		Description(description).
		Handler(func(ctx context.Context, input json.RawMessage) (string, error) {
			out, err := handler(ctx, input)
			ev := s.logger.Debug()
			if err != nil {
				ev = s.logger.Warn()
			}
			logging.NewEvent(ev).
				Add(logging.Component("mcp")).
				Add(logging.Operation(name)).
				Add(logging.ErrorField(err)).
				Msg("tool call")
			return out, err
		})
}

func (s *PlotServer) handleTypes(ctx context.Context, _ json.RawMessage) (string, error) {
	types := s.advisor.PlotTypes()
	out := make([]plotTypeInfo, 0, len(types))
	for _, t := range types {
		out = append(out, plotTypeInfo{
			Type:        t.String(),
			Label:       t.Label(),
			Description: s.advisor.Description(ctx, t.String()),
		})
	}
	return marshal(out)
}

func (s *PlotServer) handleDescription(ctx context.Context, input json.RawMessage) (string, error) {
	var in plotTypeInput
	if err := decode(input, &in); err != nil {
		return "", err
	}
	return s.advisor.Description(ctx, in.PlotType), nil
}

// handleExample returns the "not available" text as a regular result on a miss.
func (s *PlotServer) handleExample(ctx context.Context, input json.RawMessage) (string, error) {
	var in plotTypeInput
	if err := decode(input, &in); err != nil {
		return "", err
	}
	ex, err := s.advisor.Example(ctx, in.PlotType)
	if errors.Is(err, catalog.ErrExampleNotFound) {
		return catalog.ExampleNotAvailable(in.PlotType), nil
	}
	if err != nil {
		return "", err
	}
	return marshal(ex)
}

func (s *PlotServer) handleRecommend(ctx context.Context, input json.RawMessage) (string, error) {
	var in recommendInput
	if err := decode(input, &in); err != nil {
		return "", err
	}
	kind, err := s.advisor.Recommend(ctx, in.Data)
	if err != nil {
		return "", err
	}
	return kind.String(), nil
}

func (s *PlotServer) handleVisualize(ctx context.Context, input json.RawMessage) (string, error) {
	var in visualizeInput
	if err := decode(input, &in); err != nil {
		return "", err
	}

	opts := plot.OptionsFromMap(in.Options)
	if in.Title != "" {
		opts = append(opts, plot.WithTitle(in.Title))
	}
	if in.XLabel != "" {
		opts = append(opts, plot.WithXLabel(in.XLabel))
	}
	if in.YLabel != "" {
		opts = append(opts, plot.WithYLabel(in.YLabel))
	}

	fig, err := s.advisor.Visualize(ctx, in.Data, in.PlotType, opts...)
	if err != nil {
		return "", err
	}

	out := visualizeOutput{Figure: fig}
	switch in.Format {
	case "", config.FormatJSON:
	case config.FormatHTML, config.FormatSVG:
		var buf bytes.Buffer
		if err := render.Write(&buf, fig, in.Format, s.render); err != nil {
			return "", err
		}
		out.Format = in.Format
		out.Rendered = buf.String()
	default:
		return "", fmt.Errorf("%w: %s", render.ErrUnsupportedFormat, in.Format)
	}
	return marshal(out)
}

func decode(input json.RawMessage, v any) error {
	if len(bytes.TrimSpace(input)) == 0 {
		return nil
	}
	if err := json.Unmarshal(input, v); err != nil {
		return fmt.Errorf("invalid tool input: %w", err)
	}
	return nil
}

func marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Server returns the underlying mcp-go server.
func (s *PlotServer) Server() *mcpgo.Server {
	return s.srv
}

// Info returns the advertised server metadata.
func (s *PlotServer) Info() mcpgo.ServerInfo {
	return s.info
}

// Use adds middleware to the server.
func (s *PlotServer) Use(middlewares ...mcpserver.Middleware) {
	s.srv.Use(middlewares...)
}

// ServeStdio runs the server over stdin/stdout.
func (s *PlotServer) ServeStdio(ctx context.Context, opts ...ServeOption) error {
	return mcpgo.ServeStdio(ctx, s.srv, opts...)
}

// ServeHTTP runs the server over HTTP with SSE.
func (s *PlotServer) ServeHTTP(ctx context.Context, addr string, opts ...HTTPOption) error {
	return mcpgo.ServeHTTP(ctx, s.srv, addr, opts...)
}

// Serve runs the server on the configured transport.
func (s *PlotServer) Serve(ctx context.Context, cfg config.ServerConfig) error {
	logging.NewEvent(s.logger.Info()).
		Add(logging.Component("mcp")).
		Add(logging.Str("transport", cfg.Transport)).
		Add(logging.Str("addr", cfg.Addr)).
		Msg("serving")

	switch cfg.Transport {
	case config.TransportHTTP:
		return s.ServeHTTP(ctx, cfg.Addr)
	case config.TransportStdio, "":
		return s.ServeStdio(ctx)
	}
	return fmt.Errorf("unsupported transport: %s", cfg.Transport)
}
