// Package mcp exposes the chart advisor as Model Context Protocol tools.
// It wraps github.com/felixgeelhaar/mcp-go.
package mcp

import (
	mcpgo "github.com/felixgeelhaar/mcp-go"
)

// Re-export core types from mcp-go for convenience.
type (
	// ServeOption configures server behavior.
	ServeOption = mcpgo.ServeOption

	// HTTPOption configures HTTP transport.
	HTTPOption = mcpgo.HTTPOption
)

// Tool names.
const (
	ToolPlotTypes       = "plot_types"
	ToolPlotDescription = "plot_description"
	ToolPlotExample     = "plot_example"
	ToolPlotRecommend   = "plot_recommend"
	ToolPlotVisualize   = "plot_visualize"
)

// DefaultInstructions are sent to clients when none are configured.
const DefaultInstructions = "Call plot_types to list chart kinds, plot_description and plot_example " +
	"to learn about one, and plot_visualize with {\"data\": {\"columns\": [...], \"data\": [[...]]}, \"plot_type\": \"bar\"} " +
	"to build a figure."
