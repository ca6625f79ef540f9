package cli

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/plotmcp"
	"github.com/felixgeelhaar/plotmcp/infrastructure/mcp"
	"github.com/felixgeelhaar/plotmcp/infrastructure/render"
)

// serveOptions holds options for the serve command.
type serveOptions struct {
	transport string
	addr      string
}

// newServeCmd creates the serve command.
func (a *App) newServeCmd() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the plot tools over MCP",
		Long: `Serve plot_types, plot_description, plot_example, plot_recommend and
plot_visualize as Model Context Protocol tools.

Examples:
  # stdio transport for desktop MCP clients
  plotmcp serve

  # HTTP transport
  plotmcp serve --transport http --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := a.setup()
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			server := rt.config.Server
			if opts.transport != "" {
				server.Transport = opts.transport
			}
			if opts.addr != "" {
				server.Addr = opts.addr
			}

			srv := mcp.NewPlotServer(mcp.PlotServerConfig{
				Name:         server.Name,
				Version:      plotmcp.Version,
				Description:  "Chart advisor and figure builder",
				Instructions: server.Instructions,
				Advisor:      rt.advisor,
				Render:       render.OptionsFromConfig(rt.config.Render),
				Logger:       rt.logger,
			})
			return srv.Serve(cmd.Context(), server)
		},
	}

	cmd.Flags().StringVar(&opts.transport, "transport", "", "Transport (stdio or http); defaults to config")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address for the http transport")

	return cmd
}
