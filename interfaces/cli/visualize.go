package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/plotmcp/domain/plot"
	"github.com/felixgeelhaar/plotmcp/infrastructure/render"
)

// visualizeOptions holds options for the visualize command.
type visualizeOptions struct {
	input    string
	plotType string
	title    string
	xLabel   string
	yLabel   string
	format   string
	out      string
	open     bool
}

// newVisualizeCmd creates the visualize command.
func (a *App) newVisualizeCmd() *cobra.Command {
	opts := &visualizeOptions{}

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Build a figure from tabular JSON input",
		Long: `Build a bar, scatter or line figure from a JSON table and write it as
HTML, PNG, SVG or JSON.

Examples:
  # Bar chart from a file, written as HTML
  plotmcp visualize --input sales.json --type bar --title Sales --out sales.html

  # Let the recommender pick the type, read stdin, write SVG
  cat sales.json | plotmcp visualize --format svg > sales.svg

  # Render and open in the browser
  plotmcp visualize --input sales.json --type line --open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVisualize(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "Input JSON file, or - for stdin")
	cmd.Flags().StringVarP(&opts.plotType, "type", "t", "", "Plot type (bar, scatter, line); empty asks the recommender")
	cmd.Flags().StringVar(&opts.title, "title", "", "Figure title")
	cmd.Flags().StringVar(&opts.xLabel, "x-label", "", "X-axis title")
	cmd.Flags().StringVar(&opts.yLabel, "y-label", "", "Y-axis title")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format (html, png, svg, json); defaults to config")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&opts.open, "open", false, "Open the rendered HTML in the default browser")

	return cmd
}

// runVisualize builds and writes the figure.
func (a *App) runVisualize(ctx context.Context, opts *visualizeOptions) error {
	rt, err := a.setup()
	if err != nil {
		return err
	}
	defer rt.close(ctx)

	data, err := a.readInput(opts.input)
	if err != nil {
		return err
	}

	fig, err := rt.advisor.Visualize(ctx, data, opts.plotType,
		plot.WithTitle(opts.title),
		plot.WithXLabel(opts.xLabel),
		plot.WithYLabel(opts.yLabel),
	)
	if err != nil {
		return err
	}

	renderOpts := render.OptionsFromConfig(rt.config.Render)

	if opts.open && opts.out == "" {
		path, err := a.displayer(rt.config).Show(fig)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(a.stderr, "Opened %s\n", path)
		return nil
	}

	format := opts.format
	if format == "" {
		format = rt.config.Render.Format
	}

	w := a.stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := render.Write(w, fig, format, renderOpts); err != nil {
		return err
	}

	if opts.open {
		open := render.Open
		if a.opener != nil {
			open = a.opener
		}
		if err := open(opts.out); err != nil {
			return fmt.Errorf("open browser: %w", err)
		}
	}
	return nil
}

// readInput reads the table from a file or stdin.
func (a *App) readInput(path string) ([]byte, error) {
	if path == "-" || path == "" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
