// Package render writes figures as interactive HTML, static images or JSON.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/plotmcp/domain/config"
	"github.com/felixgeelhaar/plotmcp/domain/plot"
)

// Render errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported render format")
	ErrNilFigure         = errors.New("figure is nil")
)

// Options controls output dimensions.
type Options struct {
	// Width in pixels.
	Width int
	// Height in pixels.
	Height int
	// PageTitle is the HTML document title.
	PageTitle string
}

// DefaultOptions returns 800x600 output.
func DefaultOptions() Options {
	d := config.Default().Render
	return Options{Width: d.Width, Height: d.Height, PageTitle: "plotmcp"}
}

// OptionsFromConfig builds Options from the render configuration.
func OptionsFromConfig(cfg config.RenderConfig) Options {
	o := DefaultOptions()
	if cfg.Width > 0 {
		o.Width = cfg.Width
	}
	if cfg.Height > 0 {
		o.Height = cfg.Height
	}
	return o
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.PageTitle == "" {
		o.PageTitle = d.PageTitle
	}
	return o
}

// Formats returns the supported output formats.
func Formats() []string {
	return []string{config.FormatHTML, config.FormatPNG, config.FormatSVG, config.FormatJSON}
}

// Write renders fig to w in the given format.
func Write(w io.Writer, fig *plot.Figure, format string, opts Options) error {
	if fig == nil {
		return ErrNilFigure
	}
	switch strings.ToLower(format) {
	case config.FormatHTML, "":
		return HTML(w, fig, opts)
	case config.FormatPNG:
		return Image(w, fig, config.FormatPNG, opts)
	case config.FormatSVG:
		return Image(w, fig, config.FormatSVG, opts)
	case config.FormatJSON:
		return JSON(w, fig)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// JSON writes the figure as indented JSON.
func JSON(w io.Writer, fig *plot.Figure) error {
	if fig == nil {
		return ErrNilFigure
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(fig)
}
