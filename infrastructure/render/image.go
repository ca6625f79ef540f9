package render

import (
	"fmt"
	"io"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/felixgeelhaar/plotmcp/domain/config"
	"github.com/felixgeelhaar/plotmcp/domain/plot"
)

// Image renders fig as a static png or svg with gonum/plot.
func Image(w io.Writer, fig *plot.Figure, format string, o Options) error {
	if fig == nil {
		return ErrNilFigure
	}
	if format != config.FormatPNG && format != config.FormatSVG {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	o = o.withDefaults()

	p, err := newPlot(fig)
	if err != nil {
		return err
	}

	width := vg.Length(o.Width) * vg.Inch / 96
	height := vg.Length(o.Height) * vg.Inch / 96
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("failed to create plot writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write plot: %w", err)
	}
	return nil
}

func newPlot(fig *plot.Figure) (*gplot.Plot, error) {
	p := gplot.New()
	p.Title.Text = fig.Layout.Title
	p.X.Label.Text = fig.Layout.XAxisTitle
	p.Y.Label.Text = fig.Layout.YAxisTitle
	p.Add(plotter.NewGrid())

	s := fig.Primary()
	switch fig.Kind {
	case plot.TypeBar:
		values := make(plotter.Values, len(s.Y))
		for i, y := range s.Y {
			values[i], _ = number(y)
		}
		bars, err := plotter.NewBarChart(values, vg.Points(20))
		if err != nil {
			return nil, fmt.Errorf("failed to create bar chart: %w", err)
		}
		p.Add(bars)
		p.NominalX(labels(s.X)...)
		return p, nil

	case plot.TypeScatter, plot.TypeLine:
		xys := points(p, s)
		if fig.Kind == plot.TypeScatter {
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, fmt.Errorf("failed to create scatter plot: %w", err)
			}
			p.Add(sc)
			return p, nil
		}
		l, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("failed to create line chart: %w", err)
		}
		p.Add(l, pts)
		return p, nil
	}
	return nil, fmt.Errorf("%w: plot type '%s' is not yet supported", plot.ErrUnsupportedPlotType, fig.Kind)
}

// points maps a series to XY pairs. Categorical x values are placed at
// their index and labelled on the axis. Cells without a numeric y are skipped.
func points(p *gplot.Plot, s plot.Series) plotter.XYs {
	categorical := !numeric(s.X)
	if categorical {
		p.NominalX(labels(s.X)...)
	}
	xys := make(plotter.XYs, 0, len(s.Y))
	for i, yv := range s.Y {
		y, ok := number(yv)
		if !ok {
			continue
		}
		x := float64(i)
		if !categorical {
			if x, ok = number(s.X[i]); !ok {
				continue
			}
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return xys
}
