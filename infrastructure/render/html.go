package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/felixgeelhaar/plotmcp/domain/plot"
)

// HTML renders fig as an interactive go-echarts page.
func HTML(w io.Writer, fig *plot.Figure, o Options) error {
	if fig == nil {
		return ErrNilFigure
	}
	o = o.withDefaults()
	s := fig.Primary()

	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			ChartID:   chartID(fig.ID),
			PageTitle: o.PageTitle,
			Width:     fmt.Sprintf("%dpx", o.Width),
			Height:    fmt.Sprintf("%dpx", o.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: fig.Layout.Title}),
		charts.WithYAxisOpts(opts.YAxis{Name: fig.Layout.YAxisTitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}

	switch fig.Kind {
	case plot.TypeBar:
		bar := charts.NewBar()
		bar.SetGlobalOptions(append(global, charts.WithXAxisOpts(opts.XAxis{Name: fig.Layout.XAxisTitle}))...)
		items := make([]opts.BarData, 0, len(s.Y))
		for _, y := range s.Y {
			items = append(items, opts.BarData{Value: y})
		}
		bar.SetXAxis(labels(s.X)).AddSeries(s.Name, items)
		return bar.Render(w)

	case plot.TypeLine:
		line := charts.NewLine()
		line.SetGlobalOptions(append(global, charts.WithXAxisOpts(opts.XAxis{Name: fig.Layout.XAxisTitle}))...)
		items := make([]opts.LineData, 0, len(s.Y))
		for _, y := range s.Y {
			items = append(items, opts.LineData{Value: y})
		}
		line.SetXAxis(labels(s.X)).AddSeries(s.Name, items)
		line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}))
		return line.Render(w)

	case plot.TypeScatter:
		scatter := charts.NewScatter()
		items := make([]opts.ScatterData, 0, len(s.Y))
		if numeric(s.X) {
			scatter.SetGlobalOptions(append(global, charts.WithXAxisOpts(opts.XAxis{Name: fig.Layout.XAxisTitle, Type: "value"}))...)
			for i, y := range s.Y {
				x, ok := number(s.X[i])
				if !ok || y == nil {
					continue
				}
				items = append(items, opts.ScatterData{Value: []any{x, y}})
			}
		} else {
			scatter.SetGlobalOptions(append(global, charts.WithXAxisOpts(opts.XAxis{Name: fig.Layout.XAxisTitle}))...)
			scatter.SetXAxis(labels(s.X))
			for _, y := range s.Y {
				items = append(items, opts.ScatterData{Value: y})
			}
		}
		scatter.AddSeries(s.Name, items)
		return scatter.Render(w)
	}
	return fmt.Errorf("%w: plot type '%s' is not yet supported", plot.ErrUnsupportedPlotType, fig.Kind)
}

// chartID derives a DOM-safe element id.
func chartID(id string) string {
	if id == "" {
		return "plotmcp"
	}
	return "fig_" + id
}
