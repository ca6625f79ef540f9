package plot

// Mode controls how scatter-style series are drawn.
type Mode string

// Series drawing modes.
const (
	ModeNone         Mode = ""
	ModeMarkers      Mode = "markers"
	ModeLinesMarkers Mode = "lines+markers"
)

// Figure is a constructed chart: one data series plus layout metadata.
type Figure struct {
	ID     string   `json:"id"`
	Kind   Type     `json:"kind"`
	Series []Series `json:"series"`
	Layout Layout   `json:"layout"`
}

// Series is a single x/y data series.
type Series struct {
	Name  string `json:"name"`
	Kind  Type   `json:"type"`
	Mode  Mode   `json:"mode,omitempty"`
	X     []any  `json:"x"`
	Y     []any  `json:"y"`
	XName string `json:"x_name,omitempty"`
	YName string `json:"y_name,omitempty"`
}

// Layout holds the figure title and axis titles.
type Layout struct {
	Title      string `json:"title,omitempty"`
	XAxisTitle string `json:"xaxis_title,omitempty"`
	YAxisTitle string `json:"yaxis_title,omitempty"`
}

// Primary returns the figure's only series.
func (f *Figure) Primary() Series {
	if f == nil || len(f.Series) == 0 {
		return Series{}
	}
	return f.Series[0]
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.X)
}
