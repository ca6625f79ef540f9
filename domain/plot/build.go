package plot

import (
	"fmt"

	"github.com/google/uuid"
)

// Build constructs a single-series figure of the given kind from frame.
func Build(kind Type, frame Frame, opts ...Option) (*Figure, error) {
	if frame == nil || frame.Nrow() == 0 {
		return nil, ErrEmptyTable
	}

	series, err := kind.series(frame)
	if err != nil {
		return nil, err
	}

	fig := &Figure{
		ID:     uuid.NewString(),
		Kind:   kind,
		Series: []Series{series},
	}
	newOptions(opts).apply(&fig.Layout)
	return fig, nil
}

// series dispatches to the builder for each kind.
func (t Type) series(frame Frame) (Series, error) {
	switch t {
	case TypeBar:
		return xySeries(t, ModeNone, frame)
	case TypeScatter:
		return xySeries(t, ModeMarkers, frame)
	case TypeLine:
		return xySeries(t, ModeLinesMarkers, frame)
	}
	return Series{}, unsupported(string(t))
}

// xySeries takes column 0 as x and column 1 as y.
func xySeries(kind Type, mode Mode, frame Frame) (Series, error) {
	if frame.Ncol() < 2 {
		return Series{}, fmt.Errorf("%w: %s requires at least two columns", ErrInsufficientColumns, kind.Label())
	}
	names := frame.Names()
	return Series{
		Name:  names[1],
		Kind:  kind,
		Mode:  mode,
		X:     frame.Values(0),
		Y:     frame.Values(1),
		XName: names[0],
		YName: names[1],
	}, nil
}
