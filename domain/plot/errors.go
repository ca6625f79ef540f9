package plot

import "errors"

// Domain errors for figure construction.
var (
	// ErrInvalidFormat indicates the tabular input does not carry a column list and a row list.
	ErrInvalidFormat = errors.New("invalid data format: expected an object with 'columns' and 'data' keys")

	// ErrEmptyTable indicates the converted table has no rows.
	ErrEmptyTable = errors.New("table is empty")

	// ErrInsufficientColumns indicates the table has fewer columns than the plot kind needs.
	ErrInsufficientColumns = errors.New("insufficient columns")

	// ErrUnsupportedPlotType indicates the requested plot kind is not known.
	ErrUnsupportedPlotType = errors.New("unsupported plot type")
)
