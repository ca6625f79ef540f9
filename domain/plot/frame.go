package plot

// Frame is the rectangular table a figure is built from.
type Frame interface {
	// Nrow returns the number of rows.
	Nrow() int
	// Ncol returns the number of columns.
	Ncol() int
	// Names returns the column labels in order.
	Names() []string
	// Values returns the cells of column col in row order.
	Values(col int) []any
}
