package render

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"

	"github.com/felixgeelhaar/plotmcp/domain/plot"
)

// Displayer writes figures to HTML files and opens them in a browser.
type Displayer struct {
	dir     string
	options Options
	open    func(path string) error
}

// DisplayerOption configures a Displayer.
type DisplayerOption func(*Displayer)

// WithDir sets the directory rendered pages are written to.
func WithDir(dir string) DisplayerOption {
	return func(d *Displayer) {
		d.dir = dir
	}
}

// WithRenderOptions sets page dimensions.
func WithRenderOptions(o Options) DisplayerOption {
	return func(d *Displayer) {
		d.options = o
	}
}

// WithOpener replaces the browser launcher.
func WithOpener(open func(path string) error) DisplayerOption {
	return func(d *Displayer) {
		d.open = open
	}
}

// NewDisplayer creates a Displayer that opens pages with the system browser.
func NewDisplayer(opts ...DisplayerOption) *Displayer {
	d := &Displayer{
		options: DefaultOptions(),
		open:    Open,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Show renders fig to a new HTML file, opens it and returns its path.
func (d *Displayer) Show(fig *plot.Figure) (string, error) {
	if fig == nil {
		return "", ErrNilFigure
	}
	f, err := os.CreateTemp(d.dir, "plotmcp-*.html")
	if err != nil {
		return "", fmt.Errorf("create page: %w", err)
	}
	path := f.Name()

	if err := HTML(f, fig, d.options); err != nil {
		_ = f.Close()
		return path, err
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("close page: %w", err)
	}
	if err := d.open(path); err != nil {
		return path, fmt.Errorf("open browser: %w", err)
	}
	return path, nil
}

// Open opens a rendered page in the default browser. Browser process
// output goes to stderr so it cannot corrupt a stdio transport.
func Open(path string) error {
	browser.Stdout = io.Discard
	browser.Stderr = os.Stderr
	return browser.OpenFile(path)
}
