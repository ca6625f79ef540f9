package plot

import "fmt"

// Customization keys recognised by OptionsFromMap.
const (
	OptionTitle  = "title"
	OptionXLabel = "x_label"
	OptionYLabel = "y_label"
)

// Options customises the figure layout.
type Options struct {
	Title  string
	XLabel string
	YLabel string
}

// Option configures Options.
type Option func(*Options)

// WithTitle sets the figure title.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithXLabel sets the x-axis title.
func WithXLabel(label string) Option {
	return func(o *Options) {
		o.XLabel = label
	}
}

// WithYLabel sets the y-axis title.
func WithYLabel(label string) Option {
	return func(o *Options) {
		o.YLabel = label
	}
}

// OptionsFromMap converts loosely-typed customization into options.
// Unrecognised keys are ignored.
func OptionsFromMap(m map[string]any) []Option {
	var opts []Option
	for key, v := range m {
		if v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		switch key {
		case OptionTitle:
			opts = append(opts, WithTitle(s))
		case OptionXLabel:
			opts = append(opts, WithXLabel(s))
		case OptionYLabel:
			opts = append(opts, WithYLabel(s))
		}
	}
	return opts
}

func newOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o Options) apply(l *Layout) {
	if o.Title != "" {
		l.Title = o.Title
	}
	if o.XLabel != "" {
		l.XAxisTitle = o.XLabel
	}
	if o.YLabel != "" {
		l.YAxisTitle = o.YLabel
	}
}
