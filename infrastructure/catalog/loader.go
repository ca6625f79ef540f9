// Package catalog loads plot descriptions and examples from disk.
//
// Each file is loaded independently: a missing or malformed file degrades to
// an empty table and produces a Warning, and never affects the other file.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/felixgeelhaar/bolt/v3"
	"gopkg.in/yaml.v3"

	domaincatalog "github.com/felixgeelhaar/plotmcp/domain/catalog"
	"github.com/felixgeelhaar/plotmcp/infrastructure/logging"
)

// Resource names a catalog file.
type Resource string

const (
	// ResourceDescriptions is the plot description file.
	ResourceDescriptions Resource = "descriptions"
	// ResourceExamples is the plot example file.
	ResourceExamples Resource = "examples"
)

// Reason classifies a load failure.
type Reason string

const (
	// ReasonNotFound means the file does not exist.
	ReasonNotFound Reason = "not_found"
	// ReasonDecode means the file content could not be decoded.
	ReasonDecode Reason = "decode"
	// ReasonRead means the file exists but could not be read.
	ReasonRead Reason = "read"
	// ReasonInvalidRecord means some example records were skipped.
	ReasonInvalidRecord Reason = "invalid_record"
)

// Warning describes a non-fatal load failure.
type Warning struct {
	Resource Resource
	Path     string
	Reason   Reason
	Err      error
	// Skipped counts dropped records for ReasonInvalidRecord.
	Skipped int
}

// Message returns the human-readable warning text.
func (w Warning) Message() string {
	switch w.Reason {
	case ReasonNotFound:
		if w.Resource == ResourceDescriptions {
			return "Warning: Description file not found at " + w.Path
		}
		return "Warning: Examples file not found at " + w.Path
	case ReasonDecode:
		return fmt.Sprintf("Warning: Could not decode %s from %s", formatName(w.Path), w.Path)
	case ReasonInvalidRecord:
		return fmt.Sprintf("Warning: Skipped %d example record(s) without a type in %s", w.Skipped, w.Path)
	default:
		return fmt.Sprintf("Warning: Could not read %s file at %s: %v", w.Resource, w.Path, w.Err)
	}
}

// String implements fmt.Stringer.
func (w Warning) String() string {
	return w.Message()
}

// Loader reads catalog files.
type Loader struct {
	logger *bolt.Logger
}

// LoaderOption configures the loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger warnings are written to.
func WithLogger(logger *bolt.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a new catalog loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logging.Get()
	}
	return l
}

// Load reads both files and returns the resulting catalog together with any
// warnings. It never fails.
func (l *Loader) Load(descriptionsPath, examplesPath string) (*domaincatalog.Catalog, []Warning) {
	var warnings []Warning

	descriptions, w := l.LoadDescriptions(descriptionsPath)
	if w != nil {
		warnings = append(warnings, *w)
	}

	examples, w := l.LoadExamples(examplesPath)
	if w != nil {
		warnings = append(warnings, *w)
	}

	logging.NewEvent(l.logger.Debug()).
		Add(logging.Component("catalog")).
		Add(logging.Count("descriptions", len(descriptions))).
		Add(logging.Count("examples", len(examples))).
		Msg("catalog loaded")

	return domaincatalog.New(descriptions, examples), warnings
}

// LoadDescriptions reads a mapping of plot type to description text.
// On failure it returns an empty mapping and a warning.
func (l *Loader) LoadDescriptions(path string) (map[string]string, *Warning) {
	data, w := l.read(ResourceDescriptions, path)
	if w != nil {
		return map[string]string{}, w
	}

	descriptions := map[string]string{}
	if err := decode(path, data, &descriptions); err != nil {
		return map[string]string{}, l.warn(ResourceDescriptions, path, ReasonDecode, err)
	}
	if descriptions == nil {
		descriptions = map[string]string{}
	}
	return descriptions, nil
}

// LoadExamples reads the ordered list of example records.
// On failure it returns an empty list and a warning. Records without a type
// tag are skipped with a warning; the rest are kept in order.
func (l *Loader) LoadExamples(path string) ([]domaincatalog.Example, *Warning) {
	data, w := l.read(ResourceExamples, path)
	if w != nil {
		return []domaincatalog.Example{}, w
	}

	var decoded []domaincatalog.Example
	if err := decode(path, data, &decoded); err != nil {
		return []domaincatalog.Example{}, l.warn(ResourceExamples, path, ReasonDecode, err)
	}

	examples := make([]domaincatalog.Example, 0, len(decoded))
	var errs []error
	for i, ex := range decoded {
		if err := ex.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		examples = append(examples, ex)
	}
	if len(errs) > 0 {
		return examples, l.emit(&Warning{
			Resource: ResourceExamples,
			Path:     path,
			Reason:   ReasonInvalidRecord,
			Err:      errors.Join(errs...),
			Skipped:  len(errs),
		})
	}
	return examples, nil
}

func (l *Loader) read(resource Resource, path string) ([]byte, *Warning) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil, l.warn(resource, path, ReasonNotFound, err)
	}
	return nil, l.warn(resource, path, ReasonRead, err)
}

func (l *Loader) warn(resource Resource, path string, reason Reason, err error) *Warning {
	return l.emit(&Warning{Resource: resource, Path: path, Reason: reason, Err: err})
}

func (l *Loader) emit(w *Warning) *Warning {
	logging.NewEvent(l.logger.Warn()).
		Add(logging.Component("catalog")).
		Add(logging.Resource(string(w.Resource))).
		Add(logging.Path(w.Path)).
		Failure(string(w.Reason), w.Err).
		Msg(w.Message())

	return w
}

func decode(path string, data []byte, v any) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func formatName(path string) string {
	if isYAML(path) {
		return "YAML"
	}
	return "JSON"
}
