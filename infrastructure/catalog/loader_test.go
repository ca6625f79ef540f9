package catalog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domaincatalog "github.com/felixgeelhaar/plotmcp/domain/catalog"
	"github.com/felixgeelhaar/plotmcp/infrastructure/logging"
)

const (
	sampleDescriptions = `{"bar": "A bar chart.", "scatter": "A scatter plot."}`
	sampleExamples     = `[
		{"type": "bar", "data": {"columns": ["X", "Y"], "data": [["A", 1]]}, "layout": {}},
		{"type": "scatter", "data": {"columns": ["X", "Y"], "data": [[1, 2]]}, "layout": {}}
	]`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func testLoader() (*Loader, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logging.New(logging.Config{Level: "debug", Format: "json", Output: buf})
	return NewLoader(WithLogger(logger)), buf
}

func TestLoader_Load_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	descPath := writeFile(t, dir, "plot_desc.json", sampleDescriptions)
	exPath := writeFile(t, dir, "plot_examples.json", sampleExamples)

	loader, _ := testLoader()
	cat, warnings := loader.Load(descPath, exPath)

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if cat.DescriptionCount() != 2 {
		t.Errorf("DescriptionCount() = %d, want 2", cat.DescriptionCount())
	}
	if cat.ExampleCount() != 2 {
		t.Errorf("ExampleCount() = %d, want 2", cat.ExampleCount())
	}
	if got := cat.Description("bar"); got != "A bar chart." {
		t.Errorf("Description(bar) = %q", got)
	}
	ex, err := cat.Example("scatter")
	if err != nil {
		t.Fatalf("Example(scatter) error = %v", err)
	}
	if ex.Type() != "scatter" {
		t.Errorf("Example(scatter).Type() = %q", ex.Type())
	}
}

func TestLoader_Load_FilesNotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	descPath := filepath.Join(dir, "non_existent_desc.json")
	exPath := filepath.Join(dir, "non_existent_examples.json")

	loader, buf := testLoader()
	cat, warnings := loader.Load(descPath, exPath)

	if cat.DescriptionCount() != 0 || cat.ExampleCount() != 0 {
		t.Error("missing files should produce an empty catalog")
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}

	want := []string{
		"Warning: Description file not found at " + descPath,
		"Warning: Examples file not found at " + exPath,
	}
	for i, w := range warnings {
		if w.Reason != ReasonNotFound {
			t.Errorf("warning %d reason = %s, want not_found", i, w.Reason)
		}
		if w.Message() != want[i] {
			t.Errorf("warning %d = %q, want %q", i, w.Message(), want[i])
		}
		if !strings.Contains(buf.String(), w.Path) {
			t.Errorf("log output does not name %s: %s", w.Path, buf.String())
		}
	}
}

func TestLoader_Load_MalformedDescriptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	descPath := writeFile(t, dir, "bad_desc.json", "invalid json")
	exPath := writeFile(t, dir, "good_examples.json", sampleExamples)

	loader, _ := testLoader()
	cat, warnings := loader.Load(descPath, exPath)

	if cat.DescriptionCount() != 0 {
		t.Errorf("DescriptionCount() = %d, want 0", cat.DescriptionCount())
	}
	if cat.ExampleCount() != 2 {
		t.Errorf("examples should still load, got %d", cat.ExampleCount())
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if got := warnings[0].Message(); got != "Warning: Could not decode JSON from "+descPath {
		t.Errorf("warning = %q", got)
	}
	if warnings[0].Resource != ResourceDescriptions {
		t.Errorf("Resource = %s, want descriptions", warnings[0].Resource)
	}
}

func TestLoader_Load_MalformedExamples(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	descPath := writeFile(t, dir, "good_desc.json", sampleDescriptions)
	exPath := writeFile(t, dir, "bad_examples.json", "invalid json")

	loader, _ := testLoader()
	cat, warnings := loader.Load(descPath, exPath)

	if cat.DescriptionCount() != 2 {
		t.Errorf("descriptions should still load, got %d", cat.DescriptionCount())
	}
	if cat.ExampleCount() != 0 {
		t.Errorf("ExampleCount() = %d, want 0", cat.ExampleCount())
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if got := warnings[0].Message(); got != "Warning: Could not decode JSON from "+exPath {
		t.Errorf("warning = %q", got)
	}
}

func TestLoader_LoadDescriptions_WrongShape(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	loader, _ := testLoader()

	tests := map[string]string{
		"array.json":      `["bar"]`,
		"non_string.json": `{"bar": 1}`,
		"trailing.json":   `{"bar": "x"`,
	}
	for name, content := range tests {
		path := writeFile(t, dir, name, content)
		desc, w := loader.LoadDescriptions(path)
		if w == nil {
			t.Errorf("%s: expected a warning", name)
			continue
		}
		if w.Reason != ReasonDecode {
			t.Errorf("%s: reason = %s, want decode", name, w.Reason)
		}
		if desc == nil || len(desc) != 0 {
			t.Errorf("%s: descriptions = %v, want empty map", name, desc)
		}
	}
}

func TestLoader_LoadExamples_MissingType(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "examples.json", `[{"type": "bar"}, {"layout": {}}, {"type": 3}, {"type": "line"}]`)

	loader, _ := testLoader()
	examples, w := loader.LoadExamples(path)
	if w == nil {
		t.Fatal("expected a warning")
	}
	if w.Reason != ReasonInvalidRecord || w.Skipped != 2 {
		t.Errorf("warning = %+v, want invalid_record with 2 skipped", w)
	}
	if !errors.Is(w.Err, domaincatalog.ErrMissingType) {
		t.Errorf("Err = %v, want ErrMissingType", w.Err)
	}
	if want := "Warning: Skipped 2 example record(s) without a type in " + path; w.Message() != want {
		t.Errorf("Message() = %q, want %q", w.Message(), want)
	}
	if len(examples) != 2 || examples[0].Type() != "bar" || examples[1].Type() != "line" {
		t.Errorf("examples = %v, want the bar and line records in order", examples)
	}
}

func TestLoader_LoadYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	descPath := writeFile(t, dir, "plot_desc.yaml", "bar: A bar chart.\nline: A line chart.\n")
	exPath := writeFile(t, dir, "plot_examples.yml", "- type: line\n  layout: {}\n")

	loader, _ := testLoader()
	cat, warnings := loader.Load(descPath, exPath)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if got := cat.Description("line"); got != "A line chart." {
		t.Errorf("Description(line) = %q", got)
	}
	if _, err := cat.Example("line"); err != nil {
		t.Errorf("Example(line) error = %v", err)
	}

	badPath := writeFile(t, dir, "bad.yaml", "bar: [unclosed\n")
	_, w := loader.LoadDescriptions(badPath)
	if w == nil || w.Message() != "Warning: Could not decode YAML from "+badPath {
		t.Errorf("warning = %v", w)
	}
}

func TestLoader_ReadDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	loader, _ := testLoader()

	_, w := loader.LoadDescriptions(dir)
	if w == nil {
		t.Fatal("expected a warning when reading a directory")
	}
	if w.Reason != ReasonRead {
		t.Errorf("Reason = %s, want read", w.Reason)
	}
	if !strings.Contains(w.Message(), dir) {
		t.Errorf("message %q does not name the path", w.Message())
	}
}
