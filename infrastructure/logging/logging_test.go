package logging

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// testLogger creates a logger that writes to a buffer for testing
func testLogger() (*bolt.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: "trace", Format: "json", Output: buf})
	return logger, buf
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := DefaultConfig()

	if config.Level != "info" {
		t.Errorf("Level = %s, want info", config.Level)
	}
	if config.Format != "console" {
		t.Errorf("Format = %s, want console", config.Format)
	}
	if config.Output != os.Stderr {
		t.Errorf("Output = %v, want os.Stderr", config.Output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bolt.Level
		wantErr  bool
	}{
		{"trace", bolt.TRACE, false},
		{"debug", bolt.DEBUG, false},
		{"info", bolt.INFO, false},
		{"warn", bolt.WARN, false},
		{"error", bolt.ERROR, false},
		{" debug ", bolt.DEBUG, false},
		{"", bolt.INFO, false},
		{"loud", bolt.INFO, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			result, err := ParseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			if tt.wantErr != errors.Is(err, ErrUnknownLevel) {
				t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestNew_UnknownLevelLogsAtInfo(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := New(Config{Level: "loud", Format: "json", Output: buf})

	logger.Debug().Msg("dropped")
	logger.Info().Msg("kept")
	if bytes.Contains(buf.Bytes(), []byte("dropped")) || !bytes.Contains(buf.Bytes(), []byte("kept")) {
		t.Errorf("unexpected output at default level: %s", buf.String())
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := New(Config{Level: "error", Format: "json", Output: buf})

	logger.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Errorf("info event should be filtered at error level: %s", buf.String())
	}

	logger.Error().Msg("kept")
	if !bytes.Contains(buf.Bytes(), []byte("kept")) {
		t.Errorf("error event missing from output: %s", buf.String())
	}
}

func TestLogEvent_Chaining(t *testing.T) {
	t.Parallel()

	logger, buf := testLogger()
	NewEvent(logger.Warn()).
		Add(Resource("descriptions")).
		Add(Path("plot_desc.json")).
		Add(Reason("not_found")).
		Msg("resource unavailable")

	for _, want := range []string{
		`"resource":"descriptions"`,
		`"path":"plot_desc.json"`,
		`"reason":"not_found"`,
		"resource unavailable",
	} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("expected %s in output: %s", want, buf.String())
		}
	}
}

func TestLogEvent_FieldsAndFailure(t *testing.T) {
	t.Parallel()

	logger, buf := testLogger()
	NewEvent(logger.Error()).
		Fields(Component("advisor"), PlotType("pie")).
		Failure("unsupported_type", errors.New("unsupported plot type: pie")).
		Msg("visualize failed")

	for _, want := range []string{
		`"component":"advisor"`,
		`"plot_type":"pie"`,
		`"reason":"unsupported_type"`,
		`"error":"unsupported plot type: pie"`,
	} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("expected %s in output: %s", want, buf.String())
		}
	}
}

func TestFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"plot type", PlotType("bar"), `"plot_type":"bar"`},
		{"figure id", FigureID("fig-1"), `"figure_id":"fig-1"`},
		{"rows", Shape(3, 2), `"rows":3`},
		{"columns", Shape(3, 2), `"columns":2`},
		{"count", Count("examples", 4), `"examples":4`},
		{"recommended", Recommended(true), `"recommended":true`},
		{"duration", Duration(100 * time.Millisecond), `"duration_ms":100`},
		{"component", Component("advisor"), `"component":"advisor"`},
		{"operation", Operation("visualize"), `"operation":"visualize"`},
		{"str", Str("key", "value"), `"key":"value"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger, buf := testLogger()
			tt.field(logger.Info()).Msg("test")

			if !bytes.Contains(buf.Bytes(), []byte(tt.want)) {
				t.Errorf("expected %s in output: %s", tt.want, buf.String())
			}
		})
	}
}

func TestErrorField(t *testing.T) {
	t.Parallel()

	t.Run("with error", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		ErrorField(errors.New("test error"))(logger.Info()).Msg("test")

		if !bytes.Contains(buf.Bytes(), []byte(`"error":"test error"`)) {
			t.Errorf("expected error field in output: %s", buf.String())
		}
	})

	t.Run("with nil error", func(t *testing.T) {
		t.Parallel()

		logger, buf := testLogger()
		ErrorField(nil)(logger.Info()).Msg("test")

		if bytes.Contains(buf.Bytes(), []byte(`"error"`)) {
			t.Errorf("unexpected error field in output: %s", buf.String())
		}
	})
}

func TestGet(t *testing.T) {
	if Get() == nil {
		t.Fatal("Get() returned nil")
	}
}
