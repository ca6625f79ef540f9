package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	domainconfig "github.com/felixgeelhaar/plotmcp/domain/config"
)

func TestLoader_LoadFile_YAML(t *testing.T) {
	content := `
catalog:
  descriptions: data/desc.json
  examples: data/examples.json
logging:
  level: debug
  format: json
server:
  transport: http
  addr: ":9090"
render:
  format: svg
  width: 1024
telemetry:
  tracing:
    enabled: true
    exporter: stdout
    batch_timeout: 2s
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "plotmcp.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Catalog.Descriptions != "data/desc.json" {
		t.Errorf("Catalog.Descriptions = %s", cfg.Catalog.Descriptions)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.Server.Transport != "http" || cfg.Server.Addr != ":9090" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Render.Format != "svg" || cfg.Render.Width != 1024 || cfg.Render.Height != 600 {
		t.Errorf("Render = %+v", cfg.Render)
	}
	if cfg.Telemetry.Tracing.BatchTimeout != 2*time.Second {
		t.Errorf("BatchTimeout = %v, want 2s", cfg.Telemetry.Tracing.BatchTimeout)
	}
	if cfg.Server.Name != "plotmcp" {
		t.Errorf("Server.Name = %s, want default plotmcp", cfg.Server.Name)
	}
}

func TestLoader_LoadFile_JSON(t *testing.T) {
	content := `{"catalog": {"descriptions": "d.json"}, "render": {"format": "png"}}`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "plotmcp.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Catalog.Descriptions != "d.json" {
		t.Errorf("Catalog.Descriptions = %s", cfg.Catalog.Descriptions)
	}
	if cfg.Catalog.Examples != domainconfig.DefaultExamplesPath {
		t.Errorf("Catalog.Examples = %s, want default", cfg.Catalog.Examples)
	}
	if cfg.Render.Format != "png" {
		t.Errorf("Render.Format = %s", cfg.Render.Format)
	}
}

func TestLoader_LoadFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("not found", func(t *testing.T) {
		_, err := NewLoader().LoadFile(filepath.Join(tmpDir, "missing.yaml"))
		if !errors.Is(err, domainconfig.ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := NewLoader().LoadFile(tmpDir)
		if !errors.Is(err, domainconfig.ErrInvalidFormat) {
			t.Errorf("error = %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(tmpDir, "config.toml")
		if err := os.WriteFile(path, []byte("x = 1"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := NewLoader().LoadFile(path)
		if !errors.Is(err, domainconfig.ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := NewLoader().LoadString("{not json", FormatJSON)
		if !errors.Is(err, domainconfig.ErrInvalidFormat) {
			t.Errorf("error = %v, want ErrInvalidFormat", err)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewLoader().LoadString("server:\n  transport: carrier-pigeon\n", FormatYAML)
		if !errors.Is(err, domainconfig.ErrValidationFailed) {
			t.Errorf("error = %v, want ErrValidationFailed", err)
		}
	})

	t.Run("validation disabled", func(t *testing.T) {
		loader := NewLoaderWithOptions(WithValidation(false))
		cfg, err := loader.LoadString("server:\n  transport: carrier-pigeon\n", FormatYAML)
		if err != nil {
			t.Fatalf("error = %v", err)
		}
		if cfg.Server.Transport != "carrier-pigeon" {
			t.Errorf("Server.Transport = %s", cfg.Server.Transport)
		}
	})
}

func TestLoader_EnvExpansion(t *testing.T) {
	t.Setenv("PLOTMCP_DESC", "/etc/plotmcp/desc.json")

	cfg, err := NewLoader().LoadString("catalog:\n  descriptions: ${PLOTMCP_DESC}\n  examples: ${PLOTMCP_EXAMPLES:-ex.json}\n", FormatYAML)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Catalog.Descriptions != "/etc/plotmcp/desc.json" {
		t.Errorf("Catalog.Descriptions = %s", cfg.Catalog.Descriptions)
	}
	if cfg.Catalog.Examples != "ex.json" {
		t.Errorf("Catalog.Examples = %s", cfg.Catalog.Examples)
	}

	noExpand := NewLoaderWithOptions(WithEnvExpansion(false), WithValidation(false))
	cfg, err = noExpand.LoadString(`{"catalog": {"descriptions": "${PLOTMCP_DESC}"}}`, FormatJSON)
	if err != nil {
		t.Fatalf("LoadString() error = %v", err)
	}
	if cfg.Catalog.Descriptions != "${PLOTMCP_DESC}" {
		t.Errorf("Catalog.Descriptions = %s, want unexpanded", cfg.Catalog.Descriptions)
	}
}

func TestLoader_LoadOrDefault(t *testing.T) {
	cfg, err := NewLoader().LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Catalog.Descriptions != domainconfig.DefaultDescriptionsPath {
		t.Errorf("Catalog.Descriptions = %s", cfg.Catalog.Descriptions)
	}
}
