package config

import (
	"errors"
	"strings"
	"testing"

	domainconfig "github.com/felixgeelhaar/plotmcp/domain/config"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_VAR", "hello")
	t.Setenv("EMPTY_VAR", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bracket syntax", "${TEST_VAR}", "hello"},
		{"dollar syntax", "$TEST_VAR", "hello"},
		{"embedded in text", "prefix-${TEST_VAR}-suffix", "prefix-hello-suffix"},
		{"multiple variables", "${TEST_VAR} ${TEST_VAR}", "hello hello"},
		{"default used", "${PLOTMCP_UNSET_VAR:-fallback}", "fallback"},
		{"default for empty", "${EMPTY_VAR:-fallback}", "fallback"},
		{"default ignored", "${TEST_VAR:-fallback}", "hello"},
		{"unset is empty", "[${PLOTMCP_UNSET_VAR}]", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandEnv(tt.input)
			if got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandEnvStrict(t *testing.T) {
	t.Setenv("TEST_VAR", "hello")

	if _, err := ExpandEnvStrict("${TEST_VAR}"); err != nil {
		t.Errorf("ExpandEnvStrict() error = %v", err)
	}

	_, err := ExpandEnvStrict("${PLOTMCP_UNSET_VAR}")
	if !errors.Is(err, domainconfig.ErrMissingEnvVar) {
		t.Errorf("error = %v, want ErrMissingEnvVar", err)
	}
}

func TestExpandEnv_Required(t *testing.T) {
	_, err := newEnvExpander(false).Expand("${PLOTMCP_UNSET_VAR:?catalog path required}")
	if !errors.Is(err, domainconfig.ErrMissingEnvVar) {
		t.Fatalf("error = %v, want ErrMissingEnvVar", err)
	}
	if !strings.Contains(err.Error(), "catalog path required") {
		t.Errorf("error %q should carry the message", err)
	}
}
