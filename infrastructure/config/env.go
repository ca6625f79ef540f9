package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	domainconfig "github.com/felixgeelhaar/plotmcp/domain/config"
)

var (
	// ${VAR}, ${VAR:-default}, ${VAR:?message}
	bracketPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*|:\?[^}]*)?\}`)
	// $VAR
	simplePattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// envExpander expands environment variables in configuration text.
type envExpander struct {
	strict  bool
	missing []string
}

func newEnvExpander(strict bool) *envExpander {
	return &envExpander{strict: strict}
}

// Expand expands environment variables in the input string.
// Supported patterns:
//   - ${VAR} - expands to the value of VAR
//   - ${VAR:-default} - expands to VAR or "default" if not set
//   - ${VAR:?error message} - fails if VAR is not set
//   - $VAR - simple expansion
func (e *envExpander) Expand(input string) (string, error) {
	e.missing = nil

	result := bracketPattern.ReplaceAllStringFunc(input, e.expandBracket)
	result = simplePattern.ReplaceAllStringFunc(result, func(match string) string {
		return e.lookup(match[1:])
	})

	if len(e.missing) > 0 {
		return "", fmt.Errorf("%w: %s", domainconfig.ErrMissingEnvVar, strings.Join(e.missing, ", "))
	}
	return result, nil
}

func (e *envExpander) expandBracket(match string) string {
	name, modifier, _ := strings.Cut(match[2:len(match)-1], ":")
	value, exists := os.LookupEnv(name)

	switch {
	case strings.HasPrefix(modifier, "-"):
		if !exists || value == "" {
			return modifier[1:]
		}
		return value
	case strings.HasPrefix(modifier, "?"):
		if !exists || value == "" {
			e.missing = append(e.missing, fmt.Sprintf("%s: %s", name, modifier[1:]))
			return match
		}
		return value
	}
	return e.lookup(name)
}

func (e *envExpander) lookup(name string) string {
	value, exists := os.LookupEnv(name)
	if !exists && e.strict {
		e.missing = append(e.missing, name)
	}
	return value
}

// ExpandEnv expands environment variables, leaving unset ones empty.
func ExpandEnv(input string) string {
	result, _ := newEnvExpander(false).Expand(input)
	return result
}

// ExpandEnvStrict expands environment variables and returns an error for missing vars.
func ExpandEnvStrict(input string) (string, error) {
	return newEnvExpander(true).Expand(input)
}
