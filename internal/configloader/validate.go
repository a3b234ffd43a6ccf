package configloader

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/lint"
)

// ErrInvalidConfig marks every configuration loading or validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "rules.DL013.enabled").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown rules).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Err joins every validation error under ErrInvalidConfig, or returns nil.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for i := range r.Errors {
		errs = append(errs, &r.Errors[i])
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a configuration against the rules in registry.
// A nil registry uses lint.DefaultRegistry.
func Validate(cfg *config.Config, registry *lint.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}
	if registry == nil {
		registry = lint.DefaultRegistry
	}

	switch {
	case cfg.Anchor == "":
		result.errorf("anchor", cfg.Anchor, "anchor must not be empty")
	case strings.ContainsAny(cfg.Anchor, " \t"):
		result.errorf("anchor", cfg.Anchor, "anchor %q must not contain whitespace", cfg.Anchor)
	case strings.HasPrefix(cfg.Anchor, "|"):
		result.errorf("anchor", cfg.Anchor, "anchor %q must not start with the table delimiter", cfg.Anchor)
	}

	if cfg.MinEntries < 0 {
		result.errorf("min_entries", cfg.MinEntries, "min_entries must be >= 0")
	}

	validateValues(result, "auth_values", cfg.AuthValues)
	validateValues(result, "https_values", cfg.HTTPSValues)
	validateValues(result, "cors_values", cfg.CORSValues)

	for i, p := range cfg.Punctuation {
		if utf8.RuneCountInString(p) != 1 {
			result.errorf(fmt.Sprintf("punctuation[%d]", i), p, "punctuation entries must be a single character, got %q", p)
		}
	}

	if cfg.LinkPrefix == "" {
		result.errorf("link_prefix", cfg.LinkPrefix, "link_prefix must not be empty")
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.errorf("format", cfg.Format, "invalid format %q; must be one of: text, json, table, summary", cfg.Format)
	}

	for _, key := range sortedKeys(cfg.Rules) {
		if _, ok := registry.Get(key); !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "rules." + key,
				Value:   key,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", key),
			})
		}
	}

	for _, key := range cfg.DisableRules {
		if _, ok := registry.Get(key); !ok {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "disable",
				Value:   key,
				Message: fmt.Sprintf("unknown rule %q; it will be ignored", key),
			})
		}
	}

	return result
}

func validateValues(result *ValidationResult, field string, values []string) {
	if len(values) == 0 {
		result.errorf(field, values, "%s must list at least one value", field)
		return
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			result.errorf(fmt.Sprintf("%s[%d]", field, i), v, "values must not be blank")
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
