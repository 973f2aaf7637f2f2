package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "storage.backend")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// maxDeleteDelayMs caps how long a deleted row may linger.
const maxDeleteDelayMs = 10000

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidBackends returns the storage backends selectable from config.
// "memory" exists for tests only and is deliberately not listed.
func ValidBackends() []string {
	return []string{"file", "sqlite"}
}

// ValidFilters returns the accepted tui.default_filter values
func ValidFilters() []string {
	return []string{"all", "pending", "done"}
}

// ValidLocales returns the accepted display.locale values
func ValidLocales() []string {
	return []string{"en", "id"}
}

// ValidThemes returns the built-in theme names
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateStorage()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateDisplay()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateStorage() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidBackends(), c.Storage.Backend) {
		errors = append(errors, ValidationError{
			Field:   "storage.backend",
			Value:   c.Storage.Backend,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidBackends(), ", ")),
		})
	}

	if strings.ContainsRune(c.Storage.Path, '\x00') {
		errors = append(errors, ValidationError{
			Field:   "storage.path",
			Value:   c.Storage.Path,
			Message: "contains invalid null character",
		})
	}

	key := strings.TrimSpace(c.Storage.Key)
	if key == "" {
		errors = append(errors, ValidationError{
			Field:   "storage.key",
			Value:   c.Storage.Key,
			Message: "must not be empty",
		})
	} else if strings.Contains(key, "..") || strings.ContainsAny(key, "\\\x00") {
		errors = append(errors, ValidationError{
			Field:   "storage.key",
			Value:   c.Storage.Key,
			Message: "must not contain '..', backslashes or null characters",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	// A theme file takes precedence, so the name is only checked without one.
	if c.TUI.ThemeFile == "" && c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.TUI.DeleteDelayMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.delete_delay_ms",
			Value:   c.TUI.DeleteDelayMs,
			Message: "must be non-negative",
		})
	}
	if c.TUI.DeleteDelayMs > maxDeleteDelayMs {
		errors = append(errors, ValidationError{
			Field:   "tui.delete_delay_ms",
			Value:   c.TUI.DeleteDelayMs,
			Message: fmt.Sprintf("exceeds maximum of %d", maxDeleteDelayMs),
		})
	}

	if c.TUI.DefaultFilter != "" && !slices.Contains(ValidFilters(), c.TUI.DefaultFilter) {
		errors = append(errors, ValidationError{
			Field:   "tui.default_filter",
			Value:   c.TUI.DefaultFilter,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidFilters(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateDisplay() []ValidationError {
	var errors []ValidationError

	if c.Display.Locale != "" && !slices.Contains(ValidLocales(), c.Display.Locale) {
		errors = append(errors, ValidationError{
			Field:   "display.locale",
			Value:   c.Display.Locale,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLocales(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
