package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "analysis.workers")
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

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAnalysis()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateAnalysis() []ValidationError {
	var errors []ValidationError

	if c.Analysis.Workers < 0 {
		errors = append(errors, ValidationError{
			Field:   "analysis.workers",
			Value:   c.Analysis.Workers,
			Message: "must be 0 (auto) or a positive worker count",
		})
	}
	if !IsValidScatterPolicy(c.Analysis.ScatterPolicy) {
		errors = append(errors, ValidationError{
			Field:   "analysis.scatter_policy",
			Value:   c.Analysis.ScatterPolicy,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidScatterPolicies(), ", ")),
		})
	}
	if c.Analysis.WarnThreshold < 0 {
		errors = append(errors, ValidationError{
			Field:   "analysis.warn_threshold",
			Value:   c.Analysis.WarnThreshold,
			Message: "must be 0 (disabled) or a positive range width",
		})
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme == "" {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: "must not be empty",
		})
	}
	if c.TUI.ChartHeight < 4 {
		errors = append(errors, ValidationError{
			Field:   "tui.chart_height",
			Value:   c.TUI.ChartHeight,
			Message: "must be at least 4 rows",
		})
	}
	if c.TUI.ScatterHeight < 4 {
		errors = append(errors, ValidationError{
			Field:   "tui.scatter_height",
			Value:   c.TUI.ScatterHeight,
			Message: "must be at least 4 rows",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
