package config

import (
	"fmt"
	"slices"
	"strings"

	renderui "github.com/kk-code-lab/fv/internal/ui/render"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "view.tab_width")
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
	errors = append(errors, c.validateView()...)
	errors = append(errors, c.validateTheme()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateView() []ValidationError {
	var errors []ValidationError

	const maxTabWidth = 16
	if c.View.TabWidth < 1 || c.View.TabWidth > maxTabWidth {
		errors = append(errors, ValidationError{
			Field:   "view.tab_width",
			Value:   c.View.TabWidth,
			Message: fmt.Sprintf("must be between 1 and %d", maxTabWidth),
		})
	}

	const maxMargin = 20
	if c.View.LineNumberMargin < 1 || c.View.LineNumberMargin > maxMargin {
		errors = append(errors, ValidationError{
			Field:   "view.line_number_margin",
			Value:   c.View.LineNumberMargin,
			Message: fmt.Sprintf("must be between 1 and %d", maxMargin),
		})
	}

	if c.View.BigPageFactor < 1 {
		errors = append(errors, ValidationError{
			Field:   "view.big_page_factor",
			Value:   c.View.BigPageFactor,
			Message: "must be positive",
		})
	}

	if c.View.CellScaleX < 1 {
		errors = append(errors, ValidationError{
			Field:   "view.cell_scale_x",
			Value:   c.View.CellScaleX,
			Message: "must be positive",
		})
	}
	if c.View.CellScaleY < 1 {
		errors = append(errors, ValidationError{
			Field:   "view.cell_scale_y",
			Value:   c.View.CellScaleY,
			Message: "must be positive",
		})
	}

	return errors
}

func (c *Config) validateTheme() []ValidationError {
	var errors []ValidationError
	fields := []struct {
		key   string
		value string
	}{
		{"theme.foreground", c.Theme.Foreground},
		{"theme.background", c.Theme.Background},
		{"theme.line_number", c.Theme.LineNumber},
		{"theme.line_number_matched", c.Theme.LineNumberMatched},
		{"theme.highlight", c.Theme.Highlight},
		{"theme.status_position", c.Theme.StatusPosition},
		{"theme.status_prompt", c.Theme.StatusPrompt},
		{"theme.status_info", c.Theme.StatusInfo},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		if _, err := renderui.ParseColor(f.value); err != nil {
			errors = append(errors, ValidationError{
				Field:   f.key,
				Value:   f.value,
				Message: "must be a color name, colorNNN or #rrggbb",
			})
		}
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
