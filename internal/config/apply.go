package config

import (
	statepkg "github.com/kk-code-lab/fv/internal/state"
	renderui "github.com/kk-code-lab/fv/internal/ui/render"
)

// ReducerOptions maps the view section onto reducer options.
func (c *Config) ReducerOptions() statepkg.ReducerOptions {
	return statepkg.ReducerOptions{
		LineNumberMargin: c.View.LineNumberMargin,
		BigPageFactor:    c.View.BigPageFactor,
	}
}

// ProjectOptions maps the view section onto projector options.
func (c *Config) ProjectOptions() renderui.ProjectOptions {
	return renderui.ProjectOptions{LineNumberMargin: c.View.LineNumberMargin}
}

// CellScale returns the configured canvas scale.
func (c *Config) CellScale() renderui.CellScale {
	return renderui.CellScale{X: c.View.CellScaleX, Y: c.View.CellScaleY}
}

// ColorTheme returns the built-in theme with configured overrides applied.
func (c *Config) ColorTheme() (renderui.ColorTheme, error) {
	return renderui.GetColorTheme().WithOverrides(c.Theme.Overrides())
}
