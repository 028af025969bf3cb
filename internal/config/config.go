// Package config loads fv settings from the config file, FV_ environment
// variables and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FV_VIEW_TAB_WIDTH.
const EnvPrefix = "FV"

// Config represents the complete fv configuration
type Config struct {
	View    ViewConfig    `mapstructure:"view" yaml:"view"`
	Theme   ThemeConfig   `mapstructure:"theme" yaml:"theme"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ViewConfig controls layout and navigation
type ViewConfig struct {
	// TabWidth is the tab stop distance used when lines are loaded
	TabWidth int `mapstructure:"tab_width" yaml:"tab_width"`
	// LineNumberMargin is the width of the line-number column in cells
	LineNumberMargin int `mapstructure:"line_number_margin" yaml:"line_number_margin"`
	ShowLineNumbers  bool `mapstructure:"show_line_numbers" yaml:"show_line_numbers"`
	// BigPageFactor is how many pages Ctrl+PgUp/Ctrl+PgDn move
	BigPageFactor int `mapstructure:"big_page_factor" yaml:"big_page_factor"`
	// CellScaleX and CellScaleY are the canvas pixels per character cell
	CellScaleX int `mapstructure:"cell_scale_x" yaml:"cell_scale_x"`
	CellScaleY int `mapstructure:"cell_scale_y" yaml:"cell_scale_y"`
}

// ThemeConfig overrides colors. Values are tcell color names, colorNNN
// palette entries or #rrggbb; empty keeps the built-in color.
type ThemeConfig struct {
	Foreground        string `mapstructure:"foreground" yaml:"foreground"`
	Background        string `mapstructure:"background" yaml:"background"`
	LineNumber        string `mapstructure:"line_number" yaml:"line_number"`
	LineNumberMatched string `mapstructure:"line_number_matched" yaml:"line_number_matched"`
	Highlight         string `mapstructure:"highlight" yaml:"highlight"`
	StatusPosition    string `mapstructure:"status_position" yaml:"status_position"`
	StatusPrompt      string `mapstructure:"status_prompt" yaml:"status_prompt"`
	StatusInfo        string `mapstructure:"status_info" yaml:"status_info"`
}

// Overrides returns the non-empty colors keyed by role name.
func (t ThemeConfig) Overrides() map[string]string {
	all := map[string]string{
		"foreground":          t.Foreground,
		"background":          t.Background,
		"line-number":         t.LineNumber,
		"line-number-matched": t.LineNumberMatched,
		"highlight":           t.Highlight,
		"status-position":     t.StatusPosition,
		"status-prompt":       t.StatusPrompt,
		"status-info":         t.StatusInfo,
	}
	out := make(map[string]string, len(all))
	for k, v := range all {
		if strings.TrimSpace(v) != "" {
			out[k] = v
		}
	}
	return out
}

// LoggingConfig controls diagnostics
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level" yaml:"level"`
	// File receives log records while the viewer owns the terminal. Empty
	// discards them.
	File string `mapstructure:"file" yaml:"file"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		View: ViewConfig{
			TabWidth:         4,
			LineNumberMargin: 8,
			ShowLineNumbers:  true,
			BigPageFactor:    10,
			CellScaleX:       2,
			CellScaleY:       4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("view.tab_width", defaults.View.TabWidth)
	v.SetDefault("view.line_number_margin", defaults.View.LineNumberMargin)
	v.SetDefault("view.show_line_numbers", defaults.View.ShowLineNumbers)
	v.SetDefault("view.big_page_factor", defaults.View.BigPageFactor)
	v.SetDefault("view.cell_scale_x", defaults.View.CellScaleX)
	v.SetDefault("view.cell_scale_y", defaults.View.CellScaleY)

	// Theme keys default to empty so they are known to Unmarshal and env
	// lookups.
	for _, key := range []string{
		"foreground", "background", "line_number", "line_number_matched",
		"highlight", "status_position", "status_prompt", "status_info",
	} {
		v.SetDefault("theme."+key, "")
	}

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
}

// NewViper prepares a viper instance with defaults, environment overrides and
// the config file. An explicit configFile must exist; the default location
// is optional.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	v.SetEnvPrefix(EnvPrefix)
	// e.g., FV_VIEW_TAB_WIDTH for view.tab_width
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fv"
	}
	return filepath.Join(home, ".config", "fv")
}

// ConfigFile returns the path to the default config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
