package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete goldbach configuration
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	TUI      TUIConfig      `mapstructure:"tui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AnalysisConfig controls the decomposition engine
type AnalysisConfig struct {
	// Workers is the number of concurrent decompositions during range
	// analysis. 0 means one worker per logical CPU.
	Workers int `mapstructure:"workers"`
	// ScatterPolicy selects which pair members become scatter points
	// Options: "both" (default), "lower"
	ScatterPolicy string `mapstructure:"scatter_policy"`
	// WarnThreshold is the range width above which the TUI asks for
	// confirmation before analyzing (0 = never ask)
	WarnThreshold int `mapstructure:"warn_threshold"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: "default", "monokai", "dracula", "nord", or a custom theme
	Theme string `mapstructure:"theme"`
	// ChartHeight is the height of the histogram chart in rows
	ChartHeight int `mapstructure:"chart_height"`
	// ScatterHeight is the height of the scatter chart in rows
	ScatterHeight int `mapstructure:"scatter_height"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled controls whether a debug log is written at all
	Enabled bool `mapstructure:"enabled"`
	// Level is the minimum level to log: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Dir is the directory for debug.log; empty writes to stderr
	Dir string `mapstructure:"dir"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Workers:       0, // One worker per logical CPU
			ScatterPolicy: "both",
			WarnThreshold: 1000,
		},
		TUI: TUIConfig{
			Theme:         "default",
			ChartHeight:   12,
			ScatterHeight: 16,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("analysis.workers", defaults.Analysis.Workers)
	viper.SetDefault("analysis.scatter_policy", defaults.Analysis.ScatterPolicy)
	viper.SetDefault("analysis.warn_threshold", defaults.Analysis.WarnThreshold)

	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.chart_height", defaults.TUI.ChartHeight)
	viper.SetDefault("tui.scatter_height", defaults.TUI.ScatterHeight)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "goldbach")
	}
	// Fall back to ~/.config/goldbach
	home, err := os.UserHomeDir()
	if err != nil {
		return ".goldbach"
	}
	return filepath.Join(home, ".config", "goldbach")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidScatterPolicies returns the list of valid scatter policy values
func ValidScatterPolicies() []string {
	return []string{"both", "lower"}
}

// IsValidScatterPolicy checks if the given policy is valid
func IsValidScatterPolicy(policy string) bool {
	for _, valid := range ValidScatterPolicies() {
		if policy == valid {
			return true
		}
	}
	return false
}
