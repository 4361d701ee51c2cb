package cmd

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/686f6c6/goldbach/internal/config"
	"github.com/686f6c6/goldbach/internal/tui/styles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify goldbach configuration",
	Long: `View or modify goldbach configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  goldbach config set analysis.workers 4
  goldbach config set tui.theme dracula

Valid keys:
  analysis.workers         - Concurrent decompositions (0 = auto)
  analysis.scatter_policy  - Scatter point policy: both, lower
  analysis.warn_threshold  - Range width that triggers a confirmation
  tui.theme                - Color theme
  tui.chart_height         - Histogram height in rows
  tui.scatter_height       - Scatter chart height in rows
  logging.enabled          - Write a debug log (true/false)
  logging.level            - Log level: debug, info, warn, error
  logging.dir              - Log directory (empty = stderr)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/goldbach/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "analysis:")
	fmt.Fprintf(out, "  workers: %d\n", cfg.Analysis.Workers)
	fmt.Fprintf(out, "  scatter_policy: %s\n", cfg.Analysis.ScatterPolicy)
	fmt.Fprintf(out, "  warn_threshold: %d\n", cfg.Analysis.WarnThreshold)

	fmt.Fprintln(out, "tui:")
	fmt.Fprintf(out, "  theme: %s\n", cfg.TUI.Theme)
	fmt.Fprintf(out, "  chart_height: %d\n", cfg.TUI.ChartHeight)
	fmt.Fprintf(out, "  scatter_height: %d\n", cfg.TUI.ScatterHeight)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.Dir)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	// Validate the key exists
	validKeys := map[string]string{
		"analysis.workers":        "int",
		"analysis.scatter_policy": "string",
		"analysis.warn_threshold": "int",
		"tui.theme":               "string",
		"tui.chart_height":        "int",
		"tui.scatter_height":      "int",
		"logging.enabled":         "bool",
		"logging.level":           "string",
		"logging.dir":             "path",
	}

	keyType, ok := validKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'goldbach config set --help' to see valid keys", key)
	}

	// Validate the value based on type
	var typedValue interface{}
	switch keyType {
	case "string":
		switch key {
		case "analysis.scatter_policy":
			if !config.IsValidScatterPolicy(value) {
				return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(config.ValidScatterPolicies(), ", "))
			}
		case "tui.theme":
			if !styles.IsValidTheme(value) {
				return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(styles.ValidThemes(), ", "))
			}
		case "logging.level":
			if !slices.Contains(config.ValidLogLevels(), strings.ToLower(value)) {
				return fmt.Errorf("invalid value for %s: %s\nValid options: %s",
					key, value, strings.Join(config.ValidLogLevels(), ", "))
			}
		}
		typedValue = value
	case "bool":
		if value != "true" && value != "false" {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		typedValue = value == "true"
	case "int":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		if intVal < 0 {
			return fmt.Errorf("invalid value for %s: must be non-negative", key)
		}
		typedValue = intVal
	case "path":
		typedValue = value
	}

	// Ensure config directory exists
	configDir := config.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := config.ConfigDir()
	configFile := config.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'goldbach config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configContent := `# goldbach configuration

analysis:
  # Concurrent decompositions during range analysis (0 = one per CPU)
  workers: 0
  # Which members of each pair become scatter points: both, lower
  scatter_policy: both
  # Range width above which the TUI asks for confirmation (0 = never)
  warn_threshold: 1000

tui:
  # Color theme: default, monokai, dracula, nord, or a custom theme
  # from ~/.config/goldbach/themes/
  theme: default
  # Chart heights in terminal rows
  chart_height: 12
  scatter_height: 16

logging:
  enabled: true
  # debug, info, warn, error
  level: info
  # Directory for debug.log; empty logs to stderr
  dir: ""
`

	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), config.ConfigFile())
	return nil
}
