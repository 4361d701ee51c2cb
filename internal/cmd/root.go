// Package cmd wires the goldbach command line interface: the interactive
// TUI by default, plus scriptable single and range analysis subcommands.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/686f6c6/goldbach/internal/config"
	"github.com/686f6c6/goldbach/internal/logging"
	"github.com/686f6c6/goldbach/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "goldbach",
	Short: "Goldbach conjecture decomposition engine and visualizer",
	Long: `Goldbach computes the prime pairs that sum to even numbers,
either for a single number or aggregated across a range, and renders
the results as terminal scatter and histogram charts.

Run without arguments to start the interactive interface.`,
	RunE: runTUI,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/goldbach/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/goldbach")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("GOLDBACH")
	// Replace dots with underscores for nested keys in env vars
	// e.g., GOLDBACH_ANALYSIS_WORKERS for analysis.workers
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	return tui.New(cfg, logger).Run()
}

// newLogger builds the logger described by the configuration. Disabled
// logging yields a no-op logger rather than a nil one.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	return logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
}
