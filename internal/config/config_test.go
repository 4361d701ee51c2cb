package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	if errs := cfg.Validate(); len(errs) > 0 {
		t.Errorf("default config failed validation: %v", ValidationErrors(errs))
	}
}

func TestLoadWithDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Analysis.ScatterPolicy != "both" {
		t.Errorf("default scatter policy = %q, want %q", cfg.Analysis.ScatterPolicy, "both")
	}
	if cfg.Analysis.Workers != 0 {
		t.Errorf("default workers = %d, want 0 (auto)", cfg.Analysis.Workers)
	}
	if cfg.TUI.Theme != "default" {
		t.Errorf("default theme = %q, want %q", cfg.TUI.Theme, "default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadFromConfigFile(t *testing.T) {
	resetViper(t)
	SetDefaults()

	dir := t.TempDir()
	content := []byte("analysis:\n  workers: 4\n  scatter_policy: lower\ntui:\n  theme: nord\n")
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig failed: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Analysis.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Analysis.Workers)
	}
	if cfg.Analysis.ScatterPolicy != "lower" {
		t.Errorf("scatter policy = %q, want %q", cfg.Analysis.ScatterPolicy, "lower")
	}
	if cfg.TUI.Theme != "nord" {
		t.Errorf("theme = %q, want %q", cfg.TUI.Theme, "nord")
	}
	// Unset keys fall through to defaults.
	if cfg.Analysis.WarnThreshold != 1000 {
		t.Errorf("warn threshold = %d, want default 1000", cfg.Analysis.WarnThreshold)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("analysis.scatter_policy", "sideways")
	viper.Set("analysis.workers", -1)

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
}

func TestIsValidScatterPolicy(t *testing.T) {
	tests := []struct {
		policy string
		want   bool
	}{
		{"both", true},
		{"lower", true},
		{"", false},
		{"upper", false},
		{"BOTH", false},
	}

	for _, tt := range tests {
		if got := IsValidScatterPolicy(tt.policy); got != tt.want {
			t.Errorf("IsValidScatterPolicy(%q) = %v, want %v", tt.policy, got, tt.want)
		}
	}
}

func TestConfigDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	if got := ConfigDir(); got != filepath.Join("/tmp/xdg-test", "goldbach") {
		t.Errorf("ConfigDir() = %q, want XDG path", got)
	}
}
