package styles

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#A78BFA", true},
		{"#fff", true},
		{"#FFF", true},
		{"A78BFA", false},
		{"#A78BF", false},
		{"#GGGGGG", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			if got := isValidHexColor(tt.color); got != tt.want {
				t.Errorf("isValidHexColor(%q) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func writeTheme(t *testing.T, name, content string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "goldbach", "themes")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create themes dir: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Dir(filepath.Dir(dir)))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write theme file: %v", err)
	}
}

const validTheme = `name: Test Theme
version: "1"
colors:
  primary: "#AA00FF"
  secondary: "#00FF00"
  warning: "#FFAA00"
  error: "#FF0000"
  muted: "#888888"
  surface: "#111111"
  text: "#EEEEEE"
  border: "#444444"
`

func TestLoadCustomPalette(t *testing.T) {
	writeTheme(t, "mytheme.yaml", validTheme)

	palette, err := LoadCustomPalette("mytheme")
	if err != nil {
		t.Fatalf("LoadCustomPalette failed: %v", err)
	}

	if string(palette.Primary) != "#AA00FF" {
		t.Errorf("primary = %q, want #AA00FF", palette.Primary)
	}
	// Optional accents default to base colors.
	if palette.Blue != palette.Primary {
		t.Errorf("blue should default to primary, got %q", palette.Blue)
	}
	if palette.Yellow != palette.Warning {
		t.Errorf("yellow should default to warning, got %q", palette.Yellow)
	}
}

func TestLoadCustomPaletteRejectsBadColor(t *testing.T) {
	writeTheme(t, "broken.yaml", `name: Broken
version: "1"
colors:
  primary: "not-a-color"
  secondary: "#00FF00"
  warning: "#FFAA00"
  error: "#FF0000"
  muted: "#888888"
  surface: "#111111"
  text: "#EEEEEE"
  border: "#444444"
`)

	if _, err := LoadCustomPalette("broken"); err == nil {
		t.Fatal("expected error for invalid color, got nil")
	}
}

func TestLoadCustomPaletteMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if _, err := LoadCustomPalette("nonexistent"); err == nil {
		t.Fatal("expected error for missing theme, got nil")
	}
}

func TestCustomThemeNames(t *testing.T) {
	writeTheme(t, "ocean.yaml", validTheme)

	names := CustomThemeNames()
	if !slices.Contains(names, "ocean") {
		t.Errorf("CustomThemeNames() = %v, want to contain %q", names, "ocean")
	}
}

func TestIsValidTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for _, name := range BuiltinThemes() {
		if !IsValidTheme(name) {
			t.Errorf("built-in theme %q reported invalid", name)
		}
	}
	if IsValidTheme("no-such-theme") {
		t.Error("unknown theme reported valid")
	}
}

func TestPaletteForFallsBackToDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got := PaletteFor("no-such-theme")
	want := DefaultPalette()
	if got.Primary != want.Primary {
		t.Errorf("fallback palette primary = %q, want default %q", got.Primary, want.Primary)
	}
}

func TestFromPaletteUsesPaletteColors(t *testing.T) {
	s := New("dracula")
	if s.Palette.Primary != DraculaPalette().Primary {
		t.Errorf("styles built from wrong palette")
	}
}
