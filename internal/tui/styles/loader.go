package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/686f6c6/goldbach/internal/config"
)

// ThemeFile represents a custom theme definition loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "Solarized Dark")
	Name string `yaml:"name"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors contains all color definitions for a theme.
// All colors should be hex format (#RRGGBB or #RGB). Accent colors are
// optional and default to the base colors.
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	Blue   string `yaml:"blue,omitempty"`
	Yellow string `yaml:"yellow,omitempty"`
	Pink   string `yaml:"pink,omitempty"`
}

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// isValidHexColor checks that a color is #RGB or #RRGGBB.
func isValidHexColor(color string) bool {
	return hexColorRegex.MatchString(color)
}

// ThemesDir returns the directory custom themes are loaded from.
func ThemesDir() string {
	return filepath.Join(config.ConfigDir(), "themes")
}

// CustomThemeNames returns the names of all loadable custom themes.
// A custom theme is a .yaml file in the themes directory; its name is the
// file name without the extension.
func CustomThemeNames() []string {
	entries, err := os.ReadDir(ThemesDir())
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"))
		}
	}
	return names
}

// IsCustomTheme checks whether a custom theme file exists for the name.
func IsCustomTheme(name string) bool {
	_, err := findThemeFile(name)
	return err == nil
}

func findThemeFile(name string) (string, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(ThemesDir(), name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.New("theme file not found")
}

// LoadCustomPalette loads and validates a custom theme by name.
func LoadCustomPalette(name string) (*ColorPalette, error) {
	path, err := findThemeFile(name)
	if err != nil {
		return nil, fmt.Errorf("custom theme %q: %w", name, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme %q: %w", name, err)
	}

	var file ThemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}

	return paletteFromFile(&file)
}

// paletteFromFile validates the required colors and builds a palette,
// defaulting optional accents to base colors.
func paletteFromFile(file *ThemeFile) (*ColorPalette, error) {
	required := map[string]string{
		"primary":   file.Colors.Primary,
		"secondary": file.Colors.Secondary,
		"warning":   file.Colors.Warning,
		"error":     file.Colors.Error,
		"muted":     file.Colors.Muted,
		"surface":   file.Colors.Surface,
		"text":      file.Colors.Text,
		"border":    file.Colors.Border,
	}
	for field, color := range required {
		if !isValidHexColor(color) {
			return nil, fmt.Errorf("theme color %q is not a valid hex color: %q", field, color)
		}
	}

	orDefault := func(color, fallback string) lipgloss.Color {
		if isValidHexColor(color) {
			return lipgloss.Color(color)
		}
		return lipgloss.Color(fallback)
	}

	return &ColorPalette{
		Primary:   lipgloss.Color(file.Colors.Primary),
		Secondary: lipgloss.Color(file.Colors.Secondary),
		Warning:   lipgloss.Color(file.Colors.Warning),
		Error:     lipgloss.Color(file.Colors.Error),
		Muted:     lipgloss.Color(file.Colors.Muted),
		Surface:   lipgloss.Color(file.Colors.Surface),
		Text:      lipgloss.Color(file.Colors.Text),
		Border:    lipgloss.Color(file.Colors.Border),
		Blue:      orDefault(file.Colors.Blue, file.Colors.Primary),
		Yellow:    orDefault(file.Colors.Yellow, file.Colors.Warning),
		Pink:      orDefault(file.Colors.Pink, file.Colors.Primary),
	}, nil
}
