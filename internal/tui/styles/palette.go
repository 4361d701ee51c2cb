package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default" // Purple/green dark theme
	ThemeMonokai ThemeName = "monokai" // Classic Monokai editor colors
	ThemeDracula ThemeName = "dracula" // Dracula theme colors
	ThemeNord    ThemeName = "nord"    // Nord theme - cool blue-gray
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// ValidThemes returns all valid theme names (built-in + custom).
func ValidThemes() []string {
	themes := BuiltinThemes()
	themes = append(themes, CustomThemeNames()...)
	return themes
}

// IsValidTheme checks if a theme name is valid (built-in or custom).
func IsValidTheme(name string) bool {
	if slices.Contains(BuiltinThemes(), name) {
		return true
	}
	return IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
type ColorPalette struct {
	// Primary accent color (titles, active tabs, chart points)
	Primary lipgloss.Color
	// Secondary accent color (success states, histogram bars)
	Secondary lipgloss.Color
	// Warning color (large-range confirmations, rounding notices)
	Warning lipgloss.Color
	// Error color (validation failures)
	Error lipgloss.Color
	// Muted color (de-emphasized text, axes, the y=x diagonal)
	Muted lipgloss.Color
	// Surface color (panel backgrounds)
	Surface lipgloss.Color
	// Text color (primary text)
	Text lipgloss.Color
	// Border color (panel borders)
	Border lipgloss.Color

	// Additional accent colors for chart series
	Blue   lipgloss.Color
	Yellow lipgloss.Color
	Pink   lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Secondary: lipgloss.Color("#10B981"), // Green
		Warning:   lipgloss.Color("#F59E0B"), // Amber
		Error:     lipgloss.Color("#F87171"), // Red (red-400)
		Muted:     lipgloss.Color("#9CA3AF"), // Gray
		Surface:   lipgloss.Color("#1F2937"), // Dark surface
		Text:      lipgloss.Color("#F9FAFB"), // Light text
		Border:    lipgloss.Color("#6B7280"), // Gray-500
		Blue:      lipgloss.Color("#60A5FA"),
		Yellow:    lipgloss.Color("#FBBF24"),
		Pink:      lipgloss.Color("#F472B6"),
	}
}

// MonokaiPalette returns the classic Monokai editor palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#AE81FF"), // Purple
		Secondary: lipgloss.Color("#A6E22E"), // Green
		Warning:   lipgloss.Color("#FD971F"), // Orange
		Error:     lipgloss.Color("#F92672"), // Pink-red
		Muted:     lipgloss.Color("#75715E"), // Brown-gray
		Surface:   lipgloss.Color("#272822"), // Dark background
		Text:      lipgloss.Color("#F8F8F2"), // Off-white
		Border:    lipgloss.Color("#75715E"),
		Blue:      lipgloss.Color("#66D9EF"),
		Yellow:    lipgloss.Color("#E6DB74"),
		Pink:      lipgloss.Color("#F92672"),
	}
}

// DraculaPalette returns the Dracula theme palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"), // Purple
		Secondary: lipgloss.Color("#50FA7B"), // Green
		Warning:   lipgloss.Color("#FFB86C"), // Orange
		Error:     lipgloss.Color("#FF5555"), // Red
		Muted:     lipgloss.Color("#6272A4"), // Comment blue-gray
		Surface:   lipgloss.Color("#282A36"), // Background
		Text:      lipgloss.Color("#F8F8F2"), // Foreground
		Border:    lipgloss.Color("#6272A4"),
		Blue:      lipgloss.Color("#8BE9FD"),
		Yellow:    lipgloss.Color("#F1FA8C"),
		Pink:      lipgloss.Color("#FF79C6"),
	}
}

// NordPalette returns the Nord theme palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // Frost cyan
		Secondary: lipgloss.Color("#A3BE8C"), // Aurora green
		Warning:   lipgloss.Color("#EBCB8B"), // Aurora yellow
		Error:     lipgloss.Color("#BF616A"), // Aurora red
		Muted:     lipgloss.Color("#81A1C1"), // Frost blue-gray
		Surface:   lipgloss.Color("#3B4252"), // Polar night
		Text:      lipgloss.Color("#ECEFF4"), // Snow storm
		Border:    lipgloss.Color("#4C566A"),
		Blue:      lipgloss.Color("#81A1C1"),
		Yellow:    lipgloss.Color("#EBCB8B"),
		Pink:      lipgloss.Color("#B48EAD"),
	}
}

// PaletteFor returns the palette for a theme name. Custom themes are
// looked up in the user's theme directory; unknown names fall back to the
// default palette.
func PaletteFor(name string) *ColorPalette {
	switch ThemeName(name) {
	case ThemeDefault:
		return DefaultPalette()
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	}
	if palette, err := LoadCustomPalette(name); err == nil {
		return palette
	}
	return DefaultPalette()
}
