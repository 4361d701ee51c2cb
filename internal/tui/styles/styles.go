// Package styles provides the lipgloss styling for the goldbach TUI,
// including built-in color themes and user-defined YAML themes.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles built from a color palette. Building
// them as a unit lets the whole UI switch themes in one call.
type Styles struct {
	Palette *ColorPalette

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Base styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// Tab styles for the results view
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// Menu styles for the welcome screen
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style

	// Content area
	ContentBox lipgloss.Style

	// Status/help bar
	HelpBar lipgloss.Style

	// Chart elements
	Axis   lipgloss.Style
	Point  lipgloss.Style
	Mirror lipgloss.Style
	Bar    lipgloss.Style
}

// New builds the style set for a theme name.
func New(theme string) *Styles {
	return FromPalette(PaletteFor(theme))
}

// FromPalette builds the style set from an explicit palette.
func FromPalette(p *ColorPalette) *Styles {
	return &Styles{
		Palette: p,

		Primary:   lipgloss.NewStyle().Foreground(p.Primary),
		Secondary: lipgloss.NewStyle().Foreground(p.Secondary),
		Warning:   lipgloss.NewStyle().Foreground(p.Warning),
		Error:     lipgloss.NewStyle().Foreground(p.Error),
		Muted:     lipgloss.NewStyle().Foreground(p.Muted),
		Text:      lipgloss.NewStyle().Foreground(p.Text),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Primary).
			Padding(0, 2),

		TabInactive: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 2),

		MenuItem: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 2),

		MenuSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			Background(p.Primary).
			Padding(0, 2),

		ContentBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),

		Axis:   lipgloss.NewStyle().Foreground(p.Muted),
		Point:  lipgloss.NewStyle().Foreground(p.Primary),
		Mirror: lipgloss.NewStyle().Foreground(p.Blue),
		Bar:    lipgloss.NewStyle().Foreground(p.Secondary),
	}
}
