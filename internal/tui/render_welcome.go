package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const welcomeDescription = `The Goldbach conjecture states that every even number greater
than 2 can be written as the sum of two prime numbers.

This tool lets you:
  • find the prime pairs that sum to an even number
  • plot those pairs across a range as a scatter chart
  • see how many decompositions each even number has`

// renderWelcome renders the landing screen with the navigation menu.
func (m Model) renderWelcome() string {
	var menu strings.Builder
	for i, entry := range menuEntries {
		style := m.st.MenuItem
		prefix := "  "
		if i == m.menuIndex {
			style = m.st.MenuSelected
			prefix = "❯ "
		}
		menu.WriteString(style.Render(prefix+entry) + "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.st.ContentBox.Render(m.st.Text.Render(welcomeDescription)),
		"",
		menu.String(),
		m.st.Subtitle.Render("github.com/686f6c6"),
	)
}
