package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderRange renders the range input screen, including the confirmation
// prompt for wide ranges and the in-progress spinner.
func (m Model) renderRange() string {
	sections := []string{
		m.st.Text.Render("Analyze every even number in a range:"),
		lipgloss.JoinHorizontal(lipgloss.Top, m.minInput.View(), "   ", m.maxInput.View()),
	}

	if m.rangeNotice != "" {
		sections = append(sections, m.st.Warning.Render(m.rangeNotice))
	}
	if m.rangeErr != "" {
		sections = append(sections, m.st.Error.Render(m.rangeErr))
	}

	if m.confirming {
		sections = append(sections, m.st.Warning.Render(
			fmt.Sprintf("Analyzing [%d, %d] may take a while. Continue? (y/n)", m.pendingMin, m.pendingMax)))
	}

	if m.computing {
		sections = append(sections,
			m.spin.View()+m.st.Muted.Render(" computing decompositions… (esc to cancel)"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
