package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderResults renders the results screen: the tab bar, the active tab's
// content, and a summary footer.
func (m Model) renderResults() string {
	if m.result == nil {
		return m.st.Muted.Render("no results")
	}

	tabs := make([]string, len(resultsTabTitles))
	for i, title := range resultsTabTitles {
		if resultsTab(i) == m.activeTab {
			tabs[i] = m.st.TabActive.Render(title)
		} else {
			tabs[i] = m.st.TabInactive.Render(title)
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var content string
	if m.activeTab == tabTable {
		content = m.resultTable.View()
	} else {
		content = m.resultView.View()
	}

	footer := m.st.Subtitle.Render(fmt.Sprintf(
		"%d even numbers · %d prime pairs", m.result.Len(), m.result.TotalPairs()))

	return strings.Join([]string{tabBar, content, footer}, "\n")
}
