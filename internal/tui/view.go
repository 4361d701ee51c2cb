package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/686f6c6/goldbach/internal/tui/chart"
	"github.com/686f6c6/goldbach/internal/viz"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case screenWelcome:
		body = m.renderWelcome()
	case screenSingle:
		body = m.renderSingle()
	case screenRange:
		body = m.renderRange()
	case screenResults:
		body = m.renderResults()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderHelpBar(),
	)
}

// renderHeader renders the title bar for the current screen.
func (m Model) renderHeader() string {
	title := "Goldbach Conjecture"
	switch m.screen {
	case screenSingle:
		title = "Goldbach Conjecture · Single number"
	case screenRange:
		title = "Goldbach Conjecture · Range analysis"
	case screenResults:
		if m.result != nil {
			title = fmt.Sprintf("Goldbach Conjecture · Range [%d, %d]", m.result.Min, m.result.Max)
		}
	}
	return m.st.Title.Render(title)
}

func (m Model) renderHelpBar() string {
	if m.showHelp {
		m.help.ShowAll = true
	} else {
		m.help.ShowAll = false
	}
	return m.st.HelpBar.Render(m.help.View(m.keys))
}

// renderActiveTab renders the scatter or histogram content for the
// results viewport. The table tab has its own widget.
func (m Model) renderActiveTab() string {
	if m.result == nil {
		return ""
	}

	switch m.activeTab {
	case tabScatter:
		series := viz.BuildScatter(m.result, m.scatterPolicy())
		points := make([]chart.Point, len(series))
		for i, p := range series {
			points[i] = chart.Point{X: p.N, Y: p.P}
		}
		sc := chart.NewScatter(m.st, m.contentWidth()-8, m.cfg.TUI.ScatterHeight)
		return sc.Render(points)

	case tabHistogram:
		series := viz.BuildHistogram(m.result)
		bins := make([]chart.Bin, len(series))
		for i, b := range series {
			bins[i] = chart.Bin{Label: b.N, Value: b.Count}
		}
		h := chart.NewHistogram(m.st, m.contentWidth())
		return h.Render(bins)
	}
	return ""
}
