package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/686f6c6/goldbach/internal/tui/chart"
)

// renderSingle renders the single-number screen: input, pair list, and a
// (p, q) scatter with the y=x diagonal showing pair symmetry.
func (m Model) renderSingle() string {
	sections := []string{
		m.st.Text.Render("Enter an even number greater than 2:"),
		m.numberInput.View(),
	}

	if m.singleErr != "" {
		sections = append(sections, m.st.Error.Render(m.singleErr))
	}

	if m.singleDone {
		if len(m.singlePairs) == 0 {
			// An even number with no decomposition would disprove the
			// conjecture; report it prominently, not as a failure.
			sections = append(sections, m.st.Warning.Render(
				fmt.Sprintf("No prime pairs sum to %d — that would be a counterexample to the conjecture!", m.singleN)))
		} else {
			sections = append(sections, m.renderSingleResults())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderSingleResults() string {
	var list strings.Builder
	list.WriteString(m.st.Secondary.Render(
		fmt.Sprintf("%d prime pair(s) sum to %d", len(m.singlePairs), m.singleN)))
	list.WriteString("\n\n")
	for _, pair := range m.singlePairs {
		list.WriteString(m.st.Text.Render(fmt.Sprintf("%d + %d = %d", pair.P, pair.Q, m.singleN)))
		list.WriteString("\n")
	}

	points := make([]chart.Point, len(m.singlePairs))
	for i, pair := range m.singlePairs {
		points[i] = chart.Point{X: pair.P, Y: pair.Q}
	}
	sc := chart.NewScatter(m.st, 32, m.cfg.TUI.ScatterHeight)
	sc.ShowDiagonal = true

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.st.ContentBox.Render(list.String()),
		"  ",
		m.st.ContentBox.Render(sc.Render(points)),
	)
}
