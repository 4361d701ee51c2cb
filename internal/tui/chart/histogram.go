package chart

import (
	"fmt"
	"strings"

	"github.com/686f6c6/goldbach/internal/tui/styles"
)

// Histogram renders one horizontal bar per bin with the exact value at the
// end of the bar. Horizontal bars are the terminal-native equivalent of the
// labeled vertical bar chart: every bin keeps its precise count visible.
type Histogram struct {
	st    *styles.Styles
	width int // total columns available, including labels
}

// NewHistogram creates a histogram renderer for the given total width.
func NewHistogram(st *styles.Styles, width int) *Histogram {
	if width < 20 {
		width = 20
	}
	return &Histogram{st: st, width: width}
}

// Render draws the bins in order, one row each. An empty series renders a
// muted placeholder.
func (h *Histogram) Render(bins []Bin) string {
	if len(bins) == 0 {
		return h.st.Muted.Render("(no bins)")
	}

	maxValue := 0
	labelWidth := 0
	valueWidth := 0
	for _, bin := range bins {
		if bin.Value > maxValue {
			maxValue = bin.Value
		}
		if w := len(fmt.Sprintf("%d", bin.Label)); w > labelWidth {
			labelWidth = w
		}
		if w := len(fmt.Sprintf("%d", bin.Value)); w > valueWidth {
			valueWidth = w
		}
	}

	// label + "│" + bar + " " + value
	barSpace := h.width - labelWidth - valueWidth - 3
	if barSpace < 1 {
		barSpace = 1
	}

	lines := make([]string, 0, len(bins))
	for _, bin := range bins {
		barLen := 0
		if maxValue > 0 {
			barLen = bin.Value * barSpace / maxValue
		}
		if bin.Value > 0 && barLen == 0 {
			barLen = 1
		}

		line := h.st.Axis.Render(fmt.Sprintf("%*d │", labelWidth, bin.Label)) +
			h.st.Bar.Render(strings.Repeat("█", barLen)) +
			" " + h.st.Text.Render(fmt.Sprintf("%d", bin.Value))
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
