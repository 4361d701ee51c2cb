package chart

import (
	"fmt"
	"strings"

	"github.com/686f6c6/goldbach/internal/tui/styles"
)

// Cell kinds on the scatter grid.
const (
	cellEmpty byte = iota
	cellPoint
	cellDiagonal
)

// Scatter renders (x, y) points onto a character grid with labeled axes.
type Scatter struct {
	st     *styles.Styles
	width  int // plot columns, excluding the axis gutter
	height int // plot rows, excluding the x-axis line

	// ShowDiagonal draws the y=x line, which makes pair symmetry visible
	// when plotting (p, q) pairs for a single number.
	ShowDiagonal bool
}

// NewScatter creates a scatter renderer with the given plot dimensions.
func NewScatter(st *styles.Styles, width, height int) *Scatter {
	if width < 8 {
		width = 8
	}
	if height < 4 {
		height = 4
	}
	return &Scatter{st: st, width: width, height: height}
}

// Render draws the points. An empty series renders a muted placeholder
// instead of axes.
func (s *Scatter) Render(points []Point) string {
	if len(points) == 0 {
		return s.st.Muted.Render("(no points)")
	}

	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}
	xLo, xHi := minMax(xs)
	yLo, yHi := minMax(ys)
	if s.ShowDiagonal {
		// Shared scale keeps the diagonal at 45 degrees worth of meaning.
		if xLo < yLo {
			yLo = xLo
		}
		if xHi > yHi {
			yHi = xHi
		}
		xLo, xHi = yLo, yHi
	}

	grid := make([][]byte, s.height)
	for r := range grid {
		grid[r] = make([]byte, s.width)
	}

	if s.ShowDiagonal {
		for col := 0; col < s.width; col++ {
			// Invert the column scale to find the value on y=x, then map
			// it back onto a row.
			v := xLo + col*(xHi-xLo)/max(s.width-1, 1)
			row := s.height - 1 - scale(v, yLo, yHi, s.height)
			grid[row][col] = cellDiagonal
		}
	}

	for _, p := range points {
		col := scale(p.X, xLo, xHi, s.width)
		row := s.height - 1 - scale(p.Y, yLo, yHi, s.height)
		grid[row][col] = cellPoint
	}

	yLabels := [2]string{fmt.Sprintf("%d", yHi), fmt.Sprintf("%d", yLo)}
	gutter := len(yLabels[0])
	if len(yLabels[1]) > gutter {
		gutter = len(yLabels[1])
	}

	var b strings.Builder
	for r, cells := range grid {
		label := strings.Repeat(" ", gutter)
		if r == 0 {
			label = fmt.Sprintf("%*s", gutter, yLabels[0])
		} else if r == s.height-1 {
			label = fmt.Sprintf("%*s", gutter, yLabels[1])
		}
		b.WriteString(s.st.Axis.Render(label + "│"))
		b.WriteString(s.renderRow(cells))
		b.WriteString("\n")
	}

	b.WriteString(s.st.Axis.Render(strings.Repeat(" ", gutter) + "└" + strings.Repeat("─", s.width)))
	b.WriteString("\n")

	lo := fmt.Sprintf("%d", xLo)
	hi := fmt.Sprintf("%d", xHi)
	pad := s.width - len(lo) - len(hi)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(s.st.Axis.Render(strings.Repeat(" ", gutter+1) + lo + strings.Repeat(" ", pad) + hi))

	return b.String()
}

// renderRow styles a grid row, batching runs of the same cell kind to keep
// the escape-sequence overhead down.
func (s *Scatter) renderRow(cells []byte) string {
	var b strings.Builder
	flush := func(kind byte, count int) {
		if count == 0 {
			return
		}
		switch kind {
		case cellPoint:
			b.WriteString(s.st.Point.Render(strings.Repeat("•", count)))
		case cellDiagonal:
			b.WriteString(s.st.Muted.Render(strings.Repeat("·", count)))
		default:
			b.WriteString(strings.Repeat(" ", count))
		}
	}

	run := cells[0]
	count := 0
	for _, c := range cells {
		if c != run {
			flush(run, count)
			run = c
			count = 0
		}
		count++
	}
	flush(run, count)
	return b.String()
}
