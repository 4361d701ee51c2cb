package chart

import (
	"regexp"
	"strings"
	"testing"

	"github.com/686f6c6/goldbach/internal/tui/styles"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func testStyles() *styles.Styles {
	return styles.FromPalette(styles.DefaultPalette())
}

func TestScatterDimensions(t *testing.T) {
	s := NewScatter(testStyles(), 20, 8)

	out := stripANSI(s.Render([]Point{{4, 2}, {10, 7}, {10, 5}}))
	lines := strings.Split(out, "\n")

	// 8 plot rows + axis line + x labels line.
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "•") {
		t.Errorf("no points plotted:\n%s", out)
	}
	if !strings.Contains(lines[0], "7") {
		t.Errorf("top row missing y max label:\n%s", out)
	}
	if !strings.Contains(lines[9], "4") || !strings.Contains(lines[9], "10") {
		t.Errorf("x label line missing bounds:\n%s", out)
	}
}

func TestScatterCornersLandOnGrid(t *testing.T) {
	s := NewScatter(testStyles(), 10, 5)

	out := stripANSI(s.Render([]Point{{0, 0}, {9, 4}}))
	lines := strings.Split(out, "\n")

	// (9, 4) is the top-right plot cell, (0, 0) the bottom-left one.
	top := lines[0]
	bottom := lines[4]
	if !strings.HasSuffix(top, "•") {
		t.Errorf("max point not in top-right corner: %q", top)
	}
	gutterAndAxis := strings.Index(bottom, "│")
	if gutterAndAxis < 0 || !strings.HasPrefix(bottom[gutterAndAxis+len("│"):], "•") {
		t.Errorf("min point not in bottom-left corner: %q", bottom)
	}
}

func TestScatterEmptySeries(t *testing.T) {
	s := NewScatter(testStyles(), 20, 8)
	out := stripANSI(s.Render(nil))
	if out != "(no points)" {
		t.Errorf("empty series output = %q", out)
	}
}

func TestScatterDiagonal(t *testing.T) {
	s := NewScatter(testStyles(), 16, 8)
	s.ShowDiagonal = true

	out := stripANSI(s.Render([]Point{{3, 7}, {5, 5}, {7, 3}}))
	if !strings.Contains(out, "·") {
		t.Errorf("diagonal not drawn:\n%s", out)
	}
	if !strings.Contains(out, "•") {
		t.Errorf("points not drawn over diagonal:\n%s", out)
	}
}

func TestScatterSinglePoint(t *testing.T) {
	s := NewScatter(testStyles(), 10, 5)

	// A single point gives degenerate x and y ranges; must not panic.
	out := stripANSI(s.Render([]Point{{4, 2}}))
	if !strings.Contains(out, "•") {
		t.Errorf("single point not plotted:\n%s", out)
	}
}

func TestHistogramRows(t *testing.T) {
	h := NewHistogram(testStyles(), 40)

	bins := []Bin{{4, 1}, {6, 1}, {8, 1}, {10, 2}}
	out := stripANSI(h.Render(bins))
	lines := strings.Split(out, "\n")

	if len(lines) != len(bins) {
		t.Fatalf("expected %d rows, got %d:\n%s", len(bins), len(lines), out)
	}
	for i, bin := range bins {
		if !strings.Contains(lines[i], "█") {
			t.Errorf("row %d has no bar: %q", i, lines[i])
		}
		if !strings.HasSuffix(lines[i], "2") && bin.Value == 2 {
			t.Errorf("row %d missing count label: %q", i, lines[i])
		}
	}
}

func TestHistogramScalesToWidestBar(t *testing.T) {
	h := NewHistogram(testStyles(), 40)

	out := stripANSI(h.Render([]Bin{{100, 6}, {102, 3}}))
	lines := strings.Split(out, "\n")

	bars := make([]int, 2)
	for i, line := range lines {
		bars[i] = strings.Count(line, "█")
	}
	if bars[0] <= bars[1] {
		t.Errorf("larger value should have longer bar: %v\n%s", bars, out)
	}
	if bars[1] == 0 {
		t.Errorf("nonzero value rendered with empty bar:\n%s", out)
	}
}

func TestHistogramZeroCountBin(t *testing.T) {
	h := NewHistogram(testStyles(), 40)

	// A zero bin would be a conjecture counterexample; it still renders as
	// a labeled row, just with no bar.
	out := stripANSI(h.Render([]Bin{{4, 1}, {6, 0}}))
	lines := strings.Split(out, "\n")

	if strings.Count(lines[1], "█") != 0 {
		t.Errorf("zero bin rendered a bar: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], "0") {
		t.Errorf("zero bin missing count label: %q", lines[1])
	}
}

func TestHistogramEmptySeries(t *testing.T) {
	h := NewHistogram(testStyles(), 40)
	if out := stripANSI(h.Render(nil)); out != "(no bins)" {
		t.Errorf("empty series output = %q", out)
	}
}
