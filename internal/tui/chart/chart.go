// Package chart renders scatter plots and histograms as styled text for
// the terminal. Renderers are pure functions of their input series and
// dimensions, which keeps them testable without a running program.
package chart

// Point is one (x, y) value on a scatter plot.
type Point struct {
	X int
	Y int
}

// Bin is one labeled value on a histogram.
type Bin struct {
	Label int
	Value int
}

func minMax(values []int) (int, int) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// scale maps v from [lo, hi] onto [0, steps-1]. A degenerate range maps
// everything to 0.
func scale(v, lo, hi, steps int) int {
	if hi == lo {
		return 0
	}
	return (v - lo) * (steps - 1) / (hi - lo)
}
