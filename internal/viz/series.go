// Package viz transforms range analysis results into the flat data series
// consumed by the rendering layer. Builders are pure: they never mutate
// the result they read from.
package viz

import "github.com/686f6c6/goldbach/internal/goldbach"

// ScatterPolicy selects which members of each Goldbach pair become scatter
// points.
type ScatterPolicy string

const (
	// PolicyBoth plots both primes of every pair, illustrating the full
	// set of prime values hit across the range.
	PolicyBoth ScatterPolicy = "both"
	// PolicyLower plots only the smaller prime of each pair.
	PolicyLower ScatterPolicy = "lower"
)

// IsValid reports whether the policy is a known value.
func (p ScatterPolicy) IsValid() bool {
	return p == PolicyBoth || p == PolicyLower
}

// ScatterPoint is one (even number, prime) point.
type ScatterPoint struct {
	N int `json:"n"`
	P int `json:"p"`
}

// ScatterSeries is the flat list of scatter points across a whole range.
type ScatterSeries []ScatterPoint

// HistogramBin maps one even number to its Goldbach pair count.
type HistogramBin struct {
	N     int `json:"n"`
	Count int `json:"count"`
}

// HistogramSeries holds one bin per even number, in ascending N order.
type HistogramSeries []HistogramBin

// BuildScatter flattens every pair in the result into scatter points.
// Under PolicyBoth a pair (p, q) contributes the points (n, p) and (n, q);
// under PolicyLower only (n, p). Unknown policies fall back to PolicyBoth.
func BuildScatter(result *goldbach.RangeResult, policy ScatterPolicy) ScatterSeries {
	if !policy.IsValid() {
		policy = PolicyBoth
	}

	var series ScatterSeries
	for _, entry := range result.Entries {
		for _, pair := range entry.Pairs {
			series = append(series, ScatterPoint{N: entry.N, P: pair.P})
			if policy == PolicyBoth {
				series = append(series, ScatterPoint{N: entry.N, P: pair.Q})
			}
		}
	}
	return series
}

// BuildHistogram maps every entry to its pair count, one bin per number.
func BuildHistogram(result *goldbach.RangeResult) HistogramSeries {
	series := make(HistogramSeries, 0, len(result.Entries))
	for _, entry := range result.Entries {
		series = append(series, HistogramBin{N: entry.N, Count: entry.Count()})
	}
	return series
}
