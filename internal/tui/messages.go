package tui

import "github.com/686f6c6/goldbach/internal/goldbach"

// analysisDoneMsg carries a completed range analysis into the update loop.
type analysisDoneMsg struct {
	result *goldbach.RangeResult
}

// analysisErrMsg carries a failed range analysis into the update loop.
type analysisErrMsg struct {
	err error
}
