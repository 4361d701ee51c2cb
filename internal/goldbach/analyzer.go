package goldbach

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/686f6c6/goldbach/internal/errors"
	"github.com/686f6c6/goldbach/internal/logging"
	"github.com/686f6c6/goldbach/internal/prime"
)

// Analyzer runs Goldbach decomposition across contiguous ranges of even
// numbers. It sieves once per range and shares the resulting read-only
// prime set across all per-number decompositions.
type Analyzer struct {
	workers int
	log     *logging.Logger
}

// NewAnalyzer creates an Analyzer. workers controls how many decompositions
// run concurrently; 0 means one worker per logical CPU.
func NewAnalyzer(workers int, log *logging.Logger) *Analyzer {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = logging.NopLogger()
	}
	return &Analyzer{
		workers: workers,
		log:     log.WithComponent("analyzer"),
	}
}

// AnalyzeRange decomposes every even number in [min, max] and returns one
// entry per number in ascending order. Both bounds must be even and satisfy
// 2 < min <= max; otherwise errors.ErrInvalidRange is returned.
//
// The sieve runs once at bound max and is shared read-only by every
// decomposition. Decompositions are independent, so they run on a bounded
// worker group where each worker writes only its own entry slot. Any
// per-number failure or context cancellation aborts the whole range; no
// partial result is returned.
func (a *Analyzer) AnalyzeRange(ctx context.Context, min, max int) (*RangeResult, error) {
	if err := validateRange(min, max); err != nil {
		return nil, err
	}

	start := time.Now()
	set, err := prime.Sieve(max)
	if err != nil {
		return nil, fmt.Errorf("sieving range bound: %w", err)
	}
	a.log.Debug("sieve complete",
		"bound", max,
		"primes", set.Count(),
		"elapsed", time.Since(start).String())

	count := (max-min)/2 + 1
	entries := make([]Entry, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i := 0; i < count; i++ {
		// Cancellation checkpoint between per-number units.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		i := i
		n := min + 2*i
		g.Go(func() error {
			pairs, err := Decompose(n, set)
			if err != nil {
				return fmt.Errorf("decomposing %d: %w", n, err)
			}
			entries[i] = Entry{N: n, Pairs: pairs}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &RangeResult{Min: min, Max: max, Entries: entries}
	a.log.Info("range analysis complete",
		"min", min,
		"max", max,
		"entries", result.Len(),
		"pairs", result.TotalPairs(),
		"elapsed", time.Since(start).String())
	return result, nil
}

// validateRange rejects odd bounds instead of rounding them: callers that
// want rounding do it themselves, so the analyzer's semantics stay explicit.
func validateRange(min, max int) error {
	switch {
	case min <= 2:
		return errors.NewRangeError(min, max, "min must be greater than 2")
	case max <= 2:
		return errors.NewRangeError(min, max, "max must be greater than 2")
	case min%2 != 0 || max%2 != 0:
		return errors.NewRangeError(min, max, "bounds must be even")
	case min > max:
		return errors.NewRangeError(min, max, "min must not exceed max")
	}
	return nil
}
