// Package goldbach derives Goldbach decompositions from a sieved prime set
// and aggregates them across ranges of even numbers.
package goldbach

import (
	"github.com/686f6c6/goldbach/internal/errors"
	"github.com/686f6c6/goldbach/internal/prime"
)

// ValidateEven checks that n is an even integer greater than 2 and returns
// errors.ErrInvalidEvenNumber (via EvenNumberError) otherwise.
func ValidateEven(n int) error {
	if n <= 2 || n%2 != 0 {
		return errors.NewEvenNumberError(n)
	}
	return nil
}

// Decompose returns all Goldbach pairs (p, q) with p <= q and p+q = n,
// ascending by p. The prime set must have been sieved with a bound of at
// least n; otherwise errors.ErrInsufficientPrimes is returned.
//
// An empty result for a valid n is not an error: it would be a
// counterexample to the conjecture, and callers must be able to tell it
// apart from a failure.
func Decompose(n int, set *prime.Set) ([]Pair, error) {
	if err := ValidateEven(n); err != nil {
		return nil, err
	}
	if set.Bound() < n {
		return nil, errors.NewPrimeRangeError(n, set.Bound())
	}

	// Each prime p <= n/2 pairs with at most one q = n-p, so scanning the
	// ascending half yields a deduplicated, ordered result directly.
	var pairs []Pair
	for _, p := range set.Primes() {
		if p > n/2 {
			break
		}
		if q := n - p; set.Contains(q) {
			pairs = append(pairs, Pair{P: p, Q: q})
		}
	}
	return pairs, nil
}

// DecomposeNumber sieves up to n and decomposes it in one step. This is the
// single-number analysis path; range analysis reuses one sieve instead.
func DecomposeNumber(n int) ([]Pair, error) {
	if err := ValidateEven(n); err != nil {
		return nil, err
	}
	set, err := prime.Sieve(n)
	if err != nil {
		return nil, err
	}
	return Decompose(n, set)
}
