// Package prime generates prime numbers with a Sieve of Eratosthenes and
// exposes them as an immutable set with constant-time membership lookup.
package prime

import (
	"math"

	"github.com/686f6c6/goldbach/internal/errors"
)

// Set is an immutable collection of all primes up to a bound. It keeps
// both the ascending prime list and a bit-per-candidate composite table,
// so iteration and membership tests are both cheap. A Set is never
// mutated after Sieve returns it and is safe for concurrent reads.
type Set struct {
	bound  int
	primes []int
	bits   []uint64 // bit v set means v is prime
}

// Sieve generates the set of all primes in [2, bound] using the Sieve of
// Eratosthenes. Returns errors.ErrInvalidBound (via BoundError) when
// bound < 2.
func Sieve(bound int) (*Set, error) {
	if bound < 2 {
		return nil, errors.NewBoundError(bound)
	}

	// composite[v] starts false for every candidate; 0 and 1 are handled
	// by starting the scan at 2.
	composite := make([]bool, bound+1)

	limit := int(math.Sqrt(float64(bound)))
	for p := 2; p <= limit; p++ {
		if composite[p] {
			continue
		}
		// Multiples below p*p were already struck by smaller primes.
		for m := p * p; m <= bound; m += p {
			composite[m] = true
		}
	}

	set := &Set{
		bound: bound,
		bits:  make([]uint64, bound/64+1),
	}
	for v := 2; v <= bound; v++ {
		if !composite[v] {
			set.primes = append(set.primes, v)
			set.bits[v/64] |= 1 << (uint(v) % 64)
		}
	}
	return set, nil
}

// Bound returns the upper limit this set was sieved to.
func (s *Set) Bound() int { return s.bound }

// Count returns the number of primes in the set.
func (s *Set) Count() int { return len(s.primes) }

// Primes returns the primes in ascending order. The returned slice is
// shared; callers must not modify it.
func (s *Set) Primes() []int { return s.primes }

// Contains reports whether v is a prime within the sieved bound.
// Values outside [0, bound] report false.
func (s *Set) Contains(v int) bool {
	if v < 0 || v > s.bound {
		return false
	}
	return s.bits[v/64]&(1<<(uint(v)%64)) != 0
}
