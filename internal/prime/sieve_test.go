package prime

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/686f6c6/goldbach/internal/errors"
)

func TestSieveKnownPrimes(t *testing.T) {
	tests := []struct {
		bound int
		want  []int
	}{
		{2, []int{2}},
		{3, []int{2, 3}},
		{4, []int{2, 3}},
		{10, []int{2, 3, 5, 7}},
		{100, []int{
			2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
			31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
			73, 79, 83, 89, 97,
		}},
	}

	for _, tt := range tests {
		set, err := Sieve(tt.bound)
		if err != nil {
			t.Fatalf("Sieve(%d) failed: %v", tt.bound, err)
		}
		if diff := cmp.Diff(tt.want, set.Primes()); diff != "" {
			t.Errorf("Sieve(%d) primes mismatch (-want +got):\n%s", tt.bound, diff)
		}
		if set.Count() != len(tt.want) {
			t.Errorf("Sieve(%d) Count() = %d, want %d", tt.bound, set.Count(), len(tt.want))
		}
		if set.Bound() != tt.bound {
			t.Errorf("Sieve(%d) Bound() = %d", tt.bound, set.Bound())
		}
	}
}

func TestSieveInvalidBound(t *testing.T) {
	for _, bound := range []int{1, 0, -5} {
		_, err := Sieve(bound)
		if err == nil {
			t.Errorf("Sieve(%d) expected error, got nil", bound)
			continue
		}
		if !errors.Is(err, errors.ErrInvalidBound) {
			t.Errorf("Sieve(%d) error = %v, want ErrInvalidBound", bound, err)
		}
	}
}

func TestContainsMatchesPrimeList(t *testing.T) {
	set, err := Sieve(1000)
	if err != nil {
		t.Fatalf("Sieve(1000) failed: %v", err)
	}

	inList := make(map[int]bool, set.Count())
	for _, p := range set.Primes() {
		inList[p] = true
	}

	for v := 0; v <= 1000; v++ {
		if set.Contains(v) != inList[v] {
			t.Errorf("Contains(%d) = %v, want %v", v, set.Contains(v), inList[v])
		}
	}
}

func TestContainsOutOfBounds(t *testing.T) {
	set, err := Sieve(10)
	if err != nil {
		t.Fatalf("Sieve(10) failed: %v", err)
	}

	for _, v := range []int{-1, 11, 13, 1 << 30} {
		if set.Contains(v) {
			t.Errorf("Contains(%d) = true for value outside bound", v)
		}
	}
}

func TestPrimesAscendingNoDuplicates(t *testing.T) {
	set, err := Sieve(500)
	if err != nil {
		t.Fatalf("Sieve(500) failed: %v", err)
	}

	primes := set.Primes()
	for i := 1; i < len(primes); i++ {
		if primes[i] <= primes[i-1] {
			t.Fatalf("primes not strictly ascending at index %d: %d then %d", i, primes[i-1], primes[i])
		}
	}
}
