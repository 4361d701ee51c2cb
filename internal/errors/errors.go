// Package errors provides centralized error definitions and error handling
// utilities for the goldbach codebase. It defines domain-specific errors,
// error constructors with context, and classification helpers.
//
// # Error Types
//
// Domain-specific errors represent failures from the analysis engine:
//   - BoundError: an invalid sieve bound was requested
//   - EvenNumberError: a number that is not an even integer greater than 2
//   - RangeError: an invalid analysis range
//   - PrimeRangeError: a decomposition was attempted with a prime set that
//     does not cover the requested number (an integration bug, not user input)
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewBoundError(1)
//	err := errors.NewRangeError(20, 10, "min must not exceed max")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrInvalidRange) { ... }
//
//	var rangeErr *errors.RangeError
//	if errors.As(err, &rangeErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for the analysis engine.
var (
	// ErrInvalidBound indicates a sieve bound below 2.
	ErrInvalidBound = New("sieve bound must be at least 2")
	// ErrInvalidEvenNumber indicates a number that is not an even integer
	// greater than 2.
	ErrInvalidEvenNumber = New("number must be an even integer greater than 2")
	// ErrInvalidRange indicates an analysis range with odd bounds, bounds
	// not greater than 2, or min exceeding max.
	ErrInvalidRange = New("invalid analysis range")
	// ErrInsufficientPrimes indicates a decomposition request against a
	// prime set whose bound does not cover the number.
	ErrInsufficientPrimes = New("prime set does not cover requested number")
)

// UserFacing is implemented by errors whose message is safe to display to
// end users verbatim.
type UserFacing interface {
	IsUserFacing() bool
}

// IsUserFacing reports whether the error (or any error in its chain) is
// safe to display to end users. Errors that indicate integration bugs
// rather than bad input report false.
func IsUserFacing(err error) bool {
	var uf UserFacing
	if As(err, &uf) {
		return uf.IsUserFacing()
	}
	return false
}

// BoundError represents an invalid sieve bound request.
type BoundError struct {
	Bound int
}

// NewBoundError creates a BoundError for the given bound.
func NewBoundError(bound int) *BoundError {
	return &BoundError{Bound: bound}
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("invalid sieve bound %d: %v", e.Bound, ErrInvalidBound)
}

func (e *BoundError) Unwrap() error { return ErrInvalidBound }

// IsUserFacing reports that bound errors are safe to show users.
func (e *BoundError) IsUserFacing() bool { return true }

// EvenNumberError represents a single-number request that is not an even
// integer greater than 2.
type EvenNumberError struct {
	Number int
}

// NewEvenNumberError creates an EvenNumberError for the given number.
func NewEvenNumberError(n int) *EvenNumberError {
	return &EvenNumberError{Number: n}
}

func (e *EvenNumberError) Error() string {
	return fmt.Sprintf("invalid number %d: %v", e.Number, ErrInvalidEvenNumber)
}

func (e *EvenNumberError) Unwrap() error { return ErrInvalidEvenNumber }

// IsUserFacing reports that even-number errors are safe to show users.
func (e *EvenNumberError) IsUserFacing() bool { return true }

// RangeError represents an invalid analysis range.
type RangeError struct {
	Min     int
	Max     int
	Message string
}

// NewRangeError creates a RangeError for the given bounds.
func NewRangeError(min, max int, message string) *RangeError {
	return &RangeError{Min: min, Max: max, Message: message}
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d]: %s", e.Min, e.Max, e.Message)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// IsUserFacing reports that range errors are safe to show users.
func (e *RangeError) IsUserFacing() bool { return true }

// PrimeRangeError represents a decomposition attempted against a prime set
// that does not cover the requested number. This indicates a caller bug:
// the range analyzer always sieves up to the range maximum first, so a
// correctly wired caller never produces this error.
type PrimeRangeError struct {
	Number int
	Bound  int
}

// NewPrimeRangeError creates a PrimeRangeError for the given number and
// the bound of the prime set that failed to cover it.
func NewPrimeRangeError(n, bound int) *PrimeRangeError {
	return &PrimeRangeError{Number: n, Bound: bound}
}

func (e *PrimeRangeError) Error() string {
	return fmt.Sprintf("prime set bounded at %d does not cover %d: %v", e.Bound, e.Number, ErrInsufficientPrimes)
}

func (e *PrimeRangeError) Unwrap() error { return ErrInsufficientPrimes }

// IsUserFacing reports false: this error indicates an integration bug, not
// bad user input.
func (e *PrimeRangeError) IsUserFacing() bool { return false }
