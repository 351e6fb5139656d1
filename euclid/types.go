// Package euclid: sentinel errors and the non-Euclidean error carrier.
package euclid

import (
	"errors"
	"fmt"

	"github.com/surdlab/quadring/quadint"
)

// Sentinel errors for GCD computation.
var (
	// ErrBothZero indicates gcd(0, 0), which is undefined.
	ErrBothZero = errors.New("euclid: gcd of two zero values is undefined")
	// ErrNonEuclidean indicates the Euclidean loop could not certify
	// progress; wrapped by *NonEuclideanError.
	ErrNonEuclidean = errors.New("euclid: ring is not norm-Euclidean for these operands")
	// ErrNoFallbackState indicates GCDAnyway received a nil error value.
	ErrNoFallbackState = errors.New("euclid: nil non-Euclidean error")
)

// NonEuclideanError reports a failed Euclidean descent. It carries both
// original operands so the caller can hand them to GCDAnyway, and wraps
// ErrNonEuclidean for errors.Is matching.
type NonEuclideanError struct {
	A, B quadint.QuadInt
}

// Error implements the error interface.
func (e *NonEuclideanError) Error() string {
	return fmt.Sprintf(
		"euclid: norm-Euclidean descent failed in ring of radicand %d",
		e.A.Ring().Radicand())
}

// Unwrap lets errors.Is(err, ErrNonEuclidean) match.
func (e *NonEuclideanError) Unwrap() error { return ErrNonEuclidean }
