// Package factor: sentinel errors and the non-unique-factorization carrier.
package factor

import (
	"errors"
	"fmt"

	"github.com/surdlab/quadring/quadint"
)

// Sentinel errors for factorization.
var (
	// ErrZeroValue indicates an attempt to factor or classify zero.
	ErrZeroValue = errors.New("factor: zero cannot be factored")
	// ErrNonUniqueFactorization indicates the ring admits inequivalent
	// factorizations; wrapped by *NonUniqueFactorizationError.
	ErrNonUniqueFactorization = errors.New("factor: factorization is not unique in this ring")
	// ErrNoFallbackState indicates FactorizeAnyway received a nil error value.
	ErrNoFallbackState = errors.New("factor: nil non-unique-factorization error")
	// ErrDivisorRange indicates the real-ring divisor search would exceed
	// the supported enumeration range; no verdict is possible.
	ErrDivisorRange = errors.New("factor: divisor search out of supported range")
)

// NonUniqueFactorizationError reports that a canonical prime factorization
// does not exist because the ring is not a unique-factorization domain. It
// carries the number to factor so the caller can hand it to
// FactorizeAnyway, and wraps ErrNonUniqueFactorization for errors.Is
// matching.
type NonUniqueFactorizationError struct {
	N quadint.QuadInt
}

// Error implements the error interface.
func (e *NonUniqueFactorizationError) Error() string {
	return fmt.Sprintf("factor: non-unique factorization possible for %v in ring of radicand %d",
		e.N, e.N.Ring().Radicand())
}

// Unwrap lets errors.Is(err, ErrNonUniqueFactorization) match.
func (e *NonUniqueFactorizationError) Unwrap() error { return ErrNonUniqueFactorization }
