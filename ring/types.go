// Package ring defines the Ring descriptor, its variant tag, and the
// sentinel errors for descriptor construction.
package ring

import (
	"errors"
	"math"
)

// Sentinel errors for ring construction.
var (
	// ErrZeroRadicand indicates a radicand of 0, which defines no quadratic field.
	ErrZeroRadicand = errors.New("ring: radicand must be nonzero")
	// ErrDegenerateRadicand indicates radicand 1, whose square root is rational.
	ErrDegenerateRadicand = errors.New("ring: radicand 1 does not generate a quadratic field")
	// ErrRadicandRange indicates |radicand| exceeds MaxRadicand.
	ErrRadicandRange = errors.New("ring: radicand out of representable range")
	// ErrNotSquarefree indicates the radicand is divisible by a square greater than 1.
	ErrNotSquarefree = errors.New("ring: radicand must be squarefree")
	// ErrVariantMismatch indicates the requested variant contradicts the radicand sign.
	ErrVariantMismatch = errors.New("ring: variant does not match radicand sign")
	// ErrUnsupportedDomain indicates an analysis algorithm was handed an
	// IllDefined descriptor, which is recognized but has no implemented
	// number theory.
	ErrUnsupportedDomain = errors.New("ring: unsupported ring variant for this operation")
)

// MaxRadicand bounds |radicand| so that norms of values with int32
// coefficients stay computable in 64-bit intermediates.
const MaxRadicand = math.MaxInt32

// Variant tags a Ring as real, imaginary, or ill-defined.
type Variant int

const (
	// Real marks rings with radicand > 1 (the field embeds in ℝ).
	Real Variant = iota
	// Imaginary marks rings with radicand < 0.
	Imaginary
	// IllDefined marks descriptors built by NewIllDefined; arithmetic on
	// their values stays symbolic, but every analysis algorithm rejects
	// them with an unsupported-domain error.
	IllDefined
)

// Ring is an immutable descriptor of one quadratic field ℚ(√radicand).
// Two descriptors are equal iff they share radicand and variant.
type Ring struct {
	radicand int64
	variant  Variant
}
