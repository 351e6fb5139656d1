package factor

import (
	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
	"github.com/surdlab/quadring/symbols"
)

// IsIrreducible reports whether n admits no factorization into two
// non-unit quadratic integers. Zero is rejected; units are reducible by
// convention (they are excluded from factorizations, not members of them).
func IsIrreducible(n quadint.QuadInt) (bool, error) {
	if n.Ring() == nil {
		return false, quadint.ErrNilRing
	}
	if n.Ring().Variant() == ring.IllDefined {
		return false, ring.ErrUnsupportedDomain
	}
	if n.IsZero() {
		return false, ErrZeroValue
	}
	if n.IsUnit() {
		return false, nil
	}
	if symbols.IsRationalPrime(absInt64(n.Norm())) {
		// Norms multiply, so one factor would have norm ±1.
		return true, nil
	}
	_, reducible, err := smallestDivisor(n)
	if err != nil {
		return false, err
	}
	return !reducible, nil
}

// IsPrime reports whether n generates a prime ideal. The predicate is
// strictly stronger than IsIrreducible outside unique-factorization
// rings.
//
// A rational integer ±p is prime iff p is a rational prime that stays
// inert, i.e. Kronecker(Δ, p) = −1 for the field discriminant Δ. A
// non-rational element is prime iff |norm| is a rational prime, or |norm|
// is p² for an inert p of which n is a unit multiple.
func IsPrime(n quadint.QuadInt) (bool, error) {
	if n.Ring() == nil {
		return false, quadint.ErrNilRing
	}
	if n.Ring().Variant() == ring.IllDefined {
		return false, ring.ErrUnsupportedDomain
	}
	if n.IsZero() {
		return false, ErrZeroValue
	}
	if n.IsUnit() {
		return false, nil
	}
	disc := n.Ring().Discriminant()
	if n.Surd() == 0 {
		p := absInt64(n.Reg())
		return symbols.IsRationalPrime(p) && symbols.Kronecker(disc, p) == -1, nil
	}
	bigN := absInt64(n.Norm())
	if symbols.IsRationalPrime(bigN) {
		return true, nil
	}
	if p := isqrt(bigN); p*p == bigN &&
		symbols.IsRationalPrime(p) && symbols.Kronecker(disc, p) == -1 {
		if u, err := n.DivInt(p); err == nil && u.IsUnit() {
			return true, nil
		}
	}
	return false, nil
}
