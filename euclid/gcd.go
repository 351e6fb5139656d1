package euclid

import (
	"errors"

	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
)

// maxDescent caps Euclidean iterations. The cap is a cutoff, not a bound
// derived from the operand norms; a descent that outlives it is reported
// non-Euclidean and stays recoverable through GCDAnyway.
const maxDescent = 96

// maxFallback caps best-effort iterations in GCDAnyway.
const maxFallback = 64

// IsDivisibleBy reports whether a is exactly divisible by b. A zero
// divisor is an error, never a false: divisibility by zero is undefined,
// not absent.
func IsDivisibleBy(a, b quadint.QuadInt) (bool, error) {
	if a.Ring() == nil || b.Ring() == nil {
		return false, quadint.ErrNilRing
	}
	if b.IsZero() {
		return false, quadint.ErrDivisionByZero
	}
	_, err := a.Div(b)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, quadint.ErrNotDivisible),
		errors.Is(err, quadint.ErrDegreeOverflow):
		return false, nil
	default:
		return false, err
	}
}

// GCD runs the generalized Euclidean algorithm: the pair (a, b) is
// replaced by (b, a − q·b) with q a lattice point near the exact quotient
// a/b, until a remainder vanishes. The result is the canonical associate
// of the last nonzero term.
//
// Quotient rounding is only guaranteed to shrink norms in norm-Euclidean
// rings; when no nearby quotient decreases |N(remainder)| the call fails
// with a *NonEuclideanError carrying both original operands, which the
// caller may hand to GCDAnyway.
func GCD(a, b quadint.QuadInt) (quadint.QuadInt, error) {
	if a.Ring() == nil || b.Ring() == nil {
		return quadint.QuadInt{}, quadint.ErrNilRing
	}
	if a.IsZero() && b.IsZero() {
		return quadint.QuadInt{}, ErrBothZero
	}
	if b.IsZero() {
		return canonical(a)
	}
	if a.IsZero() {
		return canonical(b)
	}

	origA, origB := a, b
	for iter := 0; iter < maxDescent; iter++ {
		r, err := descendOnce(&a, &b)
		if err != nil {
			return quadint.QuadInt{}, err
		}
		if r.IsZero() {
			return canonical(a)
		}
		if absInt64(r.Norm()) >= absInt64(a.Norm()) {
			return quadint.QuadInt{}, &NonEuclideanError{A: origA, B: origB}
		}
	}
	return quadint.QuadInt{}, &NonEuclideanError{A: origA, B: origB}
}

// GCDAnyway is the best-effort continuation of a failed GCD. It keeps
// applying the same division step without the termination guarantee. A
// chain that reaches a zero remainder yields a genuine common divisor,
// returned canonically. Otherwise the candidate is returned with its
// regular part forced negative, the unreliable-result sentinel.
func GCDAnyway(e *NonEuclideanError) (quadint.QuadInt, error) {
	if e == nil {
		return quadint.QuadInt{}, ErrNoFallbackState
	}
	a, b := e.A, e.B
	trusted := false
	for iter := 0; iter < maxFallback; iter++ {
		r, err := descendOnce(&a, &b)
		if err != nil {
			break
		}
		if r.IsZero() {
			trusted = true
			break
		}
	}
	if trusted {
		return canonical(a)
	}
	cand, err := canonical(b)
	if err != nil {
		return quadint.QuadInt{}, err
	}
	if cand.Reg() > 0 {
		return cand.Neg(), nil
	}
	if cand.Reg() < 0 {
		return cand, nil
	}
	// Pure-surd candidate: fold the flag into the regular part.
	return quadint.New(-1, cand.Surd(), cand.Ring(), 1)
}

// descendOnce performs one division step, advancing (a, b) to (b, r) and
// returning the remainder r = a − q·b.
func descendOnce(a, b *quadint.QuadInt) (quadint.QuadInt, error) {
	r, err := bestRemainder(*a, *b)
	if err != nil {
		return quadint.QuadInt{}, err
	}
	*a, *b = *b, r
	return r, nil
}

// quotientCand is a trial quotient (u + v√d)/den near the exact a/b.
type quotientCand struct {
	u, v, den int64
}

// bestRemainder returns a − q·b minimized in |norm| over the lattice
// quotients q surrounding the exact fraction a/b. In half-integer rings
// the half grid is included, so exact half-integer quotients are found.
func bestRemainder(a, b quadint.QuadInt) (quadint.QuadInt, error) {
	rr, err := commonRing(a, b)
	if err != nil {
		return quadint.QuadInt{}, err
	}
	d := rr.Radicand()
	a1, a2, da := a.Reg(), a.Surd(), a.Denom()
	b1, b2, db := b.Reg(), b.Surd(), b.Denom()

	// a/b = (X + Y√d)/D after rationalizing by the conjugate of b.
	t, ok := mulCheckedE(a2*b2, d)
	if !ok {
		return quadint.QuadInt{}, quadint.ErrArithmeticOverflow
	}
	x := db * (a1*b1 - t)
	y := db * (a2*b1 - a1*b2)
	nn, ok := mulCheckedE(b2*b2, d)
	if !ok {
		return quadint.QuadInt{}, quadint.ErrArithmeticOverflow
	}
	den := da * (b1*b1 - nn)
	if den < 0 {
		x, y, den = -x, -y, -den
	}

	uf, vf := floorDiv(x, den), floorDiv(y, den)
	cands := []quotientCand{
		{uf, vf, 1}, {uf + 1, vf, 1}, {uf, vf + 1, 1}, {uf + 1, vf + 1, 1},
	}
	if rr.HalfIntegers() {
		uh, vh := floorDiv(2*x, den), floorDiv(2*y, den)
		for du := int64(0); du <= 1; du++ {
			for dv := int64(0); dv <= 1; dv++ {
				u, v := uh+du, vh+dv
				if (u-v)&1 == 0 {
					cands = append(cands, quotientCand{u, v, 2})
				}
			}
		}
	}

	var best quadint.QuadInt
	bestNorm, found := int64(0), false
	for _, c := range cands {
		q, err := quadint.New(c.u, c.v, rr, c.den)
		if err != nil {
			continue
		}
		qb, err := q.Times(b)
		if err != nil {
			continue
		}
		rem, err := a.Minus(qb)
		if err != nil {
			continue
		}
		if n := absInt64(rem.Norm()); !found || n < bestNorm {
			best, bestNorm, found = rem, n, true
		}
	}
	if !found {
		return quadint.QuadInt{}, quadint.ErrArithmeticOverflow
	}
	return best, nil
}

// commonRing resolves the ring a GCD descent runs in.
func commonRing(a, b quadint.QuadInt) (*ring.Ring, error) {
	switch {
	case a.Ring().Equal(b.Ring()):
		return a.Ring(), nil
	case a.Surd() == 0:
		return b.Ring(), nil
	case b.Surd() == 0:
		return a.Ring(), nil
	default:
		return nil, quadint.ErrDegreeOverflow
	}
}

// canonical divides units out of g: sign normalization in general, and a
// rotation into the first quadrant for Gaussian integers.
func canonical(g quadint.QuadInt) (quadint.QuadInt, error) {
	if g.Ring().Radicand() == -1 {
		i, err := quadint.New(0, 1, g.Ring(), 1)
		if err != nil {
			return quadint.QuadInt{}, err
		}
		for n := 0; n < 3 && !(g.Reg() > 0 && g.Surd() >= 0); n++ {
			if g, err = g.Times(i); err != nil {
				return quadint.QuadInt{}, err
			}
		}
		return g, nil
	}
	if g.Reg() < 0 || (g.Reg() == 0 && g.Surd() < 0) {
		return g.Neg(), nil
	}
	return g, nil
}

// absInt64 returns |v|.
func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// mulCheckedE returns a·b and whether it stayed inside int64.
func mulCheckedE(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// floorDiv returns ⌊num/den⌋ for den > 0.
func floorDiv(num, den int64) int64 {
	q := num / den
	if num%den < 0 {
		q--
	}
	return q
}
