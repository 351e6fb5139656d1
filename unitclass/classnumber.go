package unitclass

import (
	"math"

	"github.com/surdlab/quadring/classify"
	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
)

// ClassNumber computes the ideal class number h ≥ 1 of a quadratic ring.
//
// When every split and ramified prime up to the Minkowski bound carries a
// principal witness, the class group has only trivial generators and
// h = 1 without any form counting. Otherwise imaginary discriminants
// count reduced positive definite forms, and real discriminants count
// reduction cycles of indefinite forms (h⁺), halved when the fundamental
// unit has norm +1.
func ClassNumber(r *ring.Ring) (int, error) {
	if r == nil {
		return 0, quadint.ErrNilRing
	}
	if r.Variant() == ring.IllDefined {
		return 0, ring.ErrUnsupportedDomain
	}
	d := r.Discriminant()
	if smallPrimesPrincipal(r, d) {
		return 1, nil
	}
	if d < 0 {
		return reducedFormCount(d), nil
	}
	hPlus := reductionCycleCount(d)
	u, ok, err := FundamentalUnit(r)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrUnitRange
	}
	if u.Norm() == -1 {
		return hPlus, nil
	}
	return hPlus / 2, nil
}

// smallPrimesPrincipal reports whether every split and ramified prime up
// to the Minkowski bound has a genuine (non-rational) witness. Those
// witnesses generate the whole class group, so principality of all of
// them settles h = 1. A self-witness is inconclusive, not a proof of
// h > 1: the caller must fall through to form counting.
func smallPrimesPrincipal(r *ring.Ring, d int64) bool {
	var bound int64
	if d < 0 {
		bound = int64(2.0 / math.Pi * math.Sqrt(float64(-d)))
	} else {
		bound = isqrt(d) / 2
	}
	g, err := classify.NewGrouping(r, bound)
	if err != nil {
		return false
	}
	for _, w := range g.Splits() {
		if w.Surd() == 0 {
			return false
		}
	}
	for _, w := range g.Ramifieds() {
		if w.Surd() == 0 {
			return false
		}
	}
	return true
}

// reducedFormCount counts the reduced positive definite binary quadratic
// forms ax² + bxy + cy² of discriminant d < 0: those with −a < b ≤ a ≤ c
// and b ≥ 0 whenever a == c. Each ideal class has exactly one.
func reducedFormCount(d int64) int {
	count := 0
	for a := int64(1); 3*a*a <= -d; a++ {
		for b := -a + 1; b <= a; b++ {
			if (b*b-d)%(4*a) != 0 {
				continue
			}
			c := (b*b - d) / (4 * a)
			if c < a {
				continue
			}
			if a == c && b < 0 {
				continue
			}
			count++
		}
	}
	return count
}

// qform is an integral binary quadratic form ax² + bxy + cy².
type qform struct {
	a, b, c int64
}

// reductionCycleCount counts the cycles of reduced indefinite forms of
// discriminant d > 0 under the reduction operator ρ. The cycle count is
// the narrow class number h⁺.
func reductionCycleCount(d int64) int {
	s := isqrt(d)
	var forms []qform
	for b := int64(1); b <= s; b++ {
		if (b*b-d)%4 != 0 {
			continue
		}
		m := (d - b*b) / 4 // = −ac > 0
		for a := int64(1); a <= m; a++ {
			if m%a != 0 {
				continue
			}
			c := -(m / a)
			if !indefReduced(a, b, d) {
				continue
			}
			forms = append(forms, qform{a, b, c}, qform{-a, b, -c})
		}
	}

	seen := make(map[qform]bool, len(forms))
	cycles := 0
	for _, f := range forms {
		if seen[f] {
			continue
		}
		cycles++
		for g := f; !seen[g]; g = rho(g, d, s) {
			seen[g] = true
		}
	}
	return cycles
}

// indefReduced reports the reduction condition √d − b < 2|a| < √d + b,
// evaluated in exact integer arithmetic (d is never a perfect square).
func indefReduced(a, b, d int64) bool {
	ta := 2 * a
	if ta < 0 {
		ta = -ta
	}
	if (ta+b)*(ta+b) <= d {
		return false
	}
	return ta-b < 0 || (ta-b)*(ta-b) < d
}

// rho is the reduction operator on indefinite forms: (a, b, c) maps to
// (c, b', (b'² − d)/(4c)) with b' ≡ −b (mod 2|c|) maximal below √d.
func rho(f qform, d, s int64) qform {
	cAbs := f.c
	if cAbs < 0 {
		cAbs = -cAbs
	}
	k := (s + f.b) / (2 * cAbs)
	b2 := -f.b + 2*cAbs*k
	return qform{f.c, b2, (b2*b2 - d) / (4 * f.c)}
}
