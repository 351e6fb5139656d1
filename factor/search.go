package factor

import (
	"math"

	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
	"github.com/surdlab/quadring/unitclass"
)

// searchLimit is the largest surd-coefficient bound the divisor search
// will enumerate; past it the search fails with ErrDivisorRange.
const searchLimit = 1 << 22

// realSurdBound returns the surd-coefficient bound of the divisor search
// for |norm| == t in a real ring. Every element of norm ±t has a unit
// multiple x + y√d with √t ≤ |x + y√d| < ε·√t for the fundamental unit
// ε, and there |y| ≤ √t·(ε+1)/(2√d). An enumeration up to the bound is
// therefore exhaustive, and a completed search with no hit is a proof
// that no element of norm ±t exists.
func realSurdBound(r *ring.Ring, t int64) (int64, error) {
	u, ok, err := unitCache.Unit(r)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, unitclass.ErrUnitRange
	}
	sd := math.Sqrt(float64(r.Radicand()))
	eps := (float64(u.Reg()) + float64(u.Surd())*sd) / float64(u.Denom())
	bound := math.Sqrt(float64(t)) * (eps + 1) / (2 * sd)
	if bound > searchLimit {
		return 0, ErrDivisorRange
	}
	return int64(bound) + 2, nil
}

// normElements enumerates elements of r with |norm| == t, restricted to
// non-negative coefficients. Callers test conjugates and signs themselves;
// divisibility is insensitive to the sign of the divisor. For imaginary
// rings the enumeration is exhaustive outright (the norm form is positive
// definite); for real rings it is exhaustive up to the unit-derived
// coefficient bound, and fails with ErrDivisorRange when that bound
// cannot be enumerated.
func normElements(r *ring.Ring, t int64) ([]quadint.QuadInt, error) {
	var out []quadint.QuadInt
	add := func(a, b, den int64) {
		if w, err := quadint.New(a, b, r, den); err == nil {
			out = append(out, w)
		}
	}
	d := r.Radicand()
	if d < 0 {
		ad := -d
		for b := int64(0); ad*b*b <= t; b++ {
			rem := t - ad*b*b
			if a := isqrt(rem); a*a == rem {
				add(a, b, 1)
			}
		}
		if r.HalfIntegers() {
			for v := int64(1); ad*v*v <= 4*t; v += 2 {
				rem := 4*t - ad*v*v
				if u := isqrt(rem); u*u == rem && u&1 == 1 {
					add(u, v, 2)
				}
			}
		}
		return out, nil
	}
	bound, err := realSurdBound(r, t)
	if err != nil {
		return nil, err
	}
	for b := int64(0); b <= bound; b++ {
		db2 := d * b * b
		for _, target := range [2]int64{db2 + t, db2 - t} {
			if target < 0 {
				continue
			}
			if a := isqrt(target); a*a == target {
				add(a, b, 1)
			}
		}
	}
	if r.HalfIntegers() {
		// Half elements (u+v√d)/2 carry surd coefficient v/2.
		for v := int64(1); v <= 2*bound; v += 2 {
			dv2 := d * v * v
			for _, target := range [2]int64{dv2 + 4*t, dv2 - 4*t} {
				if target < 0 {
					continue
				}
				if u := isqrt(target); u*u == target && u&1 == 1 {
					add(u, v, 2)
				}
			}
		}
	}
	return out, nil
}

// smallestDivisor returns a least-norm non-unit proper divisor of n, or
// ok == false when n is irreducible. A least-norm proper divisor is
// itself irreducible, which is what makes greedy factorization sound.
func smallestDivisor(n quadint.QuadInt) (quadint.QuadInt, bool, error) {
	r := n.Ring()
	bigN := absInt64(n.Norm())
	for t := int64(2); t*t <= bigN; t++ {
		if bigN%t != 0 {
			continue
		}
		ws, err := normElements(r, t)
		if err != nil {
			return quadint.QuadInt{}, false, err
		}
		for _, w := range ws {
			for _, c := range [2]quadint.QuadInt{w, w.Conjugate()} {
				if _, err := n.Div(c); err == nil {
					return c, true, nil
				}
			}
		}
	}
	return quadint.QuadInt{}, false, nil
}

// isqrt returns ⌊√n⌋, or −1 for negative n.
func isqrt(n int64) int64 {
	if n < 0 {
		return -1
	}
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// absInt64 returns |v|.
func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
