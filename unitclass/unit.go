package unitclass

import (
	"math"

	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
)

// FundamentalUnit searches for the smallest unit greater than 1 of a real
// quadratic ring: the minimal solution of x² − d·y² = ±1 on the integer
// grid, interleaved with x² − d·y² = ±4 (x, y odd) on the half grid when
// the ring has half-integers. Surd coefficients are tried in increasing
// half-steps, so the first hit is the fundamental unit.
//
// ok == false reports that no unit fits the representable coefficient
// range; the unit group is still infinite, just out of reach.
func FundamentalUnit(r *ring.Ring) (quadint.QuadInt, bool, error) {
	if r == nil {
		return quadint.QuadInt{}, false, quadint.ErrNilRing
	}
	switch r.Variant() {
	case ring.IllDefined:
		return quadint.QuadInt{}, false, ring.ErrUnsupportedDomain
	case ring.Imaginary:
		return quadint.QuadInt{}, false, ErrImaginaryRing
	}

	d := r.Radicand()
	half := r.HalfIntegers()
	// Keep d·y² (and so x²) within 2⁶² so coefficients stay representable.
	maxSurd := int64(quadint.MaxCoefficient) / (isqrt(d) + 1)

	// n counts surd numerators over denominator 2: odd n is the half-grid
	// coefficient n/2, even n the integer coefficient n/2.
	for n := int64(1); n <= 2*maxSurd; n++ {
		if n&1 == 1 {
			if !half || n > maxSurd {
				continue
			}
			dv2 := d * n * n
			for _, target := range [2]int64{dv2 - 4, dv2 + 4} {
				if u := isqrt(target); u > 0 && u*u == target && u&1 == 1 {
					if unit, err := quadint.New(u, n, r, 2); err == nil {
						return unit, true, nil
					}
				}
			}
			continue
		}
		b := n / 2
		db2 := d * b * b
		for _, target := range [2]int64{db2 - 1, db2 + 1} {
			if a := isqrt(target); a >= 0 && a*a == target {
				if unit, err := quadint.New(a, b, r, 1); err == nil {
					return unit, true, nil
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
