package classify

import (
	"errors"
	"math"

	"github.com/surdlab/quadring/euclid"
	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
	"github.com/surdlab/quadring/symbols"
)

// Sentinel errors for prime grouping.
var (
	// ErrNegativeBound indicates a negative initial primePi.
	ErrNegativeBound = errors.New("classify: primePi must be non-negative")
	// ErrNegativeIncrement indicates RaisePrimePi with a negative increment.
	ErrNegativeIncrement = errors.New("classify: primePi increment must be non-negative")
)

// witnessSurdCap bounds the surd coefficient of the witness search in
// real rings, where the norm form is indefinite.
const witnessSurdCap = 64

// Grouping partitions the rational primes up to PrimePi by their
// behavior in one quadratic ring. The bound only ever grows, so entries
// are classified exactly once.
type Grouping struct {
	ring     *ring.Ring
	primePi  int64
	inerts   []int64
	splits   map[int64]quadint.QuadInt
	ramified map[int64]quadint.QuadInt
}

// NewGrouping classifies every rational prime p ≤ primePi in r.
func NewGrouping(r *ring.Ring, primePi int64) (*Grouping, error) {
	if r == nil {
		return nil, quadint.ErrNilRing
	}
	if r.Variant() == ring.IllDefined {
		return nil, ring.ErrUnsupportedDomain
	}
	if primePi < 0 {
		return nil, ErrNegativeBound
	}
	g := &Grouping{
		ring:     r,
		splits:   make(map[int64]quadint.QuadInt),
		ramified: make(map[int64]quadint.QuadInt),
	}
	g.extend(1, primePi)
	g.primePi = primePi
	return g, nil
}

// Ring reports the ring the grouping describes.
func (g *Grouping) Ring() *ring.Ring { return g.ring }

// PrimePi reports the current classification bound.
func (g *Grouping) PrimePi() int64 { return g.primePi }

// RaisePrimePi extends the bound by increment, classifying only the
// primes in the newly covered range.
func (g *Grouping) RaisePrimePi(increment int64) error {
	if increment < 0 {
		return ErrNegativeIncrement
	}
	g.extend(g.primePi, g.primePi+increment)
	g.primePi += increment
	return nil
}

// Inerts lists the inert primes ≤ PrimePi, ascending. The slice is a copy.
func (g *Grouping) Inerts() []int64 {
	return append([]int64(nil), g.inerts...)
}

// Splits maps each split prime ≤ PrimePi to one witnessing factor; the
// conjugate witness is implicit. The map is a copy.
func (g *Grouping) Splits() map[int64]quadint.QuadInt {
	out := make(map[int64]quadint.QuadInt, len(g.splits))
	for p, w := range g.splits {
		out[p] = w
	}
	return out
}

// Ramifieds maps each ramified prime ≤ PrimePi to its ramifying factor.
// The map is a copy.
func (g *Grouping) Ramifieds() map[int64]quadint.QuadInt {
	out := make(map[int64]quadint.QuadInt, len(g.ramified))
	for p, w := range g.ramified {
		out[p] = w
	}
	return out
}

// extend classifies the primes in (lo, hi].
func (g *Grouping) extend(lo, hi int64) {
	disc := g.ring.Discriminant()
	for p := lo + 1; p <= hi; p++ {
		if !symbols.IsRationalPrime(p) {
			continue
		}
		switch symbols.Kronecker(disc, p) {
		case -1:
			g.inerts = append(g.inerts, p)
		case 1:
			g.splits[p] = g.witness(p)
		case 0:
			g.ramified[p] = g.witness(p)
		}
	}
}

// witness locates an element of norm ±p that divides p, i.e. a generator
// of a prime ideal above p. When none exists in the search range (the
// ideal is non-principal, or out of reach in a real ring) the rational p
// itself is stored as a self-witness, recognizable by its zero surd.
func (g *Grouping) witness(p int64) quadint.QuadInt {
	r := g.ring
	pe, perr := quadint.New(p, 0, r, 1)
	try := func(a, b, den int64) (quadint.QuadInt, bool) {
		w, err := quadint.New(a, b, r, den)
		if err != nil || perr != nil {
			return quadint.QuadInt{}, false
		}
		if ok, err := euclid.IsDivisibleBy(pe, w); err != nil || !ok {
			return quadint.QuadInt{}, false
		}
		return w, true
	}

	d := r.Radicand()
	if d < 0 {
		ad := -d
		for b := int64(1); ad*b*b <= p; b++ {
			rem := p - ad*b*b
			if a := isqrt(rem); a*a == rem {
				if w, ok := try(a, b, 1); ok {
					return w
				}
			}
		}
		if r.HalfIntegers() {
			for v := int64(1); ad*v*v <= 4*p; v += 2 {
				rem := 4*p - ad*v*v
				if u := isqrt(rem); u*u == rem && u&1 == 1 {
					if w, ok := try(u, v, 2); ok {
						return w
					}
				}
			}
		}
		return pe
	}
	for b := int64(1); b <= witnessSurdCap; b++ {
		db2 := d * b * b
		for _, target := range [2]int64{db2 - p, db2 + p} {
			if target < 0 {
				continue
			}
			if a := isqrt(target); a*a == target {
				if w, ok := try(a, b, 1); ok {
					return w
				}
			}
		}
	}
	if r.HalfIntegers() {
		for v := int64(1); v <= witnessSurdCap; v += 2 {
			dv2 := d * v * v
			for _, target := range [2]int64{dv2 - 4*p, dv2 + 4*p} {
				if target < 0 {
					continue
				}
				if u := isqrt(target); u*u == target && u&1 == 1 {
					if w, ok := try(u, v, 2); ok {
						return w
					}
				}
			}
		}
	}
	return pe
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
