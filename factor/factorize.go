package factor

import (
	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
	"github.com/surdlab/quadring/unitclass"
)

// heegner lists the radicands of the nine imaginary quadratic fields with
// class number one (Baker–Heegner–Stark).
var heegner = map[int64]bool{
	-1: true, -2: true, -3: true, -7: true, -11: true,
	-19: true, -43: true, -67: true, -163: true,
}

// unitCache memoizes fundamental units and class numbers across calls;
// both feed the real-ring divisor search and the unique-factorization
// check.
var unitCache = unitclass.NewCache()

// PrimeFactors factors n into primes, last unit factor included when the
// prime parts alone miss the sign or associate. Factoring 1 yields an
// empty slice; factoring any other unit yields the unit alone.
//
// The call refuses rings without unique factorization: unless n itself is
// prime, it fails with a *NonUniqueFactorizationError carrying n, which
// the caller may hand to FactorizeAnyway.
func PrimeFactors(n quadint.QuadInt) ([]quadint.QuadInt, error) {
	if n.Ring() == nil {
		return nil, quadint.ErrNilRing
	}
	if n.Ring().Variant() == ring.IllDefined {
		return nil, ring.ErrUnsupportedDomain
	}
	if n.IsZero() {
		return nil, ErrZeroValue
	}
	if n.IsUnit() {
		if isOne(n) {
			return []quadint.QuadInt{}, nil
		}
		return []quadint.QuadInt{n}, nil
	}
	ufd, err := isUFD(n.Ring())
	if err != nil {
		return nil, err
	}
	if !ufd {
		prime, err := IsPrime(n)
		if err != nil {
			return nil, err
		}
		if prime {
			return []quadint.QuadInt{n}, nil
		}
		return nil, &NonUniqueFactorizationError{N: n}
	}
	return splitOff(n)
}

// FactorizeAnyway is the best-effort continuation of a failed
// PrimeFactors. It returns some factorization of the carried number into
// irreducibles whose product is exactly that number, then appends the
// unit −1 twice (an even count, so the product is untouched) to mark
// the result as non-canonical.
func FactorizeAnyway(e *NonUniqueFactorizationError) ([]quadint.QuadInt, error) {
	if e == nil {
		return nil, ErrNoFallbackState
	}
	factors, err := splitOff(e.N)
	if err != nil {
		return nil, err
	}
	negOne, err := quadint.New(-1, 0, e.N.Ring(), 1)
	if err != nil {
		return nil, err
	}
	return append(factors, negOne, negOne), nil
}

// splitOff greedily divides out least-norm irreducible divisors until a
// unit remains. The trailing unit is kept when it is not 1, preserving
// the exact-product invariant.
func splitOff(n quadint.QuadInt) ([]quadint.QuadInt, error) {
	var out []quadint.QuadInt
	rest := n
	for {
		if rest.IsUnit() {
			if !isOne(rest) {
				out = append(out, rest)
			}
			return out, nil
		}
		f, ok, err := smallestDivisor(rest)
		if err != nil {
			return nil, err
		}
		if !ok {
			// rest is irreducible.
			return append(out, rest), nil
		}
		out = append(out, f)
		if rest, err = rest.Div(f); err != nil {
			return nil, err
		}
	}
}

// isUFD reports whether the ring has unique factorization (class number
// one). Imaginary rings are settled by the Heegner list; real rings go
// through the class-number computation.
func isUFD(r *ring.Ring) (bool, error) {
	switch r.Variant() {
	case ring.Imaginary:
		return heegner[r.Radicand()], nil
	case ring.Real:
		h, err := unitCache.ClassNumber(r)
		if err != nil {
			return false, err
		}
		return h == 1, nil
	default:
		return false, ring.ErrUnsupportedDomain
	}
}

// isOne reports whether q is exactly 1.
func isOne(q quadint.QuadInt) bool {
	return q.Reg() == 1 && q.Surd() == 0 && q.Denom() == 1
}
