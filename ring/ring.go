package ring

// New validates radicand and returns the descriptor of ℚ(√radicand).
// The imaginary flag must agree with the radicand sign: imaginary rings
// require radicand < 0, real rings require radicand > 1.
//
// Complexity: O(√|radicand|) (squarefree trial division).
func New(radicand int64, imaginary bool) (*Ring, error) {
	if radicand == 0 {
		return nil, ErrZeroRadicand
	}
	if radicand == 1 {
		return nil, ErrDegenerateRadicand
	}
	if radicand > MaxRadicand || radicand < -MaxRadicand {
		return nil, ErrRadicandRange
	}
	if imaginary != (radicand < 0) {
		return nil, ErrVariantMismatch
	}
	if !IsSquarefree(radicand) {
		return nil, ErrNotSquarefree
	}
	v := Real
	if imaginary {
		v = Imaginary
	}
	return &Ring{radicand: radicand, variant: v}, nil
}

// NewIllDefined returns a descriptor tagged IllDefined. Such rings exist
// only to exercise the unsupported-domain error path of the analysis
// layers; quadint arithmetic on their values remains purely symbolic.
func NewIllDefined(radicand int64) (*Ring, error) {
	if radicand == 0 {
		return nil, ErrZeroRadicand
	}
	if radicand > MaxRadicand || radicand < -MaxRadicand {
		return nil, ErrRadicandRange
	}
	return &Ring{radicand: radicand, variant: IllDefined}, nil
}

// Radicand reports the squarefree integer under the root.
func (r *Ring) Radicand() int64 { return r.radicand }

// Variant reports the variant tag.
func (r *Ring) Variant() Variant { return r.variant }

// Imaginary reports whether the ring is tagged Imaginary.
func (r *Ring) Imaginary() bool { return r.variant == Imaginary }

// HalfIntegers reports whether the ring of integers admits denominator-2
// elements, i.e. radicand ≡ 1 (mod 4). The congruence is evaluated
// mathematically, so negative radicands such as −7 qualify.
func (r *Ring) HalfIntegers() bool {
	return ((r.radicand%4)+4)%4 == 1
}

// Discriminant reports the field discriminant: radicand when the ring has
// half-integers, 4·radicand otherwise.
func (r *Ring) Discriminant() int64 {
	if r.HalfIntegers() {
		return r.radicand
	}
	return 4 * r.radicand
}

// Equal reports whether o describes the same field with the same variant.
func (r *Ring) Equal(o *Ring) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.radicand == o.radicand && r.variant == o.variant
}

// IsSquarefree reports whether n is divisible by no square greater than 1.
// Zero is not squarefree; ±1 are.
func IsSquarefree(n int64) bool {
	if n == 0 {
		return false
	}
	if n < 0 {
		n = -n
	}
	if n%4 == 0 {
		return false
	}
	if n%2 == 0 {
		n /= 2
	}
	for p := int64(3); p*p <= n; p += 2 {
		if n%(p*p) == 0 {
			return false
		}
		for n%p == 0 {
			n /= p
		}
	}
	return true
}

// Kernel decomposes n = k²·s with s squarefree and k ≥ 1, returning the
// squarefree kernel s (carrying the sign of n) and the square cofactor k.
// This is the reduction behind √m = k·√s when two pure surds multiply.
// Kernel(0) is (0, 1).
func Kernel(n int64) (s, k int64) {
	if n == 0 {
		return 0, 1
	}
	sign := int64(1)
	if n < 0 {
		sign = -1
		n = -n
	}
	s, k = 1, 1
	for n%2 == 0 {
		if n%4 == 0 {
			k *= 2
			n /= 4
		} else {
			s *= 2
			n /= 2
		}
	}
	for p := int64(3); p*p <= n; p++ {
		for n%(p*p) == 0 {
			k *= p
			n /= p * p
		}
		if n%p == 0 {
			s *= p
			n /= p
		}
	}
	// n is now 1 or a leftover prime factor.
	return sign * s * n, k
}
