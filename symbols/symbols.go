// Package symbols: Legendre, Jacobi and Kronecker symbol evaluation.
package symbols

import "errors"

// Sentinel errors for symbol evaluation.
var (
	// ErrEvenModulus indicates a Legendre or Jacobi modulus divisible by 2.
	ErrEvenModulus = errors.New("symbols: modulus must be odd")
	// ErrNonPositiveModulus indicates a Jacobi modulus ≤ 0.
	ErrNonPositiveModulus = errors.New("symbols: modulus must be positive")
	// ErrNotPrime indicates a composite Legendre modulus.
	ErrNotPrime = errors.New("symbols: modulus must be an odd prime")
)

// Legendre evaluates the Legendre symbol (a/p) for an odd prime p.
// The result is +1 when a is a nonzero quadratic residue mod p, −1 when a
// is a non-residue, and 0 when p divides a.
func Legendre(a, p int64) (int, error) {
	if p&1 == 0 {
		return 0, ErrEvenModulus
	}
	if p < 3 || !IsRationalPrime(p) {
		return 0, ErrNotPrime
	}
	return Jacobi(a, p)
}

// Jacobi evaluates the Jacobi symbol (a/n) for odd positive n via
// quadratic reciprocity. For prime n it coincides with Legendre.
func Jacobi(a, n int64) (int, error) {
	if n <= 0 {
		return 0, ErrNonPositiveModulus
	}
	if n&1 == 0 {
		return 0, ErrEvenModulus
	}
	a %= n
	if a < 0 {
		a += n
	}
	result := 1
	for a != 0 {
		for a&1 == 0 {
			a >>= 1
			if r := n & 7; r == 3 || r == 5 {
				result = -result
			}
		}
		a, n = n, a
		if a&3 == 3 && n&3 == 3 {
			result = -result
		}
		a %= n
	}
	if n == 1 {
		return result, nil
	}
	return 0, nil
}

// Kronecker evaluates the Kronecker symbol (a/n), total over all integers.
func Kronecker(a, n int64) int {
	if n == 0 {
		if a == 1 || a == -1 {
			return 1
		}
		return 0
	}
	result := 1
	if n < 0 {
		n = -n
		if a < 0 {
			result = -result
		}
	}
	if n&1 == 0 {
		if a&1 == 0 {
			return 0
		}
		// (a/2) = +1 for a ≡ ±1 (mod 8), −1 for a ≡ ±3 (mod 8).
		for n&1 == 0 {
			n >>= 1
			if m := ((a % 8) + 8) % 8; m == 3 || m == 5 {
				result = -result
			}
		}
	}
	if n == 1 {
		return result
	}
	j, _ := Jacobi(a, n)
	if j == 0 {
		return 0
	}
	return result * j
}

// IsRationalPrime reports whether |n| is a rational prime, by
// deterministic 6k±1 trial division.
func IsRationalPrime(n int64) bool {
	if n < 0 {
		n = -n
	}
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for p := int64(5); p*p <= n; p += 6 {
		if n%p == 0 || n%(p+2) == 0 {
			return false
		}
	}
	return true
}
