// Package quadint: QuadInt value type, construction and sentinel errors.
package quadint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/surdlab/quadring/ring"
)

// Sentinel errors for quadratic-integer construction and arithmetic.
var (
	// ErrNilRing indicates a nil ring descriptor.
	ErrNilRing = errors.New("quadint: ring is nil")
	// ErrBadDenominator indicates a denominator outside {1, 2}.
	ErrBadDenominator = errors.New("quadint: denominator must be 1 or 2")
	// ErrHalfDenomNotAllowed indicates denominator 2 in a ring without half-integers.
	ErrHalfDenomNotAllowed = errors.New("quadint: denominator 2 requires a half-integer ring")
	// ErrParityMismatch indicates denominator 2 with coefficients of unequal parity.
	ErrParityMismatch = errors.New("quadint: half-integer coefficients must share parity")
	// ErrDegreeOverflow indicates operands from different rings whose exact
	// combination would be an algebraic number of degree 4.
	ErrDegreeOverflow = errors.New("quadint: result would leave the quadratic ring (degree overflow)")
	// ErrArithmeticOverflow indicates an intermediate or result left the
	// representable coefficient range.
	ErrArithmeticOverflow = errors.New("quadint: arithmetic overflow")
	// ErrDivisionByZero indicates division by the zero value.
	ErrDivisionByZero = errors.New("quadint: division by zero")
	// ErrNotDivisible indicates the quotient is not an exact quadratic
	// integer; returned wrapped inside a *NotDivisibleError.
	ErrNotDivisible = errors.New("quadint: not divisible")
)

// MaxCoefficient bounds |regular| and |surd| coefficients. The range is
// symmetric so that negation can never overflow.
const MaxCoefficient = math.MaxInt32

// QuadInt is an exact element (reg + surd·√d)/denom of one quadratic ring.
// The zero QuadInt (nil ring) is not a valid value; always construct
// through New or an arithmetic operation.
type QuadInt struct {
	reg   int32
	surd  int32
	denom int32
	ring  *ring.Ring
}

// NotDivisibleError reports an inexact division. The candidate quotient
// (RegNum + SurdNum·√d)/Den, reduced to lowest terms with Den > 2 or of
// wrong parity, is carried as evidence so callers can judge
// near-divisibility. It wraps ErrNotDivisible for errors.Is matching.
type NotDivisibleError struct {
	RegNum  int64
	SurdNum int64
	Den     int64
	Ring    *ring.Ring
}

// Error implements the error interface.
func (e *NotDivisibleError) Error() string {
	return fmt.Sprintf("quadint: not divisible: remainder (%d + %d*sqrt(%d))/%d",
		e.RegNum, e.SurdNum, e.Ring.Radicand(), e.Den)
}

// Unwrap lets errors.Is(err, ErrNotDivisible) match.
func (e *NotDivisibleError) Unwrap() error { return ErrNotDivisible }

// New constructs (reg + surd·√d)/denom in r, normalizing the denominator
// and enforcing the half-integer parity invariant. A denominator of 2
// with two even coefficients normalizes to halved coefficients over 1.
func New(reg, surd int64, r *ring.Ring, denom int64) (QuadInt, error) {
	if r == nil {
		return QuadInt{}, ErrNilRing
	}
	if denom != 1 && denom != 2 {
		return QuadInt{}, ErrBadDenominator
	}
	if denom == 2 {
		regOdd, surdOdd := reg&1 != 0, surd&1 != 0
		switch {
		case !regOdd && !surdOdd:
			reg, surd, denom = reg/2, surd/2, 1
		case regOdd != surdOdd:
			return QuadInt{}, ErrParityMismatch
		case !r.HalfIntegers():
			return QuadInt{}, ErrHalfDenomNotAllowed
		}
	}
	if reg > MaxCoefficient || reg < -MaxCoefficient ||
		surd > MaxCoefficient || surd < -MaxCoefficient {
		return QuadInt{}, ErrArithmeticOverflow
	}
	if _, ok := normInt64(reg, surd, denom, r.Radicand()); !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	return QuadInt{reg: int32(reg), surd: int32(surd), denom: int32(denom), ring: r}, nil
}

// normInt64 computes (reg² − surd²·d)/denom² in checked int64 arithmetic.
func normInt64(reg, surd, denom, d int64) (int64, bool) {
	s2 := surd * surd // |surd| ≤ 2³¹, so this fits
	m, ok := mulChecked(s2, d)
	if !ok {
		return 0, false
	}
	n, ok := subChecked(reg*reg, m)
	if !ok {
		return 0, false
	}
	return n / (denom * denom), true
}

// Reg reports the regular (rational) coefficient numerator.
func (q QuadInt) Reg() int64 { return int64(q.reg) }

// Surd reports the surd coefficient numerator.
func (q QuadInt) Surd() int64 { return int64(q.surd) }

// Denom reports the denominator, 1 or 2.
func (q QuadInt) Denom() int64 { return int64(q.denom) }

// Ring reports the ring descriptor the value belongs to.
func (q QuadInt) Ring() *ring.Ring { return q.ring }

// Norm reports the product of the value and its conjugate, a rational
// integer. Representability in int64 is a construction invariant, so Norm
// is total on constructed values.
func (q QuadInt) Norm() int64 {
	n, _ := normInt64(int64(q.reg), int64(q.surd), int64(q.denom), q.ring.Radicand())
	return n
}

// Trace reports the sum of the value and its conjugate, 2·reg/denom.
func (q QuadInt) Trace() int64 {
	return 2 * int64(q.reg) / int64(q.denom)
}

// Degree reports the algebraic degree: 0 for zero, 1 for rational
// integers, 2 otherwise.
func (q QuadInt) Degree() int {
	switch {
	case q.reg == 0 && q.surd == 0:
		return 0
	case q.surd == 0:
		return 1
	default:
		return 2
	}
}

// Conjugate returns (reg − surd·√d)/denom.
func (q QuadInt) Conjugate() QuadInt {
	q.surd = -q.surd
	return q
}

// Neg returns the additive inverse.
func (q QuadInt) Neg() QuadInt {
	q.reg = -q.reg
	q.surd = -q.surd
	return q
}

// IsZero reports whether the value is 0.
func (q QuadInt) IsZero() bool { return q.reg == 0 && q.surd == 0 }

// IsUnit reports whether the value has norm ±1.
func (q QuadInt) IsUnit() bool {
	n := q.Norm()
	return n == 1 || n == -1
}

// Equal reports whether o is the same value in the same ring.
func (q QuadInt) Equal(o QuadInt) bool {
	return q.reg == o.reg && q.surd == o.surd && q.denom == o.denom &&
		q.ring.Equal(o.ring)
}

// String renders the value in surd notation: "3+2√-5", "-√2", "(1+√21)/2".
// Rational values print as plain integers.
func (q QuadInt) String() string {
	if q.ring == nil || q.surd == 0 {
		return strconv.FormatInt(int64(q.reg), 10)
	}
	var b strings.Builder
	if q.denom == 2 {
		b.WriteByte('(')
	}
	if q.reg != 0 {
		b.WriteString(strconv.FormatInt(int64(q.reg), 10))
		if q.surd > 0 {
			b.WriteByte('+')
		}
	}
	switch q.surd {
	case 1:
	case -1:
		b.WriteByte('-')
	default:
		b.WriteString(strconv.FormatInt(int64(q.surd), 10))
	}
	b.WriteString("√")
	b.WriteString(strconv.FormatInt(q.ring.Radicand(), 10))
	if q.denom == 2 {
		b.WriteString(")/2")
	}
	return b.String()
}
