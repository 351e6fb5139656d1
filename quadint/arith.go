// Package quadint: the four ring operations and their rational-integer
// fast paths.
//
// Algorithm outline (Div):
//  1. Rationalize a/b by the conjugate: a/b = db·a·conj(b) / (da·normnum(b)).
//  2. Reduce the three-term candidate (X + Y√d)/D by gcd(X, Y, D), D > 0.
//  3. D == 1 is an exact value; D == 2 is exact only in half-integer rings
//     with both coefficients odd; anything else is a NotDivisibleError
//     carrying the reduced remainder as evidence.
package quadint

import (
	"errors"

	"github.com/surdlab/quadring/ring"
)

// Plus returns q + o. Operands from different rings combine only when one
// of them is a rational integer; otherwise the sum has degree 4 and the
// call fails with ErrDegreeOverflow.
func (q QuadInt) Plus(o QuadInt) (QuadInt, error) {
	r, err := additiveRing(q, o)
	if err != nil {
		return QuadInt{}, err
	}
	a1, a2, da := q.Reg(), q.Surd(), q.Denom()
	b1, b2, db := o.Reg(), o.Surd(), o.Denom()
	if da != db {
		// Double the denominator-1 side before combining.
		if da == 1 {
			a1, a2, da = 2*a1, 2*a2, 2
		} else {
			b1, b2, db = 2*b1, 2*b2, 2
		}
	}
	x, ok := addChecked(a1, b1)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	y, ok := addChecked(a2, b2)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	return New(x, y, r, da)
}

// Minus returns q − o under the same ring rules as Plus.
func (q QuadInt) Minus(o QuadInt) (QuadInt, error) {
	return q.Plus(o.Neg())
}

// Times returns q × o. Mixed-ring products fail with ErrDegreeOverflow
// unless one operand is rational, or both are pure surds — in the latter
// case the radicands multiply, the product is reduced to its squarefree
// kernel, and the result ring is synthesized on the fly.
func (q QuadInt) Times(o QuadInt) (QuadInt, error) {
	if q.ring == nil || o.ring == nil {
		return QuadInt{}, ErrNilRing
	}
	switch {
	case q.ring.Equal(o.ring):
		return mulSameRing(q, o, q.ring)
	case q.surd == 0:
		return scalarTimes(o, q.Reg())
	case o.surd == 0:
		return scalarTimes(q, o.Reg())
	case q.reg == 0 && o.reg == 0:
		return crossSurdTimes(q, o)
	default:
		return QuadInt{}, ErrDegreeOverflow
	}
}

// Div returns q ÷ o when the quotient is an exact quadratic integer.
// Division by zero is always ErrDivisionByZero; an inexact quotient is a
// *NotDivisibleError carrying the fractional remainder. The mixed-ring
// rules mirror Times, including the pure-surd exception.
func (q QuadInt) Div(o QuadInt) (QuadInt, error) {
	if q.ring == nil || o.ring == nil {
		return QuadInt{}, ErrNilRing
	}
	if o.IsZero() {
		return QuadInt{}, ErrDivisionByZero
	}
	switch {
	case o.surd == 0:
		// Rational divisor: valid against any ring, result stays in q's ring.
		return q.DivInt(o.Reg())
	case q.ring.Equal(o.ring):
		return divSameRing(q, o, q.ring)
	case q.surd == 0:
		// Rational dividend promoted into the divisor's ring.
		promoted := QuadInt{reg: q.reg, denom: 1, ring: o.ring}
		return divSameRing(promoted, o, o.ring)
	case q.reg == 0 && o.reg == 0:
		return crossSurdDiv(q, o)
	default:
		return QuadInt{}, ErrDegreeOverflow
	}
}

// PlusInt returns q + n without ring reconciliation.
func (q QuadInt) PlusInt(n int64) (QuadInt, error) {
	if q.ring == nil {
		return QuadInt{}, ErrNilRing
	}
	t, ok := mulChecked(n, q.Denom())
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	x, ok := addChecked(q.Reg(), t)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	return New(x, q.Surd(), q.ring, q.Denom())
}

// MinusInt returns q − n without ring reconciliation.
func (q QuadInt) MinusInt(n int64) (QuadInt, error) {
	if q.ring == nil {
		return QuadInt{}, ErrNilRing
	}
	t, ok := mulChecked(n, q.Denom())
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	x, ok := subChecked(q.Reg(), t)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	return New(x, q.Surd(), q.ring, q.Denom())
}

// TimesInt returns q × n without ring reconciliation.
func (q QuadInt) TimesInt(n int64) (QuadInt, error) {
	if q.ring == nil {
		return QuadInt{}, ErrNilRing
	}
	return scalarTimes(q, n)
}

// DivInt returns q ÷ n when exact; n must be nonzero.
func (q QuadInt) DivInt(n int64) (QuadInt, error) {
	if q.ring == nil {
		return QuadInt{}, ErrNilRing
	}
	if n == 0 {
		return QuadInt{}, ErrDivisionByZero
	}
	d, ok := mulChecked(q.Denom(), n)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	return reduceExact(q.Reg(), q.Surd(), d, q.ring)
}

// additiveRing resolves the result ring for Plus/Minus.
func additiveRing(q, o QuadInt) (*ring.Ring, error) {
	switch {
	case q.ring == nil || o.ring == nil:
		return nil, ErrNilRing
	case q.ring.Equal(o.ring):
		return q.ring, nil
	case q.surd == 0:
		return o.ring, nil
	case o.surd == 0:
		return q.ring, nil
	default:
		return nil, ErrDegreeOverflow
	}
}

// mulSameRing multiplies two values sharing ring r.
func mulSameRing(q, o QuadInt, r *ring.Ring) (QuadInt, error) {
	d := r.Radicand()
	a1, a2, da := q.Reg(), q.Surd(), q.Denom()
	b1, b2, db := o.Reg(), o.Surd(), o.Denom()

	t, ok := mulChecked(a2*b2, d)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	x, ok := addChecked(a1*b1, t)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	y, ok := addChecked(a1*b2, a2*b1)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	den := da * db
	if den == 4 {
		// Ring closure guarantees both numerators are even here.
		x, y, den = x/2, y/2, 2
	}
	return New(x, y, r, den)
}

// scalarTimes multiplies a value by a rational integer.
func scalarTimes(v QuadInt, n int64) (QuadInt, error) {
	x, ok := mulChecked(v.Reg(), n)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	y, ok := mulChecked(v.Surd(), n)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	return New(x, y, v.ring, v.Denom())
}

// crossSurdTimes multiplies two pure surds from different rings:
// a√d₁ · b√d₂ = ab√(d₁d₂), reduced to a squarefree radicand. Two
// imaginary surds flip the sign (i²=−1) and land in a real ring.
func crossSurdTimes(q, o QuadInt) (QuadInt, error) {
	d1, d2 := q.ring.Radicand(), o.ring.Radicand()
	m, ok := mulChecked(d1, d2)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	c := q.Surd() * o.Surd()
	if d1 < 0 && d2 < 0 {
		c = -c
	}
	s, k := ring.Kernel(m)
	c2, ok := mulChecked(c, k)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	if s == 1 {
		// Perfect-square product: the result is a rational integer.
		return New(c2, 0, q.ring, 1)
	}
	rr, err := ring.New(s, s < 0)
	if err != nil {
		if errors.Is(err, ring.ErrRadicandRange) {
			return QuadInt{}, ErrArithmeticOverflow
		}
		return QuadInt{}, err
	}
	return New(0, c2, rr, 1)
}

// crossSurdDiv divides pure surds from different rings:
// a√d₁ / b√d₂ = a√d₁·b√d₂ / (b²d₂).
func crossSurdDiv(q, o QuadInt) (QuadInt, error) {
	num, err := crossSurdTimes(q, o)
	if err != nil {
		return QuadInt{}, err
	}
	den, ok := mulChecked(o.Surd()*o.Surd(), o.ring.Radicand())
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	d, ok := mulChecked(num.Denom(), den)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	return reduceExact(num.Reg(), num.Surd(), d, num.Ring())
}

// divSameRing rationalizes q/o by the conjugate of o.
func divSameRing(q, o QuadInt, r *ring.Ring) (QuadInt, error) {
	d := r.Radicand()
	a1, a2, da := q.Reg(), q.Surd(), q.Denom()
	b1, b2, db := o.Reg(), o.Surd(), o.Denom()

	t, ok := mulChecked(a2*b2, d)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	x, ok := subChecked(a1*b1, t)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	x, ok = mulChecked(x, db)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	y, ok := subChecked(a2*b1, a1*b2)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	y, ok = mulChecked(y, db)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	nn, ok := mulChecked(b2*b2, d)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	nn, ok = subChecked(b1*b1, nn)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	den, ok := mulChecked(da, nn)
	if !ok {
		return QuadInt{}, ErrArithmeticOverflow
	}
	if den == 0 {
		return QuadInt{}, ErrDivisionByZero
	}
	return reduceExact(x, y, den, r)
}

// reduceExact reduces the candidate (x + y√d)/den to an exact value, or
// reports the reduced remainder through a NotDivisibleError.
func reduceExact(x, y, den int64, r *ring.Ring) (QuadInt, error) {
	if den < 0 {
		x, y, den = -x, -y, -den
	}
	g := gcd64(gcd64(x, y), den)
	if g > 1 {
		x, y, den = x/g, y/g, den/g
	}
	switch {
	case den == 1:
		return New(x, y, r, 1)
	case den == 2 && r.HalfIntegers() && x&1 != 0 && y&1 != 0:
		return New(x, y, r, 2)
	default:
		return QuadInt{}, &NotDivisibleError{RegNum: x, SurdNum: y, Den: den, Ring: r}
	}
}
