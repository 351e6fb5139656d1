// Package quadint implements exact quadratic integers — values of the
// form (a + b√d)/c with c ∈ {1, 2} — and their ring arithmetic.
//
// What:
//
//   - QuadInt is an immutable value: int32 regular and surd coefficients,
//     a denominator in {1, 2}, and a *ring.Ring it belongs to.
//   - Plus, Minus, Times and Div construct fresh values and never mutate;
//     each has a rational-integer fast path (PlusInt, …) that skips ring
//     reconciliation, since a rational integer belongs to every ring.
//   - Norm, Trace, Conjugate, Degree and the unit/zero predicates expose
//     the read-only surface consumed by formatting and analysis layers.
//
// Why:
//
//   - Exactness: every intermediate is computed in int64 and range-checked
//     back into int32 before it is stored; an out-of-range intermediate
//     surfaces as ErrArithmeticOverflow instead of wrapping silently.
//   - Ring discipline: combining values whose radicands differ would need a
//     degree-4 number, which this engine cannot represent; those calls fail
//     with ErrDegreeOverflow. The single exception is a product or quotient
//     of two pure surds, where the radicands multiply and the result ring
//     is synthesized after squarefree reduction.
//
// Construction invariants:
//
//   - denom == 2 only in half-integer rings and only with regular and surd
//     coefficients of equal (odd) parity; two even coefficients over 2 are
//     normalized to halved coefficients over 1.
//   - Every constructed value has an int64-representable norm.
//
// Complexity: all operations O(1) (plus O(√m) squarefree reduction on the
// pure-surd cross-ring path), Memory O(1).
//
// Errors:
//
//   - ErrNilRing, ErrBadDenominator, ErrHalfDenomNotAllowed,
//     ErrParityMismatch: construction contract violations.
//   - ErrDegreeOverflow: operands from incompatible rings.
//   - ErrArithmeticOverflow: a coefficient or norm left the representable range.
//   - ErrDivisionByZero: Div or DivInt with a zero divisor.
//   - ErrNotDivisible: quotient is not an exact quadratic integer; the
//     returned *NotDivisibleError carries the fractional remainder.
package quadint
