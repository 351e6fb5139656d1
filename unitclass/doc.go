// Package unitclass computes fundamental units and ideal class numbers
// of quadratic rings, with a per-ring memoization cache.
//
// What:
//
//   - FundamentalUnit(ring): the smallest unit greater than 1 of a real
//     ring — the minimal solution of the Pell equation x² − d·y² = ±1 (or
//     its half-integer variant x² − d·y² = ±4). The search is bounded by
//     the representable coefficient range; ok == false means no solution
//     fits, not that none exists.
//   - ClassNumber(ring): the ideal class number h ≥ 1. A Minkowski-bound
//     prime classification settles h = 1 fast when every split and
//     ramified prime below the bound has a principal witness; otherwise
//     imaginary rings count reduced positive definite binary quadratic
//     forms of the field discriminant, and real rings count cycles of
//     reduced indefinite forms (the narrow class number h⁺), halved when
//     the fundamental unit has norm +1.
//   - Cache: lazy, concurrency-safe memoization of both results per ring.
//
// Why:
//
//   - Form counting is exact and needs no factorization: the class group
//     of discriminant D is in bijection with the reduced forms (D < 0) or
//     the reduction cycles (D > 0).
//   - The unit norm decides the narrow-to-wide quotient: h = h⁺ when
//     N(ε) = −1, h = h⁺/2 when N(ε) = +1.
//
// Complexity:
//
//   - FundamentalUnit: O(y) perfect-square probes up to the minimal
//     solution, which can be astronomically large (d = 61 already needs
//     seven digits); the coefficient bound keeps the loop finite.
//   - ClassNumber: O(|D|) form enumeration.
//
// Errors:
//
//   - ErrImaginaryRing: FundamentalUnit on an imaginary ring, whose unit
//     group is finite and has no fundamental unit in the Pell sense.
//   - ErrUnitRange: ClassNumber on a real ring whose fundamental unit
//     exceeds the representable range, leaving the narrow-to-wide
//     adjustment undecidable.
//   - ring.ErrUnsupportedDomain: ill-defined ring descriptors.
package unitclass
