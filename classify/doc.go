// Package classify groups the rational primes of one quadratic ring into
// inert, split and ramified classes, memoizing the partition per ring.
//
// What:
//
//   - Grouping: per-ring classification of every rational prime up to a
//     monotonic PrimePi bound. Inert primes are listed bare; split and
//     ramified primes carry one witnessing factor each (the conjugate
//     witness is implicit).
//   - NewGrouping(ring, primePi) builds the partition; RaisePrimePi only
//     ever adds entries, never removes or reclassifies.
//
// Why:
//
//   - The class of p follows the Kronecker symbol of the field
//     discriminant at p: −1 inert, +1 split, 0 ramified. Using the
//     discriminant instead of the raw radicand keeps p = 2 correct in
//     every ring.
//   - A split or ramified prime ideal need not be principal; when no
//     element of norm ±p exists in the search range, the stored witness
//     falls back to the rational p itself. Callers can recognize the
//     fallback by its zero surd coefficient. In real rings the witness
//     search is capped, so large split primes can degrade to the
//     self-witness even when a generator exists; the fallback is a
//     "don't know", never a claim of non-principality.
//
// Complexity:
//
//   - NewGrouping / RaisePrimePi: O(π(primePi)) classifications, each
//     O(√p) primality trial division plus a bounded witness search.
//
// Errors:
//
//   - ErrNegativeBound: NewGrouping with primePi < 0.
//   - ErrNegativeIncrement: RaisePrimePi with a negative increment.
//   - ring.ErrUnsupportedDomain: ill-defined ring descriptors.
package classify
