// Package ring identifies quadratic fields ℚ(√d) and the rings of
// integers inside them.
//
// What:
//
//   - Ring is an immutable descriptor: a squarefree radicand d plus a
//     Real/Imaginary variant tag, created once per field of interest and
//     referenced (never copied) by every value in that field.
//   - Derives whether the ring admits half-integers (d ≡ 1 mod 4), and its
//     discriminant (d, or 4d otherwise).
//   - IsSquarefree and Kernel expose the squarefree machinery used when two
//     pure surds from different fields are multiplied together.
//
// Why:
//
//   - Every quadint.QuadInt carries a *Ring; ring-membership invariants
//     (parity of half-integer coefficients, squarefree radicand) are all
//     anchored here.
//   - The analysis layers (euclid, factor, classify, unitclass) dispatch on
//     the variant tag instead of runtime type inspection.
//
// Complexity:
//
//   - New:          O(√|d|) (squarefree trial division), Memory: O(1).
//   - Kernel:       O(√|n|), Memory: O(1).
//   - Accessors:    O(1).
//
// Errors:
//
//   - ErrZeroRadicand: radicand 0 defines no quadratic field.
//   - ErrDegenerateRadicand: radicand 1 has a rational square root.
//   - ErrRadicandRange: |radicand| exceeds the representable bound.
//   - ErrNotSquarefree: radicand divisible by a square > 1.
//   - ErrVariantMismatch: variant tag contradicts the radicand sign.
package ring
