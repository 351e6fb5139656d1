// Package factor provides irreducibility and primality predicates plus
// factorization into irreducibles for quadratic integers.
//
// What:
//
//   - IsIrreducible(n): no factorization into two non-units exists.
//     Decided by searching for a divisor of |norm| between 2 and √|norm|
//     and enumerating the ring elements carrying each candidate norm. In
//     real rings the enumeration runs to a coefficient bound derived from
//     the fundamental unit, which every minimal associate satisfies, so a
//     completed search is exhaustive; a verdict is never a guess.
//   - IsPrime(n): the stronger ideal-theoretic condition. A rational prime
//     p is prime iff it is inert (Kronecker of the field discriminant at p
//     is −1); a non-rational element is prime iff its norm is a rational
//     prime, or the square of an inert prime it is a unit multiple of.
//   - PrimeFactors(n): recursive division by least-norm irreducible
//     divisors. Only unique-factorization rings qualify; elsewhere the
//     call fails with a *NonUniqueFactorizationError carrying n.
//   - FactorizeAnyway(err): best-effort continuation returning some
//     factorization into irreducibles whose product is exactly n, with the
//     unit −1 appended an even number of extra times to mark the result as
//     non-canonical.
//
// Why:
//
//   - Irreducible and prime part ways outside unique-factorization rings:
//     in ℤ[√−5] the element 3 is irreducible yet 3 | (1+√−5)(1−√−5)
//     without dividing either factor. Conflating the two predicates is the
//     classic source of silently wrong factorizations, so each is computed
//     from first principles rather than one from the other.
//   - Whether a ring has unique factorization is the class-number-one
//     question: imaginary rings are checked against the nine Heegner
//     radicands, real rings through the class-number computation.
//
// Complexity:
//
//   - IsIrreducible / factorization step: O(√|N| · √(|N|/|d|)) element
//     trials per divisor norm, with |N| the absolute norm.
//   - IsPrime: O(√|N|) rational-primality trial division.
//
// Errors:
//
//   - ErrZeroValue: zero has no factorization.
//   - ErrNonUniqueFactorization: wrapped by *NonUniqueFactorizationError.
//   - ErrNoFallbackState: FactorizeAnyway invoked with a nil error value.
//   - ErrDivisorRange: the real-ring divisor search cannot be completed
//     within the supported enumeration range, so no verdict is given.
//   - Ring and arithmetic errors from ring/quadint/unitclass propagate,
//     unitclass.ErrUnitRange included.
package factor
