// Package quadring is an exact-arithmetic playground for quadratic
// integers — numbers of the form (a + b√d)/c with c ∈ {1, 2} — and the
// number theory of the rings they live in.
//
// 🚀 What is quadring?
//
//	A pure-Go computational-algebra core that brings together:
//		• ring/      — quadratic-field descriptors (squarefree radicand, real/imaginary)
//		• quadint/   — immutable quadratic-integer values with exact +, −, ×, ÷
//		• symbols/   — Legendre, Jacobi and Kronecker quadratic-residue symbols
//		• euclid/    — divisibility and a generalized Euclidean GCD with an
//		               explicit non-Euclidean-domain escape hatch
//		• factor/    — irreducibility, primality and complete factorization with
//		               an explicit non-unique-factorization escape hatch
//		• classify/  — inert / split / ramified grouping of rational primes per ring
//		• unitclass/ — fundamental units (Pell), ideal class numbers, per-ring memos
//
// ✨ Why choose quadring?
//
//   - Exact by construction – no floating point anywhere, ever
//   - Loud failure – overflow, degree overflow and non-divisibility are
//     surfaced as typed errors, never silently wrapped answers
//   - Honest fallbacks – the algorithms that can legitimately fail outside
//     Euclidean/UFD rings carry their operands in the error and expose a
//     clearly labeled best-effort continuation
//   - Pure Go – no cgo, no hidden deps
//
// Quick taste:
//
//	zi, _ := ring.New(-1, true)              // ℤ[i]
//	a, _ := quadint.New(3, 1, zi, 1)         // 3+i
//	b, _ := quadint.New(1, 1, zi, 1)         // 1+i
//	q, _ := a.Div(b)                         // 2-i, exactly
//
// Values are immutable and cheap to copy. The only mutable state is the
// classification table in classify/, which is not safe for concurrent
// mutation, and the memo cache in unitclass/, which is.
package quadring
