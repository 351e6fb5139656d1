// Package symbols computes the classical quadratic-residue symbols over
// rational integers: Legendre, Jacobi and Kronecker.
//
// What:
//
//   - Legendre(a, p): p an odd prime; −1, 0 or +1.
//   - Jacobi(a, n): n odd and positive; multiplicative extension of Legendre.
//   - Kronecker(a, n): total extension to every integer n, including the
//     supplementary rules for 2, −1 and 0.
//   - IsRationalPrime(n): deterministic trial-division primality for the
//     moduli the other packages feed in.
//
// Why:
//
//   - Kronecker of the field discriminant classifies how a rational prime
//     behaves in a quadratic ring (inert/split/ramified); classify/ and
//     unitclass/ are built on top of these three functions.
//
// Complexity:
//
//   - Jacobi/Kronecker: O(log a · log n) via quadratic reciprocity,
//     no modular exponentiation and no overflow for any int64 input.
//   - Legendre: adds an O(√p) primality check of the modulus.
//
// Errors:
//
//   - ErrEvenModulus: Legendre/Jacobi with an even modulus.
//   - ErrNonPositiveModulus: Jacobi with n ≤ 0.
//   - ErrNotPrime: Legendre with a composite modulus.
package symbols
