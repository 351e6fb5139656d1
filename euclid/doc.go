// Package euclid provides divisibility testing and a generalized
// Euclidean GCD over quadratic integers.
//
// What:
//
//   - IsDivisibleBy(a, b): true iff a/b is an exact quadratic integer.
//   - GCD(a, b): repeated division with nearest-integer quotients,
//     returning the canonical associate of the last nonzero remainder.
//   - GCDAnyway(err): the explicitly labeled best-effort continuation for
//     the non-Euclidean failure below.
//
// Why:
//
//   - Nearest-integer rounding only guarantees shrinking norms in
//     norm-Euclidean rings. Outside them the loop can stall or cycle; a
//     silently wrong GCD would poison every caller, so the failure is loud:
//     a *NonEuclideanError carrying both original operands.
//   - GCDAnyway keeps applying the same division step without the
//     termination guarantee. When the chain does reach a zero remainder the
//     result is a genuine common divisor and is returned canonically.
//     When it cannot, the candidate is returned with its regular part
//     forced negative, a sentinel callers can test for without a second
//     error type. The sentinel shadows a valid negative value; callers
//     that need the distinction must keep the error from GCD.
//
// Complexity:
//
//   - GCD: O(log min(|N(a)|, |N(b)|)) division steps in Euclidean rings,
//     each O(1); bounded by a fixed iteration cap otherwise.
//
// Errors:
//
//   - ErrBothZero: gcd(0, 0) is undefined.
//   - ErrNonEuclidean: wrapped by *NonEuclideanError; the ring is not
//     norm-Euclidean for these operands.
//   - ErrNoFallbackState: GCDAnyway invoked with a nil error value.
//   - quadint.ErrDivisionByZero: IsDivisibleBy with a zero divisor.
//   - Arithmetic errors from quadint (overflow, degree overflow) propagate
//     unchanged.
package euclid
