package euclid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surdlab/quadring/euclid"
	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
)

// mustRing builds a ring descriptor or fails the test.
func mustRing(t testing.TB, radicand int64, imaginary bool) *ring.Ring {
	t.Helper()
	r, err := ring.New(radicand, imaginary)
	require.NoError(t, err)
	return r
}

// mustQI builds a quadratic integer or fails the test.
func mustQI(t testing.TB, reg, surd int64, r *ring.Ring, denom int64) quadint.QuadInt {
	t.Helper()
	q, err := quadint.New(reg, surd, r, denom)
	require.NoError(t, err)
	return q
}

// TestGCD_GaussianIntegers exercises the descent in ℤ[i], where every
// result is rotated into the first quadrant.
func TestGCD_GaussianIntegers(t *testing.T) {
	zi := mustRing(t, -1, true)

	g, err := euclid.GCD(mustQI(t, 5, 0, zi, 1), mustQI(t, 3, 1, zi, 1))
	require.NoError(t, err)
	assert.True(t, g.Equal(mustQI(t, 1, 2, zi, 1)), "gcd(5, 3+i) = 1+2i, got %v", g)

	g, err = euclid.GCD(mustQI(t, 1, 1, zi, 1), mustQI(t, 1, -1, zi, 1))
	require.NoError(t, err)
	assert.True(t, g.Equal(mustQI(t, 1, 1, zi, 1)), "gcd(1+i, 1−i) = 1+i, got %v", g)

	// Coprime pair: the gcd is the unit 1.
	g, err = euclid.GCD(mustQI(t, 3, 0, zi, 1), mustQI(t, 1, 1, zi, 1))
	require.NoError(t, err)
	assert.True(t, g.IsUnit(), "gcd(3, 1+i) should be a unit, got %v", g)
}

// TestGCD_RationalOperands checks that the descent degrades to the
// ordinary integer gcd.
func TestGCD_RationalOperands(t *testing.T) {
	z2 := mustRing(t, 2, false)

	g, err := euclid.GCD(mustQI(t, 12, 0, z2, 1), mustQI(t, 8, 0, z2, 1))
	require.NoError(t, err)
	assert.True(t, g.Equal(mustQI(t, 4, 0, z2, 1)), "gcd(12, 8) = 4, got %v", g)

	g, err = euclid.GCD(mustQI(t, -12, 0, z2, 1), mustQI(t, 8, 0, z2, 1))
	require.NoError(t, err)
	assert.True(t, g.Equal(mustQI(t, 4, 0, z2, 1)), "gcd(−12, 8) = 4, got %v", g)
}

// TestGCD_PureSurd covers a ramified divisor in ℤ[√−2].
func TestGCD_PureSurd(t *testing.T) {
	r := mustRing(t, -2, true)
	g, err := euclid.GCD(mustQI(t, 2, 0, r, 1), mustQI(t, 0, 1, r, 1))
	require.NoError(t, err)
	assert.True(t, g.Equal(mustQI(t, 0, 1, r, 1)), "gcd(2, √−2) = √−2, got %v", g)
}

// TestGCD_HalfIntegerQuotient needs a quotient off the integer grid:
// 2 = (1+√−7)/2 · (1−√−7)/2 exactly.
func TestGCD_HalfIntegerQuotient(t *testing.T) {
	r := mustRing(t, -7, true)
	b := mustQI(t, 1, 1, r, 2)
	g, err := euclid.GCD(mustQI(t, 2, 0, r, 1), b)
	require.NoError(t, err)
	assert.True(t, g.Equal(b), "gcd(2, (1+√−7)/2) = (1+√−7)/2, got %v", g)
}

// TestGCD_ZeroRules pins down the zero-operand conventions.
func TestGCD_ZeroRules(t *testing.T) {
	z2 := mustRing(t, 2, false)
	zero := mustQI(t, 0, 0, z2, 1)

	_, err := euclid.GCD(zero, zero)
	assert.ErrorIs(t, err, euclid.ErrBothZero)

	g, err := euclid.GCD(mustQI(t, -7, 0, z2, 1), zero)
	require.NoError(t, err)
	assert.True(t, g.Equal(mustQI(t, 7, 0, z2, 1)), "gcd(−7, 0) = 7, got %v", g)

	g, err = euclid.GCD(zero, mustQI(t, 0, -3, z2, 1))
	require.NoError(t, err)
	assert.True(t, g.Equal(mustQI(t, 0, 3, z2, 1)), "gcd(0, −3√2) = 3√2, got %v", g)
}

// TestGCD_NonEuclidean forces the classic failure in ℤ[√−5]: 2 and
// 1+√−5 share the non-principal ideal (2, 1+√−5), so no descent can
// terminate with a true gcd.
func TestGCD_NonEuclidean(t *testing.T) {
	r := mustRing(t, -5, true)
	a := mustQI(t, 2, 0, r, 1)
	b := mustQI(t, 1, 1, r, 1)

	_, err := euclid.GCD(a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, euclid.ErrNonEuclidean)

	var ne *euclid.NonEuclideanError
	require.ErrorAs(t, err, &ne)
	assert.True(t, ne.A.Equal(a), "carrier keeps the first operand")
	assert.True(t, ne.B.Equal(b), "carrier keeps the second operand")
}

// TestGCDAnyway_Sentinel continues the ℤ[√−5] failure: the chain cycles,
// so the candidate comes back with a negative regular part.
func TestGCDAnyway_Sentinel(t *testing.T) {
	r := mustRing(t, -5, true)
	_, err := euclid.GCD(mustQI(t, 2, 0, r, 1), mustQI(t, 1, 1, r, 1))
	var ne *euclid.NonEuclideanError
	require.ErrorAs(t, err, &ne)

	g, err := euclid.GCDAnyway(ne)
	require.NoError(t, err)
	assert.Negative(t, g.Reg(), "untrusted result is flagged by a negative regular part")
}

// TestGCDAnyway_TrustedChain reaches a zero remainder and therefore
// returns a genuine, canonically signed divisor.
func TestGCDAnyway_TrustedChain(t *testing.T) {
	zi := mustRing(t, -1, true)
	ne := &euclid.NonEuclideanError{
		A: mustQI(t, 5, 0, zi, 1),
		B: mustQI(t, 3, 1, zi, 1),
	}
	g, err := euclid.GCDAnyway(ne)
	require.NoError(t, err)
	assert.True(t, g.Equal(mustQI(t, 1, 2, zi, 1)), "trusted fallback matches GCD, got %v", g)
}

// TestGCDAnyway_NilState rejects a nil carrier.
func TestGCDAnyway_NilState(t *testing.T) {
	_, err := euclid.GCDAnyway(nil)
	assert.ErrorIs(t, err, euclid.ErrNoFallbackState)
}

// TestIsDivisibleBy covers exact, inexact and zero divisors. A zero
// divisor is an error, never a false.
func TestIsDivisibleBy(t *testing.T) {
	zi := mustRing(t, -1, true)

	ok, err := euclid.IsDivisibleBy(mustQI(t, 3, 1, zi, 1), mustQI(t, 1, 1, zi, 1))
	require.NoError(t, err)
	assert.True(t, ok, "(3+i)/(1+i) = 2−i")

	ok, err = euclid.IsDivisibleBy(mustQI(t, 3, 0, zi, 1), mustQI(t, 2, 0, zi, 1))
	require.NoError(t, err)
	assert.False(t, ok, "3/2 is not a Gaussian integer")

	_, err = euclid.IsDivisibleBy(mustQI(t, 1, 0, zi, 1), mustQI(t, 0, 0, zi, 1))
	assert.ErrorIs(t, err, quadint.ErrDivisionByZero)

	r5 := mustRing(t, -5, true)
	ok, err = euclid.IsDivisibleBy(mustQI(t, 1, 1, r5, 1), mustQI(t, 2, 0, r5, 1))
	require.NoError(t, err)
	assert.False(t, ok, "(1+√−5)/2 is not integral")
}

// TestGCD_DividesBothOperands is the defining property on a spread of
// Euclidean inputs.
func TestGCD_DividesBothOperands(t *testing.T) {
	zi := mustRing(t, -1, true)
	pairs := [][2]quadint.QuadInt{
		{mustQI(t, 4, 2, zi, 1), mustQI(t, 2, 0, zi, 1)},
		{mustQI(t, 7, -3, zi, 1), mustQI(t, 2, 5, zi, 1)},
		{mustQI(t, 12, 0, zi, 1), mustQI(t, 9, 3, zi, 1)},
		{mustQI(t, -8, 6, zi, 1), mustQI(t, 5, -1, zi, 1)},
	}
	for _, pair := range pairs {
		g, err := euclid.GCD(pair[0], pair[1])
		require.NoError(t, err, "gcd(%v, %v)", pair[0], pair[1])
		for _, operand := range pair {
			ok, err := euclid.IsDivisibleBy(operand, g)
			require.NoError(t, err)
			assert.True(t, ok, "%v divides %v", g, operand)
		}
	}
}
