package unitclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surdlab/quadring/quadint"
	"github.com/surdlab/quadring/ring"
	"github.com/surdlab/quadring/unitclass"
)

// mustRing builds a ring descriptor or fails the test.
func mustRing(t testing.TB, radicand int64, imaginary bool) *ring.Ring {
	t.Helper()
	r, err := ring.New(radicand, imaginary)
	require.NoError(t, err)
	return r
}

// TestFundamentalUnit_IntegerGrid checks classical Pell solutions.
func TestFundamentalUnit_IntegerGrid(t *testing.T) {
	cases := []struct {
		d         int64
		reg, surd int64
		norm      int64
	}{
		{2, 1, 1, -1},  // 1+√2
		{3, 2, 1, 1},   // 2+√3
		{10, 3, 1, -1}, // 3+√10
		{15, 4, 1, 1},  // 4+√15
	}
	for _, tc := range cases {
		r := mustRing(t, tc.d, false)
		u, ok, err := unitclass.FundamentalUnit(r)
		require.NoError(t, err, "d=%d", tc.d)
		require.True(t, ok, "d=%d", tc.d)
		assert.Equal(t, tc.reg, u.Reg(), "d=%d", tc.d)
		assert.Equal(t, tc.surd, u.Surd(), "d=%d", tc.d)
		assert.Equal(t, int64(1), u.Denom(), "d=%d", tc.d)
		assert.Equal(t, tc.norm, u.Norm(), "d=%d", tc.d)
	}
}

// TestFundamentalUnit_HalfGrid checks rings whose fundamental unit is a
// half-integer, including the golden ratio for d = 5.
func TestFundamentalUnit_HalfGrid(t *testing.T) {
	r5 := mustRing(t, 5, false)
	u, ok, err := unitclass.FundamentalUnit(r5)
	require.NoError(t, err)
	require.True(t, ok)
	want, err := quadint.New(1, 1, r5, 2)
	require.NoError(t, err)
	assert.True(t, u.Equal(want), "d=5 unit is (1+√5)/2, got %v", u)

	r21 := mustRing(t, 21, false)
	u, ok, err = unitclass.FundamentalUnit(r21)
	require.NoError(t, err)
	require.True(t, ok)
	want, err = quadint.New(5, 1, r21, 2)
	require.NoError(t, err)
	assert.True(t, u.Equal(want), "d=21 unit is (5+√21)/2, got %v", u)
	assert.Equal(t, int64(1), u.Norm())

	// d = 61 has a famously large integer-grid solution but a small
	// half-grid one: (39+5√61)/2.
	r61 := mustRing(t, 61, false)
	u, ok, err = unitclass.FundamentalUnit(r61)
	require.NoError(t, err)
	require.True(t, ok)
	want, err = quadint.New(39, 5, r61, 2)
	require.NoError(t, err)
	assert.True(t, u.Equal(want), "d=61 unit is (39+5√61)/2, got %v", u)
}

// TestFundamentalUnit_InvalidRings rejects imaginary and ill-defined
// descriptors.
func TestFundamentalUnit_InvalidRings(t *testing.T) {
	_, _, err := unitclass.FundamentalUnit(mustRing(t, -1, true))
	assert.ErrorIs(t, err, unitclass.ErrImaginaryRing)

	ill, err := ring.NewIllDefined(6)
	require.NoError(t, err)
	_, _, err = unitclass.FundamentalUnit(ill)
	assert.ErrorIs(t, err, ring.ErrUnsupportedDomain)

	_, _, err = unitclass.FundamentalUnit(nil)
	assert.ErrorIs(t, err, quadint.ErrNilRing)
}

// TestClassNumber_Imaginary pins known class numbers, Heegner rings and
// non-trivial class groups alike.
func TestClassNumber_Imaginary(t *testing.T) {
	cases := map[int64]int{
		-1:   1,
		-2:   1,
		-3:   1,
		-5:   2,
		-7:   1,
		-14:  4,
		-23:  3,
		-163: 1,
	}
	for d, want := range cases {
		h, err := unitclass.ClassNumber(mustRing(t, d, true))
		require.NoError(t, err, "d=%d", d)
		assert.Equal(t, want, h, "h(%d)", d)
	}
}

// TestClassNumber_Real covers the narrow-to-wide adjustment: d = 15 has
// two reduction cycles surviving a norm +1 unit, d = 10 keeps its two
// because the unit has norm −1.
func TestClassNumber_Real(t *testing.T) {
	cases := map[int64]int{
		2:  1,
		3:  1,
		10: 2,
		15: 2,
		21: 1,
	}
	for d, want := range cases {
		h, err := unitclass.ClassNumber(mustRing(t, d, false))
		require.NoError(t, err, "d=%d", d)
		assert.Equal(t, want, h, "h(%d)", d)
	}
}

// TestClassNumber_InvalidRings rejects ill-defined and nil descriptors.
func TestClassNumber_InvalidRings(t *testing.T) {
	ill, err := ring.NewIllDefined(6)
	require.NoError(t, err)
	_, err = unitclass.ClassNumber(ill)
	assert.ErrorIs(t, err, ring.ErrUnsupportedDomain)

	_, err = unitclass.ClassNumber(nil)
	assert.ErrorIs(t, err, quadint.ErrNilRing)
}

// TestCache_Memoization checks that repeated lookups agree with the
// direct computation and with each other.
func TestCache_Memoization(t *testing.T) {
	c := unitclass.NewCache()
	r := mustRing(t, 21, false)

	u1, ok, err := c.Unit(r)
	require.NoError(t, err)
	require.True(t, ok)
	u2, ok, err := c.Unit(r)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, u1.Equal(u2))

	direct, ok, err := unitclass.FundamentalUnit(r)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, u1.Equal(direct))

	h1, err := c.ClassNumber(mustRing(t, -5, true))
	require.NoError(t, err)
	h2, err := c.ClassNumber(mustRing(t, -5, true))
	require.NoError(t, err)
	assert.Equal(t, 2, h1)
	assert.Equal(t, h1, h2)
}

// TestCache_ErrorsNotCached verifies a failing ring fails on every call.
func TestCache_ErrorsNotCached(t *testing.T) {
	c := unitclass.NewCache()
	im := mustRing(t, -2, true)
	_, _, err := c.Unit(im)
	assert.ErrorIs(t, err, unitclass.ErrImaginaryRing)
	_, _, err = c.Unit(im)
	assert.ErrorIs(t, err, unitclass.ErrImaginaryRing)
}
