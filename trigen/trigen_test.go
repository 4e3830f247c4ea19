package trigen_test

import (
	"testing"

	"github.com/katalvlaran/covtri/trigen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTriangle_Shape verifies row i always holds exactly i+1 values.
func TestTriangle_Shape(t *testing.T) {
	tri, err := trigen.Triangle(10, -5, 5, 7)
	require.NoError(t, err)
	require.Len(t, tri, 10)
	for i, row := range tri {
		assert.Len(t, row, i+1, "row %d must hold %d values", i, i+1)
	}
}

// TestTriangle_Bounds verifies every value lies within [minVal, maxVal].
func TestTriangle_Bounds(t *testing.T) {
	tri, err := trigen.Triangle(12, -3, 4, 99)
	require.NoError(t, err)
	for i, row := range tri {
		for j, v := range row {
			assert.GreaterOrEqual(t, v, int64(-3), "value at (%d,%d)", i, j)
			assert.LessOrEqual(t, v, int64(4), "value at (%d,%d)", i, j)
		}
	}
}

// TestTriangle_Deterministic verifies the same seed reproduces the same
// triangle and a different seed does not.
func TestTriangle_Deterministic(t *testing.T) {
	a, err := trigen.Triangle(8, -10, 10, 1234)
	require.NoError(t, err)
	b, err := trigen.Triangle(8, -10, 10, 1234)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the fixture")

	c, err := trigen.Triangle(8, -10, 10, 1235)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seed should diverge")
}

// TestTriangle_ZeroSeedPolicy verifies seed==0 maps to a stable default.
func TestTriangle_ZeroSeedPolicy(t *testing.T) {
	a, err := trigen.Triangle(6, 0, 9, 0)
	require.NoError(t, err)
	b, err := trigen.Triangle(6, 0, 9, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestTriangle_ZeroRows verifies rows==0 yields an empty triangle.
func TestTriangle_ZeroRows(t *testing.T) {
	tri, err := trigen.Triangle(0, -1, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, tri)
}

// TestTriangle_Errors verifies the sentinel errors for bad arguments.
func TestTriangle_Errors(t *testing.T) {
	_, err := trigen.Triangle(-1, 0, 1, 5)
	assert.ErrorIs(t, err, trigen.ErrRowCount)

	_, err = trigen.Triangle(3, 2, 1, 5)
	assert.ErrorIs(t, err, trigen.ErrValueRange)
}

// TestPositiveNegativeMixed_Ranges verifies the convenience generators'
// fixed value ranges.
func TestPositiveNegativeMixed_Ranges(t *testing.T) {
	pos, err := trigen.Positive(9, 20, 3)
	require.NoError(t, err)
	for _, row := range pos {
		for _, v := range row {
			assert.Positive(t, v)
			assert.LessOrEqual(t, v, int64(20))
		}
	}

	neg, err := trigen.Negative(9, -20, 3)
	require.NoError(t, err)
	for _, row := range neg {
		for _, v := range row {
			assert.Negative(t, v)
			assert.GreaterOrEqual(t, v, int64(-20))
		}
	}

	mix, err := trigen.Mixed(9, 3)
	require.NoError(t, err)
	for _, row := range mix {
		for _, v := range row {
			assert.GreaterOrEqual(t, v, int64(-15))
			assert.LessOrEqual(t, v, int64(15))
		}
	}
}
