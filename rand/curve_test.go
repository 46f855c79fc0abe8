package rand_test

import (
	"errors"
	"testing"

	"github.com/ajyoon/blur/rand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCurve_Validation rejects malformed control point sets.
func TestNewCurve_Validation(t *testing.T) {
	cases := []struct {
		name   string
		points []rand.Point
		err    error
	}{
		{"NoPoints", nil, rand.ErrInvalidCurve},
		{"OnePoint", []rand.Point{{0, 1}}, rand.ErrInvalidCurve},
		{"DuplicateX", []rand.Point{{0, 1}, {0, 2}}, rand.ErrInvalidCurve},
		{"DecreasingX", []rand.Point{{5, 1}, {1, 2}}, rand.ErrInvalidCurve},
		{"NegativeWeight", []rand.Point{{0, 1}, {1, -2}}, rand.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rand.NewCurve(tc.points...)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewCurve(%v) error = %v; want %v", tc.points, err, tc.err)
			}
		})
	}
}

// TestWeightAt covers interior interpolation, exact control points, and
// the out-of-domain failure.
func TestWeightAt(t *testing.T) {
	curve, err := rand.NewCurve(rand.Point{0, 0}, rand.Point{10, 10})
	require.NoError(t, err)

	w, err := curve.WeightAt(5)
	require.NoError(t, err)
	assert.Equal(t, 5.0, w)

	w, err = curve.WeightAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w)

	w, err = curve.WeightAt(10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, w)

	_, err = curve.WeightAt(-1)
	assert.ErrorIs(t, err, rand.ErrProbabilityUndefined)

	_, err = curve.WeightAt(10.5)
	assert.ErrorIs(t, err, rand.ErrProbabilityUndefined)
}

// TestWeightAt_Piecewise checks interpolation across multiple segments.
func TestWeightAt_Piecewise(t *testing.T) {
	curve, err := rand.NewCurve(
		rand.Point{0, 0},
		rand.Point{2, 4},
		rand.Point{4, 0},
	)
	require.NoError(t, err)

	w, err := curve.WeightAt(1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-12)

	w, err = curve.WeightAt(3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-12)
}

// TestBound_NoBounds returns an equal copy, not an error.
func TestBound_NoBounds(t *testing.T) {
	curve, err := rand.NewCurve(rand.Point{0, 0}, rand.Point{2, 2}, rand.Point{4, 0})
	require.NoError(t, err)

	bounded, err := curve.Bound()
	require.NoError(t, err)
	assert.Equal(t, curve.Points(), bounded.Points())
}

// TestBound_InterpolatesEdges clips a triangle to [1, 3] and expects the
// cut points to land on the original slopes.
func TestBound_InterpolatesEdges(t *testing.T) {
	curve, err := rand.NewCurve(rand.Point{0, 0}, rand.Point{2, 2}, rand.Point{4, 0})
	require.NoError(t, err)

	bounded, err := curve.Bound(rand.WithMinimum(1), rand.WithMaximum(3))
	require.NoError(t, err)

	want := []rand.Point{{1, 1}, {2, 2}, {3, 1}}
	assert.Equal(t, want, bounded.Points())
}

// TestBound_OneSided leaves the unbounded side untouched.
func TestBound_OneSided(t *testing.T) {
	curve, err := rand.NewCurve(rand.Point{0, 0}, rand.Point{2, 2}, rand.Point{4, 0})
	require.NoError(t, err)

	bounded, err := curve.Bound(rand.WithMinimum(1))
	require.NoError(t, err)
	assert.Equal(t, []rand.Point{{1, 1}, {2, 2}, {4, 0}}, bounded.Points())

	bounded, err = curve.Bound(rand.WithMaximum(3))
	require.NoError(t, err)
	assert.Equal(t, []rand.Point{{0, 0}, {2, 2}, {3, 1}}, bounded.Points())
}

// TestBound_WiderThanDomain keeps every point when the bounds do not cut
// anything away.
func TestBound_WiderThanDomain(t *testing.T) {
	curve, err := rand.NewCurve(rand.Point{0, 0}, rand.Point{4, 1})
	require.NoError(t, err)

	bounded, err := curve.Bound(rand.WithMinimum(-10), rand.WithMaximum(10))
	require.NoError(t, err)
	assert.Equal(t, curve.Points(), bounded.Points())
}

// TestBound_Errors covers inverted and out-of-domain bounds.
func TestBound_Errors(t *testing.T) {
	curve, err := rand.NewCurve(rand.Point{0, 0}, rand.Point{4, 1})
	require.NoError(t, err)

	_, err = curve.Bound(rand.WithMinimum(3), rand.WithMaximum(1))
	assert.ErrorIs(t, err, rand.ErrInvalidBounds)

	_, err = curve.Bound(rand.WithMinimum(100))
	assert.ErrorIs(t, err, rand.ErrProbabilityUndefined)
}

// TestBound_BetweenPoints clips inside a single segment, producing a
// fully interpolated two-point curve.
func TestBound_BetweenPoints(t *testing.T) {
	curve, err := rand.NewCurve(rand.Point{0, 0}, rand.Point{10, 10})
	require.NoError(t, err)

	bounded, err := curve.Bound(rand.WithMinimum(4), rand.WithMaximum(6))
	require.NoError(t, err)
	assert.Equal(t, []rand.Point{{4, 4}, {6, 6}}, bounded.Points())
}

// TestCurveAccessors spot-checks Domain and MaxWeight.
func TestCurveAccessors(t *testing.T) {
	curve, err := rand.NewCurve(rand.Point{-3, 4}, rand.Point{0, 10}, rand.Point{5, 1})
	require.NoError(t, err)

	lo, hi := curve.Domain()
	assert.Equal(t, -3.0, lo)
	assert.Equal(t, 5.0, hi)
	assert.Equal(t, 10.0, curve.MaxWeight())
}
