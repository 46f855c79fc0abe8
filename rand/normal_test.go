package rand_test

import (
	"math"
	"testing"

	"github.com/ajyoon/blur/rand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNormal_Shape verifies point count, domain, symmetry, and that the
// density peaks at the mean.
func TestNormal_Shape(t *testing.T) {
	curve, err := rand.Normal(10, 4, rand.WithResolution(41))
	require.NoError(t, err)

	points := curve.Points()
	require.Len(t, points, 41)

	lo, hi := curve.Domain()
	deviation := 2.0 // sqrt(4)
	assert.InDelta(t, 10-5*deviation, lo, 1e-9)
	assert.InDelta(t, 10+5*deviation, hi, 1e-9)

	// Odd resolution puts a control point exactly on the mean.
	peak, err := curve.WeightAt(10)
	require.NoError(t, err)
	assert.InDelta(t, curve.MaxWeight(), peak, 1e-12)

	// Symmetric about the mean.
	for _, offset := range []float64{1, 3.5, 7} {
		left, err := curve.WeightAt(10 - offset)
		require.NoError(t, err)
		right, err := curve.WeightAt(10 + offset)
		require.NoError(t, err)
		assert.InDelta(t, left, right, 1e-9)
	}

	// Density at the mean for variance 4 is 1/sqrt(8π).
	assert.InDelta(t, 1/math.Sqrt(8*math.Pi), peak, 1e-9)
}

// TestNormal_Validation rejects malformed parameters.
func TestNormal_Validation(t *testing.T) {
	_, err := rand.Normal(0, 0)
	assert.ErrorIs(t, err, rand.ErrInvalidVariance)

	_, err = rand.Normal(0, -3)
	assert.ErrorIs(t, err, rand.ErrInvalidVariance)

	_, err = rand.Normal(0, 1, rand.WithResolution(1))
	assert.ErrorIs(t, err, rand.ErrInvalidResolution)

	_, err = rand.Normal(0, 1, rand.WithSpan(0))
	assert.ErrorIs(t, err, rand.ErrInvalidSpan)
}

// TestNormal_DefaultResolution matches the documented default.
func TestNormal_DefaultResolution(t *testing.T) {
	curve, err := rand.Normal(0, 1)
	require.NoError(t, err)
	assert.Len(t, curve.Points(), rand.DefaultResolution)
}
