package rand_test

import (
	"testing"

	"github.com/ajyoon/blur/rand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSample_StaysInDomain draws repeatedly and checks range.
func TestSample_StaysInDomain(t *testing.T) {
	rng := newRng(9)
	curve, err := rand.NewCurve(rand.Point{-3, 4}, rand.Point{0, 10}, rand.Point{5, 1})
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		x, err := curve.Sample(rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, x, -3.0)
		assert.LessOrEqual(t, x, 5.0)
	}
}

// TestSample_ZeroMass fails up front instead of spinning forever.
func TestSample_ZeroMass(t *testing.T) {
	curve, err := rand.NewCurve(rand.Point{0, 0}, rand.Point{1, 0})
	require.NoError(t, err)

	_, err = curve.Sample(newRng(1))
	assert.ErrorIs(t, err, rand.ErrProbabilityUndefined)
}

// TestSample_NormalMean draws 10k values from a normal curve centered on
// 440 and expects the empirical mean to land close by.
func TestSample_NormalMean(t *testing.T) {
	rng := newRng(440)
	curve, err := rand.Normal(440, 50)
	require.NoError(t, err)

	const draws = 10000
	var sum float64
	for i := 0; i < draws; i++ {
		x, err := curve.Sample(rng)
		require.NoError(t, err)
		sum += x
	}

	// Standard error of the mean is sqrt(50)/100 ≈ 0.07, so ±1 is a
	// fourteen-sigma cushion.
	assert.InDelta(t, 440.0, sum/draws, 1.0)
}

// TestSample_RespectsWeights puts nearly all mass on the right half of
// the domain and checks the draw distribution follows it.
func TestSample_RespectsWeights(t *testing.T) {
	rng := newRng(21)
	curve, err := rand.NewCurve(
		rand.Point{0, 0},
		rand.Point{5, 0},
		rand.Point{5.001, 10},
		rand.Point{10, 10},
	)
	require.NoError(t, err)

	right := 0
	const draws = 4000
	for i := 0; i < draws; i++ {
		x, err := curve.Sample(rng)
		require.NoError(t, err)
		if x > 5 {
			right++
		}
	}
	assert.Greater(t, float64(right)/draws, 0.95)
}
