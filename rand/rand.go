// rand.go: small chance conveniences layered on the uniform source.

package rand

import (
	"math"
	"math/rand"
)

// Bool returns true with the given probability, where 0 never returns
// true and 1 always does.
func Bool(rng *rand.Rand, probability float64) bool {
	return uniform(rng) < probability
}

// PercentPossible returns true percent/100 of the time.
func PercentPossible(rng *rand.Rand, percent float64) bool {
	return uniform(rng)*100 < percent
}

// Sign returns 1 with probability probPositive, otherwise -1.
func Sign(rng *rand.Rand, probPositive float64) int {
	if uniform(rng) < probPositive {
		return 1
	}

	return -1
}

// PosOrNeg returns the magnitude of value with a sign chosen by
// probPositive. Equivalent to math.Abs(value) * Sign(rng, probPositive).
func PosOrNeg(rng *rand.Rand, value, probPositive float64) float64 {
	return math.Abs(value) * float64(Sign(rng, probPositive))
}
