package rand

import "math/rand"

// Sample draws a weighted random outcome from the curve's domain by
// rejection sampling: a candidate x is drawn uniformly from the domain
// and accepted with probability equal to its interpolated weight divided
// by the curve's maximum weight; rejected candidates are redrawn.
//
// The loop terminates with probability one because a curve with positive
// weight mass always has a segment of positive acceptance area; the
// all-zero case that would spin forever is rejected up front with
// ErrProbabilityUndefined.
// Complexity: O(log n) per attempt; expected attempts are the ratio of
// the curve's bounding box area to the area under the curve.
func (c *Curve) Sample(rng *rand.Rand) (float64, error) {
	peak := c.MaxWeight()
	if peak <= 0 {
		return 0, ErrProbabilityUndefined
	}

	lo, hi := c.Domain()
	for {
		x := lo + uniform(rng)*(hi-lo)
		w, err := c.WeightAt(x)
		if err != nil {
			return 0, err
		}
		if uniform(rng)*peak < w {
			return x, nil
		}
	}
}
