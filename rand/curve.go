// curve.go: interpolation and bounding over piecewise-linear curves.

package rand

import "sort"

// WeightAt returns the curve's weight at x, linearly interpolated between
// the two bracketing control points.
//
// Queries outside [Domain()] return ErrProbabilityUndefined rather than a
// range error: the caller asked for the likelihood of an outcome the
// distribution does not cover, which is a sampling-domain violation, not
// a malformed argument.
// Complexity: O(log n).
func (c *Curve) WeightAt(x float64) (float64, error) {
	lo, hi := c.Domain()
	if x < lo || x > hi {
		return 0, ErrProbabilityUndefined
	}

	// First point with X >= x; x <= hi guarantees a hit.
	i := sort.Search(len(c.points), func(i int) bool {
		return c.points[i].X >= x
	})
	if c.points[i].X == x {
		return c.points[i].Weight, nil
	}

	p0, p1 := c.points[i-1], c.points[i]
	t := (x - p0.X) / (p1.X - p0.X)

	return p0.Weight + t*(p1.Weight-p0.Weight), nil
}

// BoundOption configures Curve.Bound.
type BoundOption func(*boundConfig)

type boundConfig struct {
	min, max       float64
	hasMin, hasMax bool
}

// WithMinimum sets the lowest outcome kept by Bound.
func WithMinimum(min float64) BoundOption {
	return func(cfg *boundConfig) {
		cfg.min = min
		cfg.hasMin = true
	}
}

// WithMaximum sets the highest outcome kept by Bound.
func WithMaximum(max float64) BoundOption {
	return func(cfg *boundConfig) {
		cfg.max = max
		cfg.hasMax = true
	}
}

// Bound clips the curve to an outcome domain. Control points outside the
// bounds are removed; when a bound cuts strictly between two points, a
// new point is interpolated at the bound so the probability shape inside
// the kept domain is unchanged and the result is itself a valid curve.
//
// Calling Bound with no options returns an unmodified copy, not an
// error. A bound given on one side only leaves the other side unbounded.
//
// Returns ErrInvalidBounds when the maximum lies below the minimum,
// ErrProbabilityUndefined when a bound falls entirely outside the curve's
// domain, and ErrInvalidCurve when the bounded region degenerates to
// fewer than two distinct points.
// Complexity: O(n).
func (c *Curve) Bound(opts ...BoundOption) (*Curve, error) {
	var cfg boundConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.hasMin && !cfg.hasMax {
		return NewCurve(c.points...)
	}
	if cfg.hasMin && cfg.hasMax && cfg.max < cfg.min {
		return nil, ErrInvalidBounds
	}

	kept := make([]Point, 0, len(c.points))
	for _, p := range c.points {
		if cfg.hasMin && p.X < cfg.min {
			continue
		}
		if cfg.hasMax && p.X > cfg.max {
			continue
		}
		kept = append(kept, p)
	}

	lo, hi := c.Domain()

	// Re-attach interpolated edge points where the clip removed weight
	// strictly inside the original domain.
	if cfg.hasMin && cfg.min > lo && (len(kept) == 0 || kept[0].X != cfg.min) {
		w, err := c.WeightAt(cfg.min)
		if err != nil {
			return nil, err
		}
		kept = append([]Point{{X: cfg.min, Weight: w}}, kept...)
	}
	if cfg.hasMax && cfg.max < hi && (len(kept) == 0 || kept[len(kept)-1].X != cfg.max) {
		w, err := c.WeightAt(cfg.max)
		if err != nil {
			return nil, err
		}
		kept = append(kept, Point{X: cfg.max, Weight: w})
	}

	return NewCurve(kept...)
}
