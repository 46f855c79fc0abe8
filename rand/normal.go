package rand

import "math"

const (
	// DefaultResolution is the number of control points Normal places
	// across the curve when WithResolution is not given.
	DefaultResolution = 23

	// DefaultSpan is the number of standard deviations Normal covers on
	// each side of the mean when WithSpan is not given. Beyond ±5σ the
	// density is negligible for sampling purposes.
	DefaultSpan = 5.0
)

// NormalOption configures Normal.
type NormalOption func(*normalConfig)

type normalConfig struct {
	resolution int
	span       float64
}

// WithResolution sets how many evenly spaced control points approximate
// the density. More points track the bell shape more closely at the cost
// of slower interpolation.
func WithResolution(points int) NormalOption {
	return func(cfg *normalConfig) { cfg.resolution = points }
}

// WithSpan sets how many standard deviations the curve covers on each
// side of the mean.
func WithSpan(deviations float64) NormalOption {
	return func(cfg *normalConfig) { cfg.span = deviations }
}

// Normal builds a Curve approximating a Gaussian distribution by sampling
// the density function at evenly spaced x positions, endpoints included.
// The result feeds directly into Curve.Sample; clip it with Curve.Bound
// when the outcome domain must be narrower than the full span.
//
// Returns ErrInvalidVariance, ErrInvalidResolution or ErrInvalidSpan for
// malformed parameters.
// Complexity: O(resolution).
func Normal(mean, variance float64, opts ...NormalOption) (*Curve, error) {
	if variance <= 0 || math.IsNaN(variance) || math.IsInf(variance, 0) {
		return nil, ErrInvalidVariance
	}

	cfg := normalConfig{resolution: DefaultResolution, span: DefaultSpan}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.resolution < 2 {
		return nil, ErrInvalidResolution
	}
	if cfg.span <= 0 || math.IsNaN(cfg.span) {
		return nil, ErrInvalidSpan
	}

	deviation := math.Sqrt(variance)
	minX := mean - deviation*cfg.span
	maxX := mean + deviation*cfg.span
	step := (maxX - minX) / float64(cfg.resolution-1)

	points := make([]Point, cfg.resolution)
	for i := range points {
		x := minX + step*float64(i)
		points[i] = Point{X: x, Weight: normalDensity(x, mean, variance)}
	}

	return NewCurve(points...)
}

// normalDensity evaluates the Gaussian probability density function.
func normalDensity(x, mean, variance float64) float64 {
	exponent := -((x - mean) * (x - mean)) / (2 * variance)

	return math.Exp(exponent) / math.Sqrt(2*math.Pi*variance)
}
