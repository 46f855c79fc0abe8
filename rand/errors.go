package rand

import "errors"

// Sentinel errors for the sampling engine. The taxonomy separates inputs
// that are malformed (curve shape, bounds, negative weights) from inputs
// that are well-formed but yield no valid distribution; only the latter
// surface as ErrProbabilityUndefined.
var (
	// ErrProbabilityUndefined indicates a sampling operation with no
	// well-defined probabilistic answer: an empty or zero-total weight
	// set, an interpolation query outside a curve's domain, or a curve
	// with no positive weight mass.
	ErrProbabilityUndefined = errors.New("rand: probability distribution undefined")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("rand: weight must be non-negative")

	// ErrInvalidCurve indicates a curve with fewer than two points,
	// non-increasing x values, or non-finite coordinates.
	ErrInvalidCurve = errors.New("rand: curve requires at least two finite points with strictly increasing x")

	// ErrInvalidBounds indicates a maximum bound below a minimum bound.
	ErrInvalidBounds = errors.New("rand: maximum bound below minimum bound")

	// ErrInvalidVariance indicates a non-positive or non-finite variance.
	ErrInvalidVariance = errors.New("rand: variance must be positive and finite")

	// ErrInvalidResolution indicates a normal curve resolution below two.
	ErrInvalidResolution = errors.New("rand: resolution must be at least two points")

	// ErrInvalidSpan indicates a non-positive standard-deviation span.
	ErrInvalidSpan = errors.New("rand: span must be positive")
)
