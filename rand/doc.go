// Package rand is the weighted sampling engine of blur: non-uniform
// random operations over discrete weighted option sets and continuous
// piecewise-linear probability curves.
//
// Two families of inputs exist:
//
//   - A weighted option set, []Weighted[T]: opaque values paired with
//     non-negative weights, defining a discrete distribution. Consumed by
//     Choice, ChoiceIndex and Order.
//   - A Curve: ordered (x, weight) control points with strictly increasing
//     x, defining a piecewise-linear continuous distribution. Constructed
//     with NewCurve or Normal, queried with WeightAt, clipped with Bound,
//     and sampled with Sample (rejection sampling).
//
// Error taxonomy (check with errors.Is):
//
//	ErrProbabilityUndefined: the inputs are well-formed but describe no
//	                         valid distribution (zero weight mass, empty
//	                         option set, query outside a curve's domain)
//	ErrNegativeWeight:       a weight below zero (malformed input)
//	ErrInvalidCurve:         fewer than two points, non-increasing or
//	                         non-finite x, or non-finite weight
//	ErrInvalidBounds:        a maximum bound below a minimum bound
//	ErrInvalidVariance,
//	ErrInvalidResolution,
//	ErrInvalidSpan:          malformed Normal parameters
//
// All sampling functions take a *math/rand.Rand so results are
// reproducible for a given seed; a nil source uses the shared global one.
// No function here performs I/O or retains state between calls.
package rand
