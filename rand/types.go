// This file declares the two canonical input forms of the sampling
// engine, weighted option sets and probability curves, plus the
// boundary helpers that normalize looser caller-side shapes into them.

package rand

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
)

// Weighted pairs an opaque value with a non-negative weight. A slice of
// Weighted values forms a discrete distribution; slice order is the
// option order seen by Choice and Order.
type Weighted[T any] struct {
	// Value is the outcome represented by this option.
	Value T

	// Weight is the option's relative likelihood. Must be >= 0; options
	// with zero weight can never be chosen.
	Weight float64
}

// UniformWeights builds an option set assigning the same weight to every
// value, preserving input order.
// Complexity: O(n).
func UniformWeights[T any](values []T, weight float64) []Weighted[T] {
	options := make([]Weighted[T], len(values))
	for i, v := range values {
		options[i] = Weighted[T]{Value: v, Weight: weight}
	}

	return options
}

// FromMap converts a value→weight mapping into an option set sorted by
// value, so the resulting option order is deterministic regardless of map
// iteration order.
// Complexity: O(n log n).
func FromMap[T cmp.Ordered](weights map[T]float64) []Weighted[T] {
	options := make([]Weighted[T], 0, len(weights))
	for v, w := range weights {
		options = append(options, Weighted[T]{Value: v, Weight: w})
	}
	slices.SortFunc(options, func(a, b Weighted[T]) int {
		return cmp.Compare(a.Value, b.Value)
	})

	return options
}

// Point is a single (x, weight) control point of a Curve.
type Point struct {
	X      float64
	Weight float64
}

// Curve is a piecewise-linear continuous probability distribution over
// [Domain()]. It is immutable after construction: NewCurve and Normal are
// the only constructors, and both validate their inputs, so every Curve
// in circulation satisfies the invariants (>= 2 points, strictly
// increasing finite x, finite non-negative weights).
type Curve struct {
	points []Point
}

// NewCurve validates points and returns the curve they define.
//
// Returns ErrInvalidCurve if fewer than two points are given, any
// coordinate is non-finite, or x values are not strictly increasing;
// ErrNegativeWeight if any weight is below zero.
// Complexity: O(n).
func NewCurve(points ...Point) (*Curve, error) {
	if len(points) < 2 {
		return nil, ErrInvalidCurve
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) ||
			math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) {
			return nil, ErrInvalidCurve
		}
		if p.Weight < 0 {
			return nil, ErrNegativeWeight
		}
		if i > 0 && points[i-1].X >= p.X {
			return nil, ErrInvalidCurve
		}
	}

	return &Curve{points: slices.Clone(points)}, nil
}

// Points returns a copy of the curve's control points.
func (c *Curve) Points() []Point {
	return slices.Clone(c.points)
}

// Domain returns the smallest and largest x covered by the curve.
func (c *Curve) Domain() (min, max float64) {
	return c.points[0].X, c.points[len(c.points)-1].X
}

// MaxWeight returns the largest control-point weight. Interior weights
// never exceed it because segments are linear.
func (c *Curve) MaxWeight() float64 {
	max := c.points[0].Weight
	for _, p := range c.points[1:] {
		if p.Weight > max {
			max = p.Weight
		}
	}

	return max
}

// uniform draws from [0, 1) using rng, or the shared global source when
// rng is nil.
func uniform(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}

	return rng.Float64()
}
