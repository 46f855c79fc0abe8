package soft

import (
	"math"
	mrand "math/rand"

	"github.com/ajyoon/blur/rand"
)

// Bool resolves to true with a fixed probability.
type Bool struct {
	probTrue float64
}

// NewBool returns a Bool that is true with probability probTrue.
// Values outside [0, 1] behave as their nearest bound.
func NewBool(probTrue float64) Bool {
	return Bool{probTrue: probTrue}
}

// Get resolves the Bool.
func (b Bool) Get(rng *mrand.Rand) bool {
	return rand.Bool(rng, b.probTrue)
}

// Float resolves to a float64 drawn from a weight curve.
type Float struct {
	curve *rand.Curve
}

// NewFloat wraps curve as a drifting float. A nil curve yields
// rand.ErrInvalidCurve.
func NewFloat(curve *rand.Curve) (Float, error) {
	if curve == nil {
		return Float{}, rand.ErrInvalidCurve
	}
	return Float{curve: curve}, nil
}

// BoundedUniform returns a Float distributed uniformly over [lo, hi].
// hi must exceed lo.
func BoundedUniform(lo, hi float64) (Float, error) {
	if hi <= lo {
		return Float{}, rand.ErrInvalidBounds
	}
	curve, err := rand.NewCurve(rand.Point{X: lo, Weight: 1}, rand.Point{X: hi, Weight: 1})
	if err != nil {
		return Float{}, err
	}
	return Float{curve: curve}, nil
}

// Get resolves the Float by sampling its curve.
func (f Float) Get(rng *mrand.Rand) (float64, error) {
	return f.curve.Sample(rng)
}

// Curve returns the underlying weight curve.
func (f Float) Curve() *rand.Curve { return f.curve }

// Int is a Float rounded to the nearest integer.
type Int struct {
	f Float
}

// NewInt wraps curve as a drifting integer.
func NewInt(curve *rand.Curve) (Int, error) {
	f, err := NewFloat(curve)
	if err != nil {
		return Int{}, err
	}
	return Int{f: f}, nil
}

// BoundedUniformInt returns an Int distributed uniformly over the
// integers nearest [lo, hi].
func BoundedUniformInt(lo, hi float64) (Int, error) {
	f, err := BoundedUniform(lo, hi)
	if err != nil {
		return Int{}, err
	}
	return Int{f: f}, nil
}

// Get resolves the Int.
func (i Int) Get(rng *mrand.Rand) (int, error) {
	x, err := i.f.Get(rng)
	if err != nil {
		return 0, err
	}
	return int(math.Round(x)), nil
}

// Options resolves to one of a fixed set of weighted values.
type Options[T any] struct {
	options []rand.Weighted[T]
}

// NewOptions validates and wraps a weighted option set. Negative
// weights yield rand.ErrNegativeWeight; an empty set or one with no
// positive weight yields rand.ErrProbabilityUndefined.
func NewOptions[T any](options []rand.Weighted[T]) (Options[T], error) {
	var total float64
	for _, opt := range options {
		if opt.Weight < 0 {
			return Options[T]{}, rand.ErrNegativeWeight
		}
		total += opt.Weight
	}
	if len(options) == 0 || total <= 0 {
		return Options[T]{}, rand.ErrProbabilityUndefined
	}
	owned := make([]rand.Weighted[T], len(options))
	copy(owned, options)
	return Options[T]{options: owned}, nil
}

// UniformOptions wraps values with equal weights.
func UniformOptions[T any](values []T) (Options[T], error) {
	return NewOptions(rand.UniformWeights(values, 1))
}

// RandomWeightedOptions wraps values with weights drawn uniformly from
// (0, maxWeight].
func RandomWeightedOptions[T any](rng *mrand.Rand, values []T, maxWeight float64) (Options[T], error) {
	if maxWeight <= 0 {
		return Options[T]{}, rand.ErrProbabilityUndefined
	}
	options := make([]rand.Weighted[T], len(values))
	for i, v := range values {
		options[i] = rand.Weighted[T]{Value: v, Weight: maxWeight * (1 - uniform(rng))}
	}
	return NewOptions(options)
}

// Get resolves the Options to one of its values.
func (o Options[T]) Get(rng *mrand.Rand) (T, error) {
	return rand.Choice(rng, o.options)
}

func uniform(rng *mrand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return mrand.Float64()
}
