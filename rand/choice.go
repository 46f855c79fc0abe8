package rand

import (
	"math/rand"
	"slices"
)

// Choice picks one option from a weighted set.
//
// A uniform draw is taken in [0, total weight) and the options are walked
// in order, accumulating weight; the first option whose cumulative weight
// exceeds the draw wins. The intervals are half-open, so boundary draws
// resolve to the earlier option and zero-weight options are never chosen.
//
// Returns ErrNegativeWeight if any weight is below zero, and
// ErrProbabilityUndefined if the set is empty or its total weight is not
// positive.
// Complexity: O(n).
func Choice[T any](rng *rand.Rand, options []Weighted[T]) (T, error) {
	_, value, err := ChoiceIndex(rng, options)

	return value, err
}

// ChoiceIndex is Choice returning the picked option's index alongside its
// value, for callers that carry duplicate values and need to know exactly
// which option was hit.
func ChoiceIndex[T any](rng *rand.Rand, options []Weighted[T]) (int, T, error) {
	var zero T

	var total float64
	for _, opt := range options {
		if opt.Weight < 0 {
			return 0, zero, ErrNegativeWeight
		}
		total += opt.Weight
	}
	if len(options) == 0 || total <= 0 {
		return 0, zero, ErrProbabilityUndefined
	}

	draw := uniform(rng) * total
	var cumulative float64
	for i, opt := range options {
		cumulative += opt.Weight
		if draw < cumulative {
			return i, opt.Value, nil
		}
	}

	// Accumulated rounding can leave draw a hair past the final sum;
	// resolve to the last option that carries any weight.
	for i := len(options) - 1; i >= 0; i-- {
		if options[i].Weight > 0 {
			return i, options[i].Value, nil
		}
	}

	return 0, zero, ErrProbabilityUndefined
}

// Order produces a permutation of all option values by sampling without
// replacement: Choice is applied to the remaining options, the winner is
// removed, and the round repeats until the set is exhausted. Heavier
// options therefore tend to appear earlier, but placement is only
// probabilistically biased, never guaranteed.
//
// An empty set yields an empty permutation. Any weight below zero returns
// ErrNegativeWeight; any zero weight returns ErrProbabilityUndefined,
// since an option that can never be chosen has no defined position.
// Complexity: O(n²).
func Order[T any](rng *rand.Rand, options []Weighted[T]) ([]T, error) {
	if len(options) == 0 {
		return []T{}, nil
	}
	for _, opt := range options {
		if opt.Weight < 0 {
			return nil, ErrNegativeWeight
		}
		if opt.Weight == 0 {
			return nil, ErrProbabilityUndefined
		}
	}

	remaining := slices.Clone(options)
	ordered := make([]T, 0, len(options))
	for len(remaining) > 0 {
		i, value, err := ChoiceIndex(rng, remaining)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, value)
		remaining = slices.Delete(remaining, i, i+1)
	}

	return ordered, nil
}
