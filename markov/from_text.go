package markov

import (
	"fmt"
	"os"

	"github.com/ajyoon/blur/rand"
)

// FromString builds a graph from text. Each token becomes a node, and
// for every entry d:w in distanceWeights each token's node gains a
// link of weight w to the node of the token d positions away. Negative
// distances look backward, 0 is a self-link, and distances past either
// end of the token sequence wrap around. A nil or empty map defaults
// to {1: 1}, a plain forward chain.
//
// Repeated tokens share a single node unless WithDistinctTokens is
// given.
func FromString(text string, distanceWeights map[int]float64, opts ...Option) (*Graph, error) {
	cfg := newConfig(opts)

	if len(distanceWeights) == 0 {
		distanceWeights = map[int]float64{1: 1}
	}
	weights := rand.FromMap(distanceWeights)
	for _, dw := range weights {
		if dw.Weight < 0 {
			return nil, rand.ErrNegativeWeight
		}
	}
	if cfg.interpolate {
		var err error
		weights, err = interpolateDistances(weights)
		if err != nil {
			return nil, err
		}
	}

	tokens, err := tokenize(text, cfg.openMarker, cfg.closeMarker)
	if err != nil {
		return nil, err
	}

	g := newGraph(cfg)
	if len(tokens) == 0 {
		return g, nil
	}

	occupants := make([]*Node, len(tokens))
	for i, tok := range tokens {
		if !cfg.distinct {
			if n, ok := g.FindNodeByValue(tok); ok {
				occupants[i] = n
				continue
			}
		}
		occupants[i] = g.Add(tok)
	}

	n := len(tokens)
	for i := range tokens {
		for _, dw := range weights {
			j := ((i+dw.Value)%n + n) % n
			occupants[i].addEdge(occupants[j].id, dw.Weight)
		}
	}
	return g, nil
}

// FromFile reads path and builds a graph from its contents with
// FromString.
func FromFile(path string, distanceWeights map[int]float64, opts ...Option) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("markov: reading %s: %w", path, err)
	}
	return FromString(string(data), distanceWeights, opts...)
}

// interpolateDistances fills every integer distance between the
// smallest and largest configured distances, reading missing weights
// off the piecewise-linear curve through the configured points.
func interpolateDistances(weights []rand.Weighted[int]) ([]rand.Weighted[int], error) {
	if len(weights) < 2 {
		return weights, nil
	}
	points := make([]rand.Point, len(weights))
	for i, dw := range weights {
		points[i] = rand.Point{X: float64(dw.Value), Weight: dw.Weight}
	}
	curve, err := rand.NewCurve(points...)
	if err != nil {
		return nil, err
	}
	lo, hi := weights[0].Value, weights[len(weights)-1].Value
	full := make([]rand.Weighted[int], 0, hi-lo+1)
	for d := lo; d <= hi; d++ {
		w, err := curve.WeightAt(float64(d))
		if err != nil {
			return nil, err
		}
		full = append(full, rand.Weighted[int]{Value: d, Weight: w})
	}
	return full, nil
}
