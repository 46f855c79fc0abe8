package markov

import (
	mrand "math/rand"
	"slices"

	"github.com/ajyoon/blur/rand"
)

// DefaultNoiseAmount is the uniform noise ceiling used by ApplyNoise
// when no option overrides it.
const DefaultNoiseAmount = 0.1

type noiseConfig struct {
	amount float64
	curve  *rand.Curve
}

// NoiseOption configures ApplyNoise.
type NoiseOption func(*noiseConfig)

// WithUniformNoise sets the ceiling for uniform noise: each link gains
// a uniformly random amount in [0, weight*amount].
func WithUniformNoise(amount float64) NoiseOption {
	return func(c *noiseConfig) { c.amount = amount }
}

// WithNoiseCurve draws each link's noise amount from curve instead of
// the uniform ceiling. Curves with negative domain can reduce weights;
// results are floored at zero.
func WithNoiseCurve(curve *rand.Curve) NoiseOption {
	return func(c *noiseConfig) { c.curve = curve }
}

// ApplyNoise perturbs every link weight in the graph in place.
func (g *Graph) ApplyNoise(opts ...NoiseOption) error {
	cfg := noiseConfig{amount: DefaultNoiseAmount}
	for _, o := range opts {
		o(&cfg)
	}
	for _, n := range g.nodes {
		for i := range n.links {
			var delta float64
			if cfg.curve != nil {
				d, err := cfg.curve.Sample(g.rng)
				if err != nil {
					return err
				}
				delta = d
			} else {
				delta = g.uniform() * n.links[i].weight * cfg.amount
			}
			w := n.links[i].weight + delta
			if w < 0 {
				w = 0
			}
			n.links[i].weight = w
		}
	}
	return nil
}

// FeatherLinks makes every node inherit its neighbors' links at
// reduced weight. For each link n->m, n gains m's links scaled by
// factor, by n's relative weight on m, and by m's own relative link
// weights. includeSelf controls whether links pointing back at n are
// inherited as self-loops.
func (g *Graph) FeatherLinks(factor float64, includeSelf bool) {
	for _, n := range g.nodes {
		total := n.TotalWeight()
		if total <= 0 {
			continue
		}
		// Snapshot both levels; inheritance must not feed on links
		// added during this node's own pass.
		for _, e := range slices.Clone(n.links) {
			neighbor, ok := g.byID[e.target]
			if !ok {
				continue
			}
			share := e.weight / total
			neighborTotal := neighbor.TotalWeight()
			if neighborTotal <= 0 {
				continue
			}
			for _, ne := range slices.Clone(neighbor.links) {
				if !includeSelf && ne.target == n.id {
					continue
				}
				n.addEdge(ne.target, (ne.weight/neighborTotal)*share*factor)
			}
		}
	}
}

func (g *Graph) uniform() float64 {
	if g.rng != nil {
		return g.rng.Float64()
	}
	return mrand.Float64()
}
