package markov

import mrand "math/rand"

// Default group markers used by the tokenizer.
const (
	DefaultOpenMarker  = "<<"
	DefaultCloseMarker = ">>"
)

type config struct {
	rng         *mrand.Rand
	openMarker  string
	closeMarker string
	distinct    bool
	interpolate bool
}

// Option configures graph construction and tokenization.
type Option func(*config)

// WithSource sets the random source used by the graph's walking and
// noise operations. A graph built without one falls back to the shared
// global source.
func WithSource(rng *mrand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// WithGroupMarkers overrides the delimiters that bind a substring into
// a single token. Empty markers disable grouping.
func WithGroupMarkers(open, close string) Option {
	return func(c *config) {
		c.openMarker = open
		c.closeMarker = close
	}
}

// WithDistinctTokens makes FromString create one node per token
// occurrence instead of merging repeated tokens into a shared node.
func WithDistinctTokens() Option {
	return func(c *config) { c.distinct = true }
}

// WithInterpolatedDistances makes FromString fill every integer
// distance between the smallest and largest configured distances,
// interpolating the missing weights linearly.
func WithInterpolatedDistances() Option {
	return func(c *config) { c.interpolate = true }
}

func newConfig(opts []Option) config {
	cfg := config{
		openMarker:  DefaultOpenMarker,
		closeMarker: DefaultCloseMarker,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}
