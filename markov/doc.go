// Package markov implements a weighted directed graph for first-order
// Markov-style chance walks.
//
// A Graph owns a set of Nodes. Each Node carries a string value and a
// list of outgoing links, where a link pairs a target node with a
// non-negative weight. Walking the graph (Pick, PickFrom) selects the
// next node by weighted choice over the current node's links, using the
// sampling engine from github.com/ajyoon/blur/rand.
//
// Graphs can be assembled by hand (Add, AddLink, AddMutualLink), built
// from text (FromString, FromFile), or taken off the shelf (Indenter,
// IndenterErratic). Once built they can be perturbed in place with
// ApplyNoise and FeatherLinks.
//
// Construction from text walks the token sequence and, for every
// configured signed distance d, links each token's node to the node of
// the token d positions away, wrapping around the ends of the sequence.
// Substrings wrapped in group markers (<< and >> by default) become
// single tokens regardless of their content.
//
// All mutating and walking operations are O(degree) or better per link
// touched; none of them are safe for concurrent use. Determinism
// follows the injected *math/rand.Rand: two graphs built and walked
// with equally seeded sources produce identical walks.
package markov
