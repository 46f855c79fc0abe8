package markov

import (
	mrand "math/rand"
	"slices"

	"github.com/ajyoon/blur/rand"
)

// Graph is a weighted directed graph supporting Markov-style walks.
// The zero value is not usable; construct with NewGraph, FromString, or
// FromFile.
type Graph struct {
	rng     *mrand.Rand
	nodes   []*Node
	byID    map[int]*Node
	byValue map[string][]*Node
	nextID  int
	current *Node
}

// NewGraph returns an empty graph.
func NewGraph(opts ...Option) *Graph {
	return newGraph(newConfig(opts))
}

func newGraph(cfg config) *Graph {
	return &Graph{
		rng:     cfg.rng,
		byID:    make(map[int]*Node),
		byValue: make(map[string][]*Node),
	}
}

// Add creates a node holding value and returns it. Values need not be
// unique; each call creates a fresh node.
func (g *Graph) Add(value string) *Node {
	n := &Node{
		value: value,
		id:    g.nextID,
		graph: g,
		index: make(map[int]int),
	}
	g.nextID++
	g.nodes = append(g.nodes, n)
	g.byID[n.id] = n
	g.byValue[value] = append(g.byValue[value], n)
	return n
}

// Len reports the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns the graph's nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	return slices.Clone(g.nodes)
}

// Current returns the node the last Pick or PickFrom landed on, or nil
// if the graph has not been walked since the last Reset.
func (g *Graph) Current() *Node { return g.current }

// Reset clears the walk position so the next Pick starts fresh from a
// uniformly random node.
func (g *Graph) Reset() { g.current = nil }

// FindNodeByValue returns the first node holding value, in insertion
// order, and whether one exists.
func (g *Graph) FindNodeByValue(value string) (*Node, bool) {
	ns := g.byValue[value]
	if len(ns) == 0 {
		return nil, false
	}
	return ns[0], true
}

// HasNodeWithValue reports whether any node holds value.
func (g *Graph) HasNodeWithValue(value string) bool {
	return len(g.byValue[value]) > 0
}

// RemoveNode deletes n from the graph along with every link pointing
// at it. Removing nil or a node from another graph is a no-op.
func (g *Graph) RemoveNode(n *Node) {
	if !g.owns(n) {
		return
	}
	for _, other := range g.nodes {
		if other != n {
			other.removeEdge(n.id)
		}
	}
	g.detach(n)
}

// RemoveNodeByValue deletes every node holding value.
func (g *Graph) RemoveNodeByValue(value string) {
	for _, n := range slices.Clone(g.byValue[value]) {
		g.RemoveNode(n)
	}
}

// MergeNodes folds kill into keep and removes kill. Kill's outgoing
// links transfer to keep, links into kill are redirected at keep, and
// self-loops on kill become self-loops on keep. Weights toward shared
// targets are summed, so the graph's total link weight is unchanged.
func (g *Graph) MergeNodes(keep, kill *Node) error {
	if keep == nil || kill == nil {
		return ErrNilNode
	}
	if !g.owns(keep) || !g.owns(kill) {
		return ErrForeignNode
	}
	if keep == kill {
		return nil
	}
	for _, e := range kill.links {
		target := e.target
		if target == kill.id {
			target = keep.id
		}
		keep.addEdge(target, e.weight)
	}
	for _, n := range g.nodes {
		if n == kill {
			continue
		}
		if pos, ok := n.index[kill.id]; ok {
			w := n.links[pos].weight
			n.removeEdge(kill.id)
			n.addEdge(keep.id, w)
		}
	}
	g.detach(kill)
	return nil
}

// Pick advances the walk one step and returns the node landed on. The
// first Pick after construction or Reset chooses uniformly among all
// nodes; subsequent calls choose among the current node's links by
// weight. An empty graph or a dead-end node yields
// rand.ErrProbabilityUndefined.
func (g *Graph) Pick() (*Node, error) {
	if g.current == nil {
		start, err := rand.Choice(g.rng, rand.UniformWeights(g.nodes, 1))
		if err != nil {
			return nil, err
		}
		g.current = start
		return start, nil
	}
	return g.PickFrom(g.current)
}

// PickFrom advances the walk one step outward from start, which must
// belong to this graph.
func (g *Graph) PickFrom(start *Node) (*Node, error) {
	if start == nil {
		return nil, ErrNilNode
	}
	if !g.owns(start) {
		return nil, ErrForeignNode
	}
	next, err := start.Pick()
	if err != nil {
		return nil, err
	}
	g.current = next
	return next, nil
}

// TotalLinkWeight sums every link weight in the graph.
func (g *Graph) TotalLinkWeight() float64 {
	var total float64
	for _, n := range g.nodes {
		total += n.TotalWeight()
	}
	return total
}

func (g *Graph) owns(n *Node) bool {
	return n != nil && n.graph == g && g.byID[n.id] == n
}

// detach removes n from the graph's node table. Links pointing at n
// are left to be filtered lazily by id lookups.
func (g *Graph) detach(n *Node) {
	if i := slices.Index(g.nodes, n); i >= 0 {
		g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
	}
	delete(g.byID, n.id)
	vs := g.byValue[n.value]
	if i := slices.Index(vs, n); i >= 0 {
		vs = append(vs[:i], vs[i+1:]...)
		if len(vs) == 0 {
			delete(g.byValue, n.value)
		} else {
			g.byValue[n.value] = vs
		}
	}
	if g.current == n {
		g.current = nil
	}
}
