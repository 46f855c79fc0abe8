package markov

import (
	"fmt"

	"github.com/ajyoon/blur/rand"
)

// edge is the internal link record. Targets are held by id rather than
// pointer so removed nodes cannot be resurrected through stale links.
type edge struct {
	target int
	weight float64
}

// Node is a value inside a Graph together with its outgoing links.
// Nodes are created by their graph (Add, FromString, ...) and remain
// bound to it for life.
type Node struct {
	value string
	id    int
	graph *Graph

	// links preserves insertion order; index maps a target id to its
	// position in links for O(1) weight accumulation.
	links []edge
	index map[int]int
}

// Link is the exported view of one outgoing edge.
type Link struct {
	Target *Node
	Weight float64
}

// Value returns the node's string value.
func (n *Node) Value() string { return n.value }

func (n *Node) String() string {
	return fmt.Sprintf("Node(%q, %d links)", n.value, len(n.links))
}

// Links returns the node's outgoing links in insertion order. Links
// whose target has been removed from the graph are omitted.
func (n *Node) Links() []Link {
	out := make([]Link, 0, len(n.links))
	for _, e := range n.links {
		if t, ok := n.graph.byID[e.target]; ok {
			out = append(out, Link{Target: t, Weight: e.weight})
		}
	}
	return out
}

// LinkWeight reports the weight of the link to target and whether such
// a link exists.
func (n *Node) LinkWeight(target *Node) (float64, bool) {
	if target == nil || target.graph != n.graph {
		return 0, false
	}
	pos, ok := n.index[target.id]
	if !ok {
		return 0, false
	}
	return n.links[pos].weight, true
}

// TotalWeight is the sum of all outgoing link weights.
func (n *Node) TotalWeight() float64 {
	var total float64
	for _, e := range n.links {
		total += e.weight
	}
	return total
}

// AddLink adds weight toward target, creating the link if it does not
// exist and accumulating onto it if it does. The weight must be
// non-negative and target must belong to the same graph.
func (n *Node) AddLink(target *Node, weight float64) error {
	if target == nil {
		return ErrNilNode
	}
	if weight < 0 {
		return rand.ErrNegativeWeight
	}
	if !n.graph.owns(n) || !n.graph.owns(target) {
		return ErrForeignNode
	}
	n.addEdge(target.id, weight)
	return nil
}

// AddMutualLink links n to target and target back to n, each with the
// given weight.
func (n *Node) AddMutualLink(target *Node, weight float64) error {
	if err := n.AddLink(target, weight); err != nil {
		return err
	}
	return target.AddLink(n, weight)
}

// RemoveLink drops the link to target if one exists.
func (n *Node) RemoveLink(target *Node) {
	if target == nil || target.graph != n.graph {
		return
	}
	n.removeEdge(target.id)
}

// RemoveLinksToSelf drops the node's self-loop if one exists.
func (n *Node) RemoveLinksToSelf() {
	n.removeEdge(n.id)
}

// MergeLinksFrom folds every outgoing link of other into n, summing
// weights where both nodes link to the same target. With
// mergeSameValueTargets set, an incoming link also combines with the
// first existing link whose target holds an equal value, even when the
// targets are distinct nodes.
func (n *Node) MergeLinksFrom(other *Node, mergeSameValueTargets bool) error {
	if other == nil {
		return ErrNilNode
	}
	if !n.graph.owns(n) || other.graph != n.graph {
		return ErrForeignNode
	}
	// Snapshot first: other may be n itself.
	snapshot := make([]edge, len(other.links))
	copy(snapshot, other.links)
	for _, e := range snapshot {
		if mergeSameValueTargets {
			n.addEdgeMergingValue(e.target, e.weight)
		} else {
			n.addEdge(e.target, e.weight)
		}
	}
	return nil
}

// Pick selects one of the node's link targets by weighted choice using
// the graph's random source. A node with no positively weighted links
// yields rand.ErrProbabilityUndefined.
func (n *Node) Pick() (*Node, error) {
	options := make([]rand.Weighted[*Node], 0, len(n.links))
	for _, e := range n.links {
		if t, ok := n.graph.byID[e.target]; ok {
			options = append(options, rand.Weighted[*Node]{Value: t, Weight: e.weight})
		}
	}
	return rand.Choice(n.graph.rng, options)
}

// addEdgeMergingValue accumulates weight onto the first existing link
// whose target carries the same value as targetID's node, falling back
// to a plain addEdge when no such link exists.
func (n *Node) addEdgeMergingValue(targetID int, weight float64) {
	target, ok := n.graph.byID[targetID]
	if !ok {
		n.addEdge(targetID, weight)
		return
	}
	for i, e := range n.links {
		if t, ok := n.graph.byID[e.target]; ok && t.value == target.value {
			n.links[i].weight += weight
			return
		}
	}
	n.addEdge(targetID, weight)
}

func (n *Node) addEdge(targetID int, weight float64) {
	if pos, ok := n.index[targetID]; ok {
		n.links[pos].weight += weight
		return
	}
	n.index[targetID] = len(n.links)
	n.links = append(n.links, edge{target: targetID, weight: weight})
}

func (n *Node) removeEdge(targetID int) {
	pos, ok := n.index[targetID]
	if !ok {
		return
	}
	n.links = append(n.links[:pos], n.links[pos+1:]...)
	delete(n.index, targetID)
	for i := pos; i < len(n.links); i++ {
		n.index[n.links[i].target] = i
	}
}
