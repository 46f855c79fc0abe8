package markov_test

import (
	"testing"

	"github.com/ajyoon/blur/markov"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildTriangle makes a three-node graph whose 9 link weights come
// from ws, laid out row-major as a full adjacency matrix including
// self-loops.
func buildTriangle(ws []float64) (*markov.Graph, []*markov.Node) {
	g := markov.NewGraph()
	nodes := []*markov.Node{g.Add("a"), g.Add("b"), g.Add("c")}
	k := 0
	for _, src := range nodes {
		for _, dst := range nodes {
			if err := src.AddLink(dst, ws[k]); err != nil {
				panic(err)
			}
			k++
		}
	}
	return g, nodes
}

func TestGraphProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(2718)

	properties := gopter.NewProperties(parameters)

	weightsGen := gen.SliceOfN(9, gen.Float64Range(0, 100))

	// Merging never creates or destroys link weight.
	properties.Property("merge conserves total link weight", prop.ForAll(
		func(ws []float64) bool {
			g, nodes := buildTriangle(ws)
			before := g.TotalLinkWeight()
			if err := g.MergeNodes(nodes[0], nodes[1]); err != nil {
				return false
			}
			after := g.TotalLinkWeight()
			diff := before - after
			if diff < 0 {
				diff = -diff
			}
			return g.Len() == 2 && diff < 1e-6
		},
		weightsGen,
	))

	// Removing a node drops exactly the weight on its row and column.
	properties.Property("remove drops the node's row and column", prop.ForAll(
		func(ws []float64) bool {
			g, nodes := buildTriangle(ws)
			var surviving float64
			k := 0
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					if i != 1 && j != 1 {
						surviving += ws[k]
					}
					k++
				}
			}
			g.RemoveNode(nodes[1])
			diff := g.TotalLinkWeight() - surviving
			if diff < 0 {
				diff = -diff
			}
			return g.Len() == 2 && diff < 1e-6
		},
		weightsGen,
	))

	// Feathering only ever adds weight, and all weights stay
	// non-negative.
	properties.Property("feathering never reduces any link", prop.ForAll(
		func(ws []float64, factor float64) bool {
			g, nodes := buildTriangle(ws)
			type key struct{ i, j int }
			before := make(map[key]float64)
			for i, src := range nodes {
				for j, dst := range nodes {
					if w, ok := src.LinkWeight(dst); ok {
						before[key{i, j}] = w
					}
				}
			}
			g.FeatherLinks(factor, true)
			for i, src := range nodes {
				for j, dst := range nodes {
					w, ok := src.LinkWeight(dst)
					if !ok {
						continue
					}
					if w < before[key{i, j}] || w < 0 {
						return false
					}
				}
			}
			return true
		},
		weightsGen,
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}
