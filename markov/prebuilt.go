package markov

import "github.com/ajyoon/blur/rand"

// Prebuilt node values shared by the indenter graphs.
const (
	Hold       = "Hold"
	ShiftRight = "Shift Right"
	ShiftLeft  = "Shift Left"
	JumpRight  = "Jump Right"
	JumpLeft   = "Jump Left"
)

// Indenter returns a graph controlling line indentation drift, plus a
// per-node weight profile mapping each node value to the signed
// indentation deltas it emits. Hold keeps the current indentation,
// the Shift nodes nudge it, and the Jump nodes move it far.
func Indenter(opts ...Option) (*Graph, map[string][]rand.Weighted[int]) {
	g := NewGraph(opts...)
	hold := g.Add(Hold)
	sr := g.Add(ShiftRight)
	sl := g.Add(ShiftLeft)
	jr := g.Add(JumpRight)
	jl := g.Add(JumpLeft)

	hold.addEdge(hold.id, 40)
	hold.addEdge(sr.id, 3)
	hold.addEdge(sl.id, 3)
	hold.addEdge(jr.id, 10)
	hold.addEdge(jl.id, 10)

	sr.addEdge(hold.id, 60)
	sr.addEdge(sr.id, 100)
	sr.addEdge(sl.id, 50)
	sr.addEdge(jr.id, 10)
	sr.addEdge(jl.id, 10)

	sl.addEdge(hold.id, 60)
	sl.addEdge(sr.id, 30)
	sl.addEdge(sl.id, 100)
	sl.addEdge(jr.id, 20)

	jr.addEdge(hold.id, 10)
	jl.addEdge(hold.id, 30)

	profiles := map[string][]rand.Weighted[int]{
		Hold:       {{Value: 0, Weight: 1}},
		ShiftRight: {{Value: 1, Weight: 20}, {Value: 3, Weight: 3}, {Value: 11, Weight: 1}},
		ShiftLeft:  {{Value: -1, Weight: 20}, {Value: -3, Weight: 3}, {Value: -11, Weight: 1}},
		JumpRight: {
			{Value: 14, Weight: 5}, {Value: 85, Weight: 25},
			{Value: 110, Weight: 1}, {Value: 170, Weight: 10},
		},
		JumpLeft: {
			{Value: -14, Weight: 5}, {Value: -85, Weight: 25},
			{Value: -110, Weight: 1}, {Value: -170, Weight: 10},
		},
	}
	return g, profiles
}

// IndenterErratic is Indenter with a stronger pull toward the jump
// nodes and sparser shift deltas.
func IndenterErratic(opts ...Option) (*Graph, map[string][]rand.Weighted[int]) {
	g := NewGraph(opts...)
	hold := g.Add(Hold)
	sr := g.Add(ShiftRight)
	sl := g.Add(ShiftLeft)
	jr := g.Add(JumpRight)
	jl := g.Add(JumpLeft)

	hold.addEdge(hold.id, 40)
	hold.addEdge(sr.id, 3)
	hold.addEdge(sl.id, 3)
	hold.addEdge(jr.id, 30)
	hold.addEdge(jl.id, 30)

	sr.addEdge(hold.id, 60)
	sr.addEdge(sr.id, 100)
	sr.addEdge(sl.id, 50)

	sl.addEdge(hold.id, 60)
	sl.addEdge(sr.id, 30)
	sl.addEdge(sl.id, 100)
	sl.addEdge(jr.id, 20)

	jr.addEdge(hold.id, 10)
	jl.addEdge(hold.id, 30)

	profiles := map[string][]rand.Weighted[int]{
		Hold:       {{Value: 0, Weight: 1}},
		ShiftRight: {{Value: 3, Weight: 6}, {Value: 11, Weight: 1}},
		ShiftLeft:  {{Value: -3, Weight: 6}, {Value: -11, Weight: 1}},
		JumpRight: {
			{Value: 14, Weight: 0}, {Value: 85, Weight: 20},
			{Value: 110, Weight: 1}, {Value: 170, Weight: 10},
		},
		JumpLeft: {
			{Value: -14, Weight: 0}, {Value: -85, Weight: 20},
			{Value: -110, Weight: 1}, {Value: -170, Weight: 10},
		},
	}
	return g, profiles
}
