// Package blur is a toolkit for chance operations in generative and
// algorithmic art: non-uniform random values, weighted sequence models,
// and a couple of classic aleatoric collaborators.
//
// What lives where:
//
//	rand/   the weighted sampling engine: discrete weighted choice,
//	        weighted ordering, piecewise-linear probability curves,
//	        normal-distribution curves and rejection sampling
//	markov/ weighted directed graphs over text tokens, built from
//	        strings or files and traversed by weighted random walk
//	soft/   drifting values: bools, numbers, option sets and colors
//	        whose value is re-sampled on every read
//	iching/ the 64 hexagrams and three divination casting methods
//
// Everything is in-memory, single-threaded and deterministic for a given
// RNG seed: every sampling entry point accepts a *math/rand.Rand, and a
// nil source falls back to the shared global one.
//
//	go get github.com/ajyoon/blur
package blur
