// Package soft provides values that drift: lightweight wrappers that
// resolve to a concrete value on every Get call according to a weight
// profile from github.com/ajyoon/blur/rand.
//
// Bool flips with a fixed probability, Float and Int draw from a
// continuous curve, Options picks among discrete weighted choices, and
// Color resolves per-channel soft integers into an RGB triple.
//
// Soft values are immutable after construction and cheap to copy.
// Every Get takes a *math/rand.Rand; passing nil uses the shared
// global source.
package soft
