package rand_test

import (
	"fmt"

	"github.com/ajyoon/blur/rand"
)

// Interpolate a weight on a rising curve.
func ExampleCurve_WeightAt() {
	curve, _ := rand.NewCurve(rand.Point{X: 0, Weight: 0}, rand.Point{X: 10, Weight: 10})

	w, _ := curve.WeightAt(5)
	fmt.Println(w)
	// Output: 5
}

// Clip a triangular curve to [1, 3]; the cut edges are re-attached at
// their interpolated heights.
func ExampleCurve_Bound() {
	curve, _ := rand.NewCurve(
		rand.Point{X: 0, Weight: 0},
		rand.Point{X: 2, Weight: 2},
		rand.Point{X: 4, Weight: 0},
	)

	bounded, _ := curve.Bound(rand.WithMinimum(1), rand.WithMaximum(3))
	for _, p := range bounded.Points() {
		fmt.Printf("(%g, %g) ", p.X, p.Weight)
	}
	// Output: (1, 1) (2, 2) (3, 1)
}

// Maps normalize into a deterministic, value-sorted option sequence.
func ExampleFromMap() {
	options := rand.FromMap(map[string]float64{
		"often":     10,
		"rarely":    1,
		"sometimes": 3,
	})
	for _, opt := range options {
		fmt.Printf("%s=%g ", opt.Value, opt.Weight)
	}
	// Output: often=10 rarely=1 sometimes=3
}
