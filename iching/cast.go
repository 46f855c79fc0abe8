package iching

import (
	mrand "math/rand"

	"github.com/ajyoon/blur/rand"
)

// Method selects how a Cast draws its lines.
type Method int

const (
	// ThreeCoin draws each line by tossing three coins: every line
	// kind is a multiple of 1/16.
	ThreeCoin Method = iota
	// Yarrow approximates the yarrow-stalk probabilities, which favor
	// static yin and moving yang.
	Yarrow
	// Naive skips line casting and picks a hexagram uniformly, with
	// no moving lines.
	Naive
)

func (m Method) String() string {
	switch m {
	case ThreeCoin:
		return "three coin"
	case Yarrow:
		return "yarrow"
	case Naive:
		return "naive"
	}
	return "unknown"
}

// Reading is the result of a Cast: the primary hexagram and the one
// its moving lines transform into. With no moving lines the two are
// equal; the Naive method leaves Moving as the zero Hexagram.
type Reading struct {
	Hexagram Hexagram
	Moving   Hexagram
}

// HasMoving reports whether the reading carries a transformed
// hexagram.
func (r Reading) HasMoving() bool { return r.Moving.Number != 0 }

// lineKind is one of the four outcomes of casting a single line.
type lineKind int

const (
	movingYang lineKind = iota
	movingYin
	staticYang
	staticYin
)

var threeCoinLines = []rand.Weighted[lineKind]{
	{Value: movingYang, Weight: 2},
	{Value: movingYin, Weight: 2},
	{Value: staticYang, Weight: 6},
	{Value: staticYin, Weight: 6},
}

var yarrowLines = []rand.Weighted[lineKind]{
	{Value: movingYang, Weight: 8},
	{Value: movingYin, Weight: 2},
	{Value: staticYang, Weight: 11},
	{Value: staticYin, Weight: 17},
}

// Cast performs one divination with the given method.
func Cast(rng *mrand.Rand, method Method) (Reading, error) {
	var lineWeights []rand.Weighted[lineKind]
	switch method {
	case ThreeCoin:
		lineWeights = threeCoinLines
	case Yarrow:
		lineWeights = yarrowLines
	case Naive:
		n := 1 + int(uniform(rng)*64)
		if n > 64 {
			n = 64
		}
		h, err := Lookup(n)
		if err != nil {
			return Reading{}, err
		}
		return Reading{Hexagram: h}, nil
	default:
		return Reading{}, ErrUnknownMethod
	}

	var primary, transformed [6]uint8
	for i := 0; i < 6; i++ {
		line, err := rand.Choice(rng, lineWeights)
		if err != nil {
			return Reading{}, err
		}
		switch line {
		case movingYang:
			primary[i], transformed[i] = 1, 0
		case movingYin:
			primary[i], transformed[i] = 0, 1
		case staticYang:
			primary[i], transformed[i] = 1, 1
		case staticYin:
			primary[i], transformed[i] = 0, 0
		}
	}

	h1, err := Lookup(hexagramByLines[primary])
	if err != nil {
		return Reading{}, err
	}
	h2, err := Lookup(hexagramByLines[transformed])
	if err != nil {
		return Reading{}, err
	}
	return Reading{Hexagram: h1, Moving: h2}, nil
}

func uniform(rng *mrand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return mrand.Float64()
}
