package soft

import (
	"fmt"
	mrand "math/rand"
)

// Channel is one color component of a Color: either a fixed value or
// a drifting Int.
type Channel interface {
	resolve(rng *mrand.Rand) (int, error)
}

type staticChannel int

func (c staticChannel) resolve(*mrand.Rand) (int, error) { return int(c), nil }

type softChannel struct {
	i Int
}

func (c softChannel) resolve(rng *mrand.Rand) (int, error) { return c.i.Get(rng) }

// StaticChannel returns a channel fixed at v.
func StaticChannel(v int) Channel { return staticChannel(v) }

// SoftChannel returns a channel that drifts with i.
func SoftChannel(i Int) Channel { return softChannel{i: i} }

// RGB is a resolved color. Components are always within [0, 255].
type RGB struct {
	R, G, B int
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Color is an RGB color whose channels drift independently.
type Color struct {
	red, green, blue Channel
}

// NewColor builds a color from three channels.
func NewColor(red, green, blue Channel) (Color, error) {
	if red == nil || green == nil || blue == nil {
		return Color{}, ErrInvalidChannel
	}
	return Color{red: red, green: green, blue: blue}, nil
}

// Get resolves every channel, clamping each into [0, 255].
func (c Color) Get(rng *mrand.Rand) (RGB, error) {
	r, err := c.red.resolve(rng)
	if err != nil {
		return RGB{}, err
	}
	g, err := c.green.resolve(rng)
	if err != nil {
		return RGB{}, err
	}
	b, err := c.blue.resolve(rng)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}, nil
}

// GetHex resolves the color and formats it as "#RRGGBB".
func (c Color) GetHex(rng *mrand.Rand) (string, error) {
	rgb, err := c.Get(rng)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
