package tree

import (
	"image/color"
	"math/rand"
)

// Rand is the sole source of randomness during generation. It wraps a
// seeded math/rand source, so a fixed seed replays the exact same tree
// as long as the call order is identical.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a random source seeded with seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// FloatIn returns a uniform float32 in [min, max]. min must be <= max;
// a single-point range always returns that point.
func (rn *Rand) FloatIn(min, max float32) float32 {
	return min + (max-min)*rn.r.Float32()
}

// IntIn returns a uniform int in [min, max], both bounds inclusive.
// min must be <= max.
func (rn *Rand) IntIn(min, max int) int {
	return min + rn.r.Intn(max-min+1)
}

// LeafColor returns a random foliage color, green-biased and opaque.
// Channels are sampled in R, G, B order.
func (rn *Rand) LeafColor() color.RGBA {
	return color.RGBA{
		R: uint8(rn.IntIn(0, 49)),
		G: uint8(rn.IntIn(100, 255)),
		B: uint8(rn.IntIn(0, 99)),
		A: 255,
	}
}
