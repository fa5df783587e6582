package engine

import "math/rand"

// Bounds is the drawable surface extent in surface units
type Bounds struct {
	Width  float64
	Height float64
}

// Contains reports whether (x, y) lies inside the closed surface rectangle
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// randomPoint returns a uniform point in [0,Width) x [0,Height)
func (b Bounds) randomPoint(rng *rand.Rand) (float64, float64) {
	return rng.Float64() * b.Width, rng.Float64() * b.Height
}

// randRange returns a uniform value in [min, min+span)
func randRange(rng *rand.Rand, min, span float64) float64 {
	return rng.Float64()*span + min
}

// randCentered returns a uniform value in [-span/2, span/2)
func randCentered(rng *rand.Rand, span float64) float64 {
	return (rng.Float64() - 0.5) * span
}
