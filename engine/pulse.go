package engine

import (
	"math/rand"

	"github.com/lixenwraith/techfolio/parameter"
)

// Pulse is an expanding ring that fades as it grows and respawns elsewhere
type Pulse struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Speed     float64
	Opacity   float64
}

// NewPulse spawns a ring of zero radius at a random position
func NewPulse(rng *rand.Rand, b Bounds) Pulse {
	x, y := b.randomPoint(rng)
	return Pulse{
		X:         x,
		Y:         y,
		MaxRadius: randRange(rng, parameter.PulseMaxRadiusMin, parameter.PulseMaxRadiusRange),
		Speed:     randRange(rng, parameter.PulseSpeedMin, parameter.PulseSpeedRange),
		Opacity:   parameter.PulseAlpha,
	}
}

// Update grows the ring; opacity falls linearly to zero at MaxRadius
// On reaching MaxRadius the ring restarts from zero at full opacity in a new spot
func (p *Pulse) Update(rng *rand.Rand, b Bounds) {
	p.Radius += p.Speed
	if p.Radius >= p.MaxRadius {
		p.Radius = 0
		p.Opacity = parameter.PulseAlpha
		p.X, p.Y = b.randomPoint(rng)
		return
	}
	p.Opacity = PulseOpacity(p.Radius, p.MaxRadius)
}

// PulseOpacity is the ring opacity at a given radius
func PulseOpacity(radius, maxRadius float64) float64 {
	if maxRadius <= 0 || radius >= maxRadius {
		return 0
	}
	if radius <= 0 {
		return parameter.PulseAlpha
	}
	return (1 - radius/maxRadius) * parameter.PulseAlpha
}
