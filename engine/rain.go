package engine

import (
	"math/rand"

	"github.com/lixenwraith/techfolio/parameter"
)

// RainDrop is a falling binary digit
type RainDrop struct {
	X, Y    float64
	Speed   float64
	Glyph   rune
	Opacity float64
}

// NewRainDrop spawns a drop somewhere in the band one screen above the surface
func NewRainDrop(rng *rand.Rand, b Bounds) RainDrop {
	glyph := '0'
	if rng.Float64() > 0.5 {
		glyph = '1'
	}
	return RainDrop{
		X:       rng.Float64() * b.Width,
		Y:       rng.Float64()*b.Height - b.Height,
		Speed:   randRange(rng, parameter.RainSpeedMin, parameter.RainSpeedRange),
		Glyph:   glyph,
		Opacity: randRange(rng, parameter.RainAlphaMin, parameter.RainAlphaRange),
	}
}

// Update moves the drop down, wrapping to just above the top with a new column
func (d *RainDrop) Update(rng *rand.Rand, b Bounds) {
	d.Y += d.Speed
	if d.Y > b.Height {
		d.Y = parameter.RainRespawnY
		d.X = rng.Float64() * b.Width
	}
}
