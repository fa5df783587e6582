package engine

import (
	"math/rand"

	"github.com/lixenwraith/techfolio/parameter"
)

// GridLine is a full-width or full-height line with a scrolling dash offset
type GridLine struct {
	Vertical bool
	Pos      float64
	Offset   float64
	Speed    float64
	Opacity  float64
}

// NewGridLine spawns a line at a random position along the matching axis
// Opacity starts at zero, which keeps the line invisible
func NewGridLine(rng *rand.Rand, b Bounds, vertical bool) GridLine {
	extent := b.Height
	if vertical {
		extent = b.Width
	}
	return GridLine{
		Vertical: vertical,
		Pos:      rng.Float64() * extent,
		Speed:    randRange(rng, parameter.GridSpeedMin, parameter.GridSpeedRange),
	}
}

// Update scrolls the dash offset, wrapping past GridWrap
func (g *GridLine) Update() {
	g.Offset += g.Speed
	if g.Offset > parameter.GridWrap {
		g.Offset = 0
	}
}

// Visible reports whether drawing the line would produce any output
func (g *GridLine) Visible() bool {
	return g.Opacity > 0
}
