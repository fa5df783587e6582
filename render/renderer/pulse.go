package renderer

import (
	"math"

	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
	"github.com/lixenwraith/techfolio/vmath"
)

// PulseRenderer draws each pulsing circle as a stroked ring of cells
type PulseRenderer struct {
	world *engine.World
}

func NewPulseRenderer(world *engine.World) *PulseRenderer {
	return &PulseRenderer{world: world}
}

func (r *PulseRenderer) IsVisible() bool {
	return r.world.Config.Effects.Pulses
}

func (r *PulseRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range r.world.Pulses {
		p := &r.world.Pulses[i]
		if p.Opacity <= 0 || p.Radius <= 0 {
			continue
		}
		r.ring(ctx, buf, p)
	}
}

// ring marks cells whose center lies within half a cell width of the circle
func (r *PulseRenderer) ring(ctx render.RenderContext, buf *render.RenderBuffer, p *engine.Pulse) {
	s := ctx.Surface
	tolerance := s.CellWidth / 2

	minX, minY := s.ToCell(p.X-p.Radius-tolerance, p.Y-p.Radius-tolerance)
	maxX, maxY := s.ToCell(p.X+p.Radius+tolerance, p.Y+p.Radius+tolerance)
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, ctx.Width-1), min(maxY, ctx.Height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			cx, cy := s.CellCenter(x, y)
			d := vmath.Distance(cx, cy, p.X, p.Y)
			if math.Abs(d-p.Radius) <= tolerance {
				buf.Set(x, y, visual.PulseChar, visual.RgbAccent, visual.RgbBackground,
					render.BlendMaxFg, p.Opacity, render.AttrNone)
			}
		}
	}
}
