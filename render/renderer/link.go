package renderer

import (
	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
	"github.com/lixenwraith/techfolio/vmath"
)

// LinkRenderer draws the proximity lines between nodes via Bresenham
type LinkRenderer struct {
	world *engine.World
}

func NewLinkRenderer(world *engine.World) *LinkRenderer {
	return &LinkRenderer{world: world}
}

func (r *LinkRenderer) IsVisible() bool {
	return r.world.Config.Effects.Nodes
}

func (r *LinkRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	nodes := r.world.Nodes
	for _, link := range r.world.Links() {
		a, b := &nodes[link.A], &nodes[link.B]
		x0, y0 := ctx.Surface.ToCell(a.X, a.Y)
		x1, y1 := ctx.Surface.ToCell(b.X, b.Y)
		glyph := lineGlyph(x1-x0, y1-y0)

		lt := vmath.NewLineTraverser(x0, y0, x1, y1)
		for {
			x, y, ok := lt.Next()
			if !ok {
				break
			}
			// Endpoints belong to the node dots
			if (x == x0 && y == y0) || (x == x1 && y == y1) {
				continue
			}
			buf.Set(x, y, glyph, visual.RgbAccent, visual.RgbBackground,
				render.BlendMaxFg, link.Alpha, render.AttrNone)
		}
	}
}

// lineGlyph picks a box-drawing rune matching the line slope in cell space
func lineGlyph(dx, dy int) rune {
	adx, ady := vmath.Abs(dx), vmath.Abs(dy)
	switch {
	case ady*2 <= adx:
		return '─'
	case adx*2 <= ady:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}
