package renderer

import (
	"math"

	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
)

// GridRenderer draws dashed scrolling grid lines; lines at zero opacity produce nothing
type GridRenderer struct {
	world *engine.World
}

func NewGridRenderer(world *engine.World) *GridRenderer {
	return &GridRenderer{world: world}
}

func (r *GridRenderer) IsVisible() bool {
	return r.world.Config.Effects.Grid
}

func (r *GridRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Surface
	for i := range r.world.Grid {
		g := &r.world.Grid[i]
		if !g.Visible() {
			continue
		}
		if g.Vertical {
			x, _ := s.ToCell(g.Pos, 0)
			for y := 0; y < ctx.Height; y++ {
				if dashOn(float64(y)*s.CellHeight + g.Offset) {
					buf.Set(x, y, '┆', visual.RgbGrid, visual.RgbBackground, render.BlendFg, g.Opacity, render.AttrNone)
				}
			}
			continue
		}
		_, y := s.ToCell(0, g.Pos)
		for x := 0; x < ctx.Width; x++ {
			if dashOn(float64(x)*s.CellWidth + g.Offset) {
				buf.Set(x, y, '┄', visual.RgbGrid, visual.RgbBackground, render.BlendFg, g.Opacity, render.AttrNone)
			}
		}
	}
}

// dashOn splits each GridWrap period into a drawn half and a gap half
func dashOn(pos float64) bool {
	return math.Mod(pos, parameter.GridWrap) < parameter.GridWrap/2
}
