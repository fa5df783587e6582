package renderer

import (
	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
)

// RainRenderer draws falling binary digits
type RainRenderer struct {
	world *engine.World
}

func NewRainRenderer(world *engine.World) *RainRenderer {
	return &RainRenderer{world: world}
}

func (r *RainRenderer) IsVisible() bool {
	return r.world.Config.Effects.Rain
}

func (r *RainRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range r.world.Rain {
		d := &r.world.Rain[i]
		x, y := ctx.Surface.ToCell(d.X, d.Y)
		buf.Set(x, y, d.Glyph, visual.RgbAccent, visual.RgbBackground,
			render.BlendFg, d.Opacity, render.AttrNone)
	}
}
