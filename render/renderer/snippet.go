package renderer

import (
	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
)

// SnippetRenderer draws drifting code fragments
type SnippetRenderer struct {
	world *engine.World
}

func NewSnippetRenderer(world *engine.World) *SnippetRenderer {
	return &SnippetRenderer{world: world}
}

func (r *SnippetRenderer) IsVisible() bool {
	return r.world.Config.Effects.Snippets
}

func (r *SnippetRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range r.world.Snippets {
		s := &r.world.Snippets[i]
		x, y := ctx.Surface.ToCell(s.X, s.Y)
		col := 0
		for _, ch := range s.Text {
			buf.Set(x+col, y, ch, visual.RgbSnippet, visual.RgbBackground,
				render.BlendFg, s.Opacity, render.AttrNone)
			col++
		}
	}
}
