package renderer

import (
	"github.com/lixenwraith/techfolio/engine"
	"github.com/lixenwraith/techfolio/parameter"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
)

// NodeRenderer draws each node as a dot in its cell
type NodeRenderer struct {
	world *engine.World
}

func NewNodeRenderer(world *engine.World) *NodeRenderer {
	return &NodeRenderer{world: world}
}

func (r *NodeRenderer) IsVisible() bool {
	return r.world.Config.Effects.Nodes
}

func (r *NodeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range r.world.Nodes {
		n := &r.world.Nodes[i]
		x, y := ctx.Surface.ToCell(n.X, n.Y)
		buf.Set(x, y, visual.NodeChar, visual.RgbAccent, visual.RgbBackground,
			render.BlendMaxFg, parameter.NodeAlpha, render.AttrNone)
	}
}
