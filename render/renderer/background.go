package renderer

import (
	"github.com/lixenwraith/techfolio/parameter"
	"github.com/lixenwraith/techfolio/parameter/visual"
	"github.com/lixenwraith/techfolio/render"
)

// FadeRenderer blends the persistent layer toward the page background every frame
type FadeRenderer struct {
	alpha float64
}

func NewFadeRenderer() *FadeRenderer {
	return &FadeRenderer{alpha: parameter.FadeAlpha}
}

func (r *FadeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.Fade(visual.RgbBackground, r.alpha)
}
