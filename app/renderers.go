package app

import (
	"github.com/lixenwraith/techfolio/render"
	"github.com/lixenwraith/techfolio/render/renderer"
)

type rendererDef struct {
	factory  func(*App) render.SystemRenderer
	priority render.RenderPriority
}

// rendererList is registered in order; entries below PriorityPage draw on the fading layer
var rendererList = []rendererDef{
	// Background
	{func(a *App) render.SystemRenderer { return renderer.NewFadeRenderer() }, render.PriorityFade},
	{func(a *App) render.SystemRenderer { return renderer.NewGridRenderer(a.world) }, render.PriorityGrid},
	{func(a *App) render.SystemRenderer { return renderer.NewPulseRenderer(a.world) }, render.PriorityPulse},
	{func(a *App) render.SystemRenderer { return renderer.NewLinkRenderer(a.world) }, render.PriorityLinks},
	{func(a *App) render.SystemRenderer { return renderer.NewNodeRenderer(a.world) }, render.PriorityNodes},
	{func(a *App) render.SystemRenderer { return renderer.NewRainRenderer(a.world) }, render.PriorityRain},
	{func(a *App) render.SystemRenderer { return renderer.NewSnippetRenderer(a.world) }, render.PrioritySnippets},
	// Page
	{func(a *App) render.SystemRenderer { return renderer.NewSectionRenderer(a.page) }, render.PriorityPage},
	{func(a *App) render.SystemRenderer { return renderer.NewHeroRenderer(a.page) }, render.PriorityPage},
	{func(a *App) render.SystemRenderer { return renderer.NewCardRenderer(a.page) }, render.PriorityCards},
	{func(a *App) render.SystemRenderer { return renderer.NewFormRenderer(a.page) }, render.PriorityForm},
	{func(a *App) render.SystemRenderer { return renderer.NewNavRenderer(a.page) }, render.PriorityNav},
	{func(a *App) render.SystemRenderer { return renderer.NewMenuRenderer(a.page) }, render.PriorityOverlay},
}
