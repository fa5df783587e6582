package render

// RenderPriority determines render order. Lower values render first
// Priorities below PriorityPage draw on the persistent background layer, which fades between frames
type RenderPriority int

const (
	PriorityFade RenderPriority = iota
	PriorityGrid
	PriorityPulse
	PriorityLinks
	PriorityNodes
	PriorityRain
	PrioritySnippets

	PriorityPage
	PriorityCards
	PriorityForm
	PriorityNav
	PriorityOverlay
)
