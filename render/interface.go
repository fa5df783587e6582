package render

// SystemRenderer is implemented by anything with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle lets a renderer sit out frames while its effect or page element is off
type VisibilityToggle interface {
	IsVisible() bool
}
