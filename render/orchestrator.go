package render

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Flusher receives a finished frame
type Flusher interface {
	Flush(buf *RenderBuffer)
}

// RenderOrchestrator coordinates the two-layer render pipeline
// The background layer persists across frames; the frame layer is rebuilt from it every frame
type RenderOrchestrator struct {
	out        Flusher
	background *RenderBuffer
	frame      *RenderBuffer
	renderers  []rendererEntry
	regCount   int
}

// NewRenderOrchestrator creates an orchestrator writing finished frames to out
func NewRenderOrchestrator(out Flusher, width, height int, bg RGB) *RenderOrchestrator {
	return &RenderOrchestrator{
		out:        out,
		background: NewRenderBuffer(width, height, bg),
		frame:      NewRenderBuffer(width, height, bg),
		renderers:  make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates both layers, discarding background trails
func (o *RenderOrchestrator) Resize(width, height int) {
	o.background.Resize(width, height)
	o.frame.Resize(width, height)
}

// Frame returns the last composed frame
func (o *RenderOrchestrator) Frame() *RenderBuffer {
	return o.frame
}

// RenderFrame runs background renderers on the persistent layer, copies it, runs page renderers on top, flushes
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	copied := false
	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		if entry.priority < PriorityPage {
			entry.renderer.Render(ctx, o.background)
			continue
		}
		if !copied {
			o.frame.CopyFrom(o.background)
			copied = true
		}
		entry.renderer.Render(ctx, o.frame)
	}
	if !copied {
		o.frame.CopyFrom(o.background)
	}

	if o.out != nil {
		o.out.Flush(o.frame)
	}
}
