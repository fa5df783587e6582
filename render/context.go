package render

import "time"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Time  time.Time
	Frame uint64

	// Screen dimensions in cells
	Width  int
	Height int

	Surface Surface
}
