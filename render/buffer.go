package render

import (
	"bufio"
	"fmt"
	"io"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrUnderline Attr = 1 << 2
	AttrReverse   Attr = 1 << 3
)

// Cell represents a single terminal cell; Rune 0 means blank
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// BlendMode selects how Set composites onto the existing cell
type BlendMode uint8

const (
	// BlendReplace overwrites fg and bg
	BlendReplace BlendMode = iota
	// BlendFg alpha-blends the foreground only, background untouched
	BlendFg
	// BlendBg alpha-blends the background only, rune and foreground untouched
	BlendBg
	// BlendMaxFg keeps the brighter foreground per channel
	BlendMaxFg
)

// fadeCutoff is the channel distance under which a faded glyph is dropped
const fadeCutoff = 6

// RenderBuffer is a row-major cell grid
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	bg     RGB
}

// NewRenderBuffer creates a buffer filled with blank cells on bg
func NewRenderBuffer(width, height int, bg RGB) *RenderBuffer {
	b := &RenderBuffer{bg: bg}
	b.Resize(width, height)
	return b
}

// Resize adjusts dimensions, reallocating only if capacity is insufficient, and clears
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank on the buffer background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: b.bg, Bg: b.bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns the buffer dimensions in cells
func (b *RenderBuffer) Size() (int, int) {
	return b.width, b.height
}

// Background returns the clear color
func (b *RenderBuffer) Background() RGB {
	return b.bg
}

// InBounds returns true if (x, y) is a valid cell
func (b *RenderBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set composites a cell. A zero rune keeps the existing glyph
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64, attrs Attr) {
	if !b.InBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]

	switch mode {
	case BlendReplace:
		dst.Fg = fg
		dst.Bg = bg
	case BlendFg:
		dst.Fg = Blend(dst.Fg, fg, alpha)
	case BlendBg:
		dst.Bg = Blend(dst.Bg, bg, alpha)
		return
	case BlendMaxFg:
		dst.Fg = Max(dst.Fg, Blend(dst.Bg, fg, alpha))
	}

	if r != 0 {
		dst.Rune = r
		dst.Attrs = attrs
	}
}

// SetText writes s left to right starting at (x, y), clipped to the buffer, and returns the columns used
func (b *RenderBuffer) SetText(x, y int, s string, fg, bg RGB, attrs Attr) int {
	n := 0
	for _, r := range s {
		b.Set(x+n, y, r, fg, bg, BlendReplace, 1, attrs)
		n++
	}
	return n
}

// FillRect paints a rectangle of blank cells
func (b *RenderBuffer) FillRect(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if b.InBounds(col, row) {
				b.cells[row*b.width+col] = Cell{Fg: bg, Bg: bg}
			}
		}
	}
}

// Fade blends every cell toward target, dropping glyphs that become indistinguishable from it
// Repeated each frame this leaves decaying trails behind moving glyphs
func (b *RenderBuffer) Fade(target RGB, alpha float64) {
	for i := range b.cells {
		c := &b.cells[i]
		c.Fg = Blend(c.Fg, target, alpha)
		c.Bg = Blend(c.Bg, target, alpha)
		if c.Rune != 0 && ChannelDistance(c.Fg, c.Bg) < fadeCutoff {
			c.Rune = 0
			c.Attrs = AttrNone
		}
	}
}

// CopyFrom copies src cells into b; sizes must match, otherwise b is resized first
func (b *RenderBuffer) CopyFrom(src *RenderBuffer) {
	if b.width != src.width || b.height != src.height {
		b.Resize(src.width, src.height)
	}
	copy(b.cells, src.cells)
}

// Text returns the glyph grid as lines, blanks as spaces
func (b *RenderBuffer) Text() []string {
	lines := make([]string, b.height)
	row := make([]rune, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.cells[y*b.width+x].Rune
			if r == 0 {
				r = ' '
			}
			row[x] = r
		}
		lines[y] = string(row)
	}
	return lines
}

// Dump writes the buffer as text; with ansi set each cell carries 24-bit color escapes
func (b *RenderBuffer) Dump(w io.Writer, ansi bool) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			if ansi {
				fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm", c.Fg.R, c.Fg.G, c.Fg.B, c.Bg.R, c.Bg.G, c.Bg.B)
			}
			bw.WriteRune(r)
		}
		if ansi {
			bw.WriteString("\x1b[0m")
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
