package renderer

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/techfolio/render"
)

// drawText writes s over whatever is beneath it, keeping the underlying background
// alpha fades the glyphs in from that background. Returns the columns used
func drawText(buf *render.RenderBuffer, x, y int, s string, fg render.RGB, alpha float64, attrs render.Attr) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c := buf.Get(col, y)
		buf.Set(col, y, r, render.Blend(c.Bg, fg, alpha), c.Bg, render.BlendReplace, 1, attrs)
		if w == 2 {
			buf.Set(col+1, y, ' ', c.Bg, c.Bg, render.BlendReplace, 1, render.AttrNone)
		}
		col += w
	}
	return col - x
}

// drawTextCentered centers s on row y across width columns starting at x
func drawTextCentered(buf *render.RenderBuffer, x, y, width int, s string, fg render.RGB, alpha float64, attrs render.Attr) {
	offset := (width - runewidth.StringWidth(s)) / 2
	if offset < 0 {
		offset = 0
	}
	drawText(buf, x+offset, y, s, fg, alpha, attrs)
}

// fillBg tints a rectangle toward bg by alpha, keeping glyphs
func fillBg(buf *render.RenderBuffer, x, y, w, h int, bg render.RGB, alpha float64) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			buf.Set(col, row, 0, render.RGB{}, bg, render.BlendBg, alpha, render.AttrNone)
		}
	}
}

// clearRect blanks glyphs in a rectangle and paints it bg
func clearRect(buf *render.RenderBuffer, x, y, w, h int, bg render.RGB, alpha float64) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c := buf.Get(col, row)
			nb := render.Blend(c.Bg, bg, alpha)
			buf.Set(col, row, ' ', nb, nb, render.BlendReplace, 1, render.AttrNone)
		}
	}
}

// drawBox strokes a rounded border
func drawBox(buf *render.RenderBuffer, x, y, w, h int, fg render.RGB, alpha float64) {
	if w < 2 || h < 2 {
		return
	}
	stroke := func(col, row int, r rune) {
		c := buf.Get(col, row)
		buf.Set(col, row, r, render.Blend(c.Bg, fg, alpha), c.Bg, render.BlendReplace, 1, render.AttrNone)
	}
	for col := x + 1; col < x+w-1; col++ {
		stroke(col, y, '─')
		stroke(col, y+h-1, '─')
	}
	for row := y + 1; row < y+h-1; row++ {
		stroke(x, row, '│')
		stroke(x+w-1, row, '│')
	}
	stroke(x, y, '╭')
	stroke(x+w-1, y, '╮')
	stroke(x, y+h-1, '╰')
	stroke(x+w-1, y+h-1, '╯')
}
