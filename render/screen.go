package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// CellStyle builds the tcell style for a cell
func CellStyle(c Cell) tcell.Style {
	style := tcell.StyleDefault.Foreground(RGBToTcell(c.Fg)).Background(RGBToTcell(c.Bg))
	if c.Attrs&AttrBold != 0 {
		style = style.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		style = style.Dim(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if c.Attrs&AttrReverse != 0 {
		style = style.Reverse(true)
	}
	return style
}

// ScreenFlusher writes frames to a tcell screen
type ScreenFlusher struct {
	Screen tcell.Screen
}

// Flush copies every cell to the screen and shows it
// The cell after a double-width rune is left to the rune
func (f ScreenFlusher) Flush(buf *RenderBuffer) {
	w, h := buf.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.cells[y*w+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			f.Screen.SetContent(x, y, r, nil, CellStyle(c))
			if runewidth.RuneWidth(r) == 2 {
				x++
			}
		}
	}
	f.Screen.Show()
}
