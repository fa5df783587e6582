package content

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
)

// Avatar is a profile image sampled into half-block cells
// Each cell carries two vertical pixels: Top is drawn as the glyph, Bottom as the cell background
type Avatar struct {
	Cols   int
	Rows   int
	Top    []color.RGBA
	Bottom []color.RGBA
}

// At returns the two pixel colors of cell (x, y)
func (a *Avatar) At(x, y int) (top, bottom color.RGBA) {
	i := y*a.Cols + x
	return a.Top[i], a.Bottom[i]
}

// LoadAvatar decodes a PNG or JPEG from fsys and samples it into cols x rows cells
func LoadAvatar(fsys fs.FS, path string, cols, rows int) (*Avatar, error) {
	if path == "" {
		return nil, fmt.Errorf("avatar: no image path")
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("avatar: invalid size %dx%d", cols, rows)
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("avatar: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("avatar: decode %s: %w", path, err)
	}
	return SampleAvatar(img, cols, rows), nil
}

// SampleAvatar samples img at the center of each half cell region
func SampleAvatar(img image.Image, cols, rows int) *Avatar {
	a := &Avatar{
		Cols:   cols,
		Rows:   rows,
		Top:    make([]color.RGBA, cols*rows),
		Bottom: make([]color.RGBA, cols*rows),
	}

	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return a
	}

	pixH := rows * 2
	sample := func(x, py int) color.RGBA {
		sx := bounds.Min.X + (x*srcW+srcW/2)/cols
		sy := bounds.Min.Y + (py*srcH+srcH/2)/pixH
		if sx >= bounds.Max.X {
			sx = bounds.Max.X - 1
		}
		if sy >= bounds.Max.Y {
			sy = bounds.Max.Y - 1
		}
		return toRGBA(img.At(sx, sy))
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := y*cols + x
			a.Top[i] = sample(x, y*2)
			a.Bottom[i] = sample(x, y*2+1)
		}
	}
	return a
}

// toRGBA un-premultiplies alpha; fully transparent pixels become black
func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{
		R: uint8((r * 0xff) / a),
		G: uint8((g * 0xff) / a),
		B: uint8((b * 0xff) / a),
		A: 0xff,
	}
}
