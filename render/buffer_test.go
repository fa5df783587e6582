package render

import (
	"bytes"
	"strings"
	"testing"
)

var testBg = RGB{10, 10, 15}

func TestBlend(t *testing.T) {
	tests := []struct {
		name  string
		dst   RGB
		src   RGB
		alpha float64
		want  RGB
	}{
		{"zero alpha keeps dst", RGB{10, 20, 30}, RGB{200, 200, 200}, 0, RGB{10, 20, 30}},
		{"full alpha takes src", RGB{10, 20, 30}, RGB{200, 200, 200}, 1, RGB{200, 200, 200}},
		{"half alpha", RGB{0, 0, 0}, RGB{200, 100, 50}, 0.5, RGB{100, 50, 25}},
		{"negative alpha keeps dst", RGB{1, 2, 3}, RGB{9, 9, 9}, -1, RGB{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.dst, tt.src, tt.alpha); got != tt.want {
				t.Errorf("Blend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderBufferSetAndClip(t *testing.T) {
	buf := NewRenderBuffer(4, 2, testBg)

	buf.Set(1, 1, 'x', RGB{255, 0, 0}, RGB{0, 0, 255}, BlendReplace, 1, AttrBold)
	c := buf.Get(1, 1)
	if c.Rune != 'x' || c.Fg != (RGB{255, 0, 0}) || c.Bg != (RGB{0, 0, 255}) || c.Attrs != AttrBold {
		t.Errorf("Get(1,1) = %+v", c)
	}

	// Out of bounds writes are ignored
	buf.Set(-1, 0, 'y', RGB{}, RGB{}, BlendReplace, 1, AttrNone)
	buf.Set(4, 0, 'y', RGB{}, RGB{}, BlendReplace, 1, AttrNone)
	if got := buf.Get(9, 9); got != (Cell{}) {
		t.Errorf("out of bounds Get = %+v, want zero", got)
	}

	n := buf.SetText(2, 0, "hello", RGB{255, 255, 255}, testBg, AttrNone)
	if n != 5 {
		t.Errorf("SetText returned %d, want 5", n)
	}
	if got := buf.Text()[0]; got != "  he" {
		t.Errorf("row 0 = %q, want %q", got, "  he")
	}
}

func TestRenderBufferBlendBgKeepsGlyph(t *testing.T) {
	buf := NewRenderBuffer(1, 1, testBg)
	buf.Set(0, 0, 'a', RGB{200, 200, 200}, testBg, BlendReplace, 1, AttrNone)
	buf.Set(0, 0, 'z', RGB{}, RGB{110, 110, 115}, BlendBg, 0.5, AttrNone)

	c := buf.Get(0, 0)
	if c.Rune != 'a' {
		t.Errorf("rune = %q, want 'a'", c.Rune)
	}
	if c.Bg != (RGB{60, 60, 65}) {
		t.Errorf("bg = %v, want {60 60 65}", c.Bg)
	}
}

func TestRenderBufferFadeDropsGlyphs(t *testing.T) {
	buf := NewRenderBuffer(2, 1, testBg)
	buf.Set(0, 0, '•', RGB{0, 217, 255}, testBg, BlendReplace, 1, AttrNone)

	frames := 0
	for buf.Get(0, 0).Rune != 0 {
		buf.Fade(testBg, 0.1)
		frames++
		if frames > 200 {
			t.Fatal("glyph never faded out")
		}
	}
	if frames < 10 {
		t.Errorf("glyph faded after %d frames, expected a visible trail", frames)
	}
	if buf.Get(1, 0).Rune != 0 {
		t.Error("blank cell gained a glyph")
	}
}

func TestRenderBufferResizeClears(t *testing.T) {
	buf := NewRenderBuffer(3, 3, testBg)
	buf.SetText(0, 0, "abc", RGB{255, 255, 255}, testBg, AttrNone)
	buf.Resize(2, 2)

	w, h := buf.Size()
	if w != 2 || h != 2 {
		t.Fatalf("Size() = %d,%d want 2,2", w, h)
	}
	for _, line := range buf.Text() {
		if strings.TrimSpace(line) != "" {
			t.Errorf("line %q not cleared", line)
		}
	}
}

func TestRenderBufferDump(t *testing.T) {
	buf := NewRenderBuffer(3, 2, testBg)
	buf.SetText(0, 1, "ok", RGB{255, 255, 255}, testBg, AttrNone)

	var plain bytes.Buffer
	if err := buf.Dump(&plain, false); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if plain.String() != "   \nok \n" {
		t.Errorf("plain dump = %q", plain.String())
	}

	var colored bytes.Buffer
	if err := buf.Dump(&colored, true); err != nil {
		t.Fatalf("Dump ansi: %v", err)
	}
	if !strings.Contains(colored.String(), "\x1b[38;2;255;255;255m") {
		t.Error("ansi dump missing foreground escape")
	}
}

func TestSurfaceMapping(t *testing.T) {
	s := Surface{CellWidth: 8, CellHeight: 16}

	x, y := s.ToCell(17, 33)
	if x != 2 || y != 2 {
		t.Errorf("ToCell(17,33) = %d,%d want 2,2", x, y)
	}
	x, y = s.ToCell(-0.5, -0.5)
	if x != -1 || y != -1 {
		t.Errorf("ToCell(-0.5,-0.5) = %d,%d want -1,-1", x, y)
	}
	w, h := s.Extent(80, 24)
	if w != 640 || h != 384 {
		t.Errorf("Extent(80,24) = %f,%f", w, h)
	}
	if s.Rows(50) != 3 {
		t.Errorf("Rows(50) = %d, want 3", s.Rows(50))
	}
}
