package visual

import "github.com/lixenwraith/techfolio/render"

// Background effect colors
var (
	RgbBackground = render.RGB{R: 10, G: 10, B: 15}  // Page background, also the fade target
	RgbAccent     = render.RGB{R: 0, G: 217, B: 255} // Nodes, links, rings, rain
	RgbSnippet    = render.RGB{R: 78, G: 205, B: 196}
	RgbGrid       = render.RGB{R: 0, G: 217, B: 255}
)

// Page colors
var (
	RgbText        = render.RGB{R: 220, G: 220, B: 230}
	RgbTextDim     = render.RGB{R: 140, G: 140, B: 160}
	RgbHeading     = render.RGB{R: 255, G: 255, B: 255}
	RgbNavBar      = render.RGB{R: 18, G: 18, B: 28}
	RgbNavScrolled = render.RGB{R: 26, G: 26, B: 46}
	RgbNavActive   = render.RGB{R: 0, G: 217, B: 255}
	RgbCard        = render.RGB{R: 22, G: 22, B: 36}
	RgbField       = render.RGB{R: 30, G: 30, B: 48}
	RgbFieldFocus  = render.RGB{R: 40, G: 40, B: 70}
	RgbButton      = render.RGB{R: 0, G: 150, B: 180}
	RgbButtonBusy  = render.RGB{R: 90, G: 90, B: 120}
	RgbButtonDone  = render.RGB{R: 40, G: 160, B: 90}
	RgbAvatar      = render.RGB{R: 26, G: 26, B: 46} // Initials badge fill
	RgbError       = render.RGB{R: 255, G: 90, B: 90}
)

// Glyphs
const (
	NodeChar      = '•'
	PulseChar     = '·'
	HamburgerChar = '≡'
	CursorChar    = '▏'
)
