package engine

import (
	"math/rand"

	"github.com/lixenwraith/techfolio/parameter"
)

// Snippet is a drifting code fragment with a frame countdown
type Snippet struct {
	Text    string
	X, Y    float64
	VX, VY  float64
	Opacity float64
	Life    float64
}

// NewSnippet spawns a snippet with random text, drift and lifetime
func NewSnippet(rng *rand.Rand, b Bounds) Snippet {
	x, y := b.randomPoint(rng)
	return Snippet{
		Text:    parameter.SnippetTexts[rng.Intn(len(parameter.SnippetTexts))],
		X:       x,
		Y:       y,
		VX:      randCentered(rng, parameter.SnippetSpeedRange),
		VY:      randCentered(rng, parameter.SnippetSpeedRange),
		Opacity: randRange(rng, parameter.SnippetAlphaMin, parameter.SnippetAlphaRange),
		Life:    randRange(rng, parameter.SnippetLifeMin, parameter.SnippetLifeRange),
	}
}

// Update drifts with edge reflection and counts down one frame of life
func (s *Snippet) Update(b Bounds) {
	s.X += s.VX
	s.Y += s.VY
	s.Life--

	if s.X < 0 || s.X > b.Width {
		s.VX = -s.VX
	}
	if s.Y < 0 || s.Y > b.Height {
		s.VY = -s.VY
	}
}

// Expired reports whether the snippet should be replaced
func (s *Snippet) Expired() bool {
	return s.Life <= 0
}
