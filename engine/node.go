package engine

import (
	"math/rand"

	"github.com/lixenwraith/techfolio/parameter"
)

// Node is a drifting network vertex
type Node struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// NewNode spawns a node at a random position with a small random velocity
func NewNode(rng *rand.Rand, b Bounds) Node {
	x, y := b.randomPoint(rng)
	return Node{
		X:      x,
		Y:      y,
		VX:     randCentered(rng, parameter.NodeSpeedRange),
		VY:     randCentered(rng, parameter.NodeSpeedRange),
		Radius: parameter.NodeRadius,
	}
}

// Update advances the node one frame and reflects velocity on boundary contact
// Position is not clamped, a node may sit past an edge for one frame before heading back
func (n *Node) Update(b Bounds) {
	n.X += n.VX
	n.Y += n.VY

	if n.X < 0 || n.X > b.Width {
		n.VX = -n.VX
	}
	if n.Y < 0 || n.Y > b.Height {
		n.VY = -n.VY
	}
}
