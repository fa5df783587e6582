package engine

import (
	"math/rand"

	"github.com/lixenwraith/techfolio/parameter"
)

// WorldConfig carries the tunables a World is built from
type WorldConfig struct {
	Effects    Effects
	Population Population
	// SpatialThreshold is the node count above which link search uses a bucket grid, 0 disables the grid
	SpatialThreshold int
}

// DefaultWorldConfig returns stock effects, populations and grid threshold
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Effects:          DefaultEffects(),
		Population:       DefaultPopulation(),
		SpatialThreshold: parameter.SpatialThreshold,
	}
}

// World is the simulation context for the animated background
// Owned by the frame loop; not safe for concurrent use
type World struct {
	Bounds Bounds
	Config WorldConfig

	Nodes    []Node
	Pulses   []Pulse
	Rain     []RainDrop
	Snippets []Snippet
	Grid     []GridLine

	Frame uint64

	rng   *rand.Rand
	grid  *BucketGrid
	links []Link
}

// NewWorld creates an empty world; call Reset with the surface size before stepping
func NewWorld(cfg WorldConfig, rng *rand.Rand) *World {
	return &World{
		Config: cfg,
		rng:    rng,
		grid:   NewBucketGrid(parameter.LinkDistance),
	}
}

// Reset replaces every collection for a surface of the given size
// Called at startup and on every resize; all entities are discarded
func (w *World) Reset(width, height float64) {
	w.Bounds = Bounds{Width: width, Height: height}
	pop := w.Config.Population

	w.Nodes = make([]Node, pop.Nodes)
	for i := range w.Nodes {
		w.Nodes[i] = NewNode(w.rng, w.Bounds)
	}

	w.Rain = make([]RainDrop, pop.Rain)
	for i := range w.Rain {
		w.Rain[i] = NewRainDrop(w.rng, w.Bounds)
	}

	w.Snippets = make([]Snippet, pop.Snippets)
	for i := range w.Snippets {
		w.Snippets[i] = NewSnippet(w.rng, w.Bounds)
	}

	w.Grid = make([]GridLine, 0, pop.GridPairs*2)
	for i := 0; i < pop.GridPairs; i++ {
		w.Grid = append(w.Grid, NewGridLine(w.rng, w.Bounds, true))
		w.Grid = append(w.Grid, NewGridLine(w.rng, w.Bounds, false))
	}

	w.Pulses = make([]Pulse, pop.Pulses)
	for i := range w.Pulses {
		w.Pulses[i] = NewPulse(w.rng, w.Bounds)
	}
}

// Step advances every enabled collection by one frame
func (w *World) Step() {
	fx := w.Config.Effects
	w.Frame++

	if fx.Grid {
		for i := range w.Grid {
			w.Grid[i].Update()
		}
	}

	if fx.Pulses {
		for i := range w.Pulses {
			w.Pulses[i].Update(w.rng, w.Bounds)
		}
	}

	if fx.Nodes {
		for i := range w.Nodes {
			w.Nodes[i].Update(w.Bounds)
		}
	}

	if fx.Rain {
		for i := range w.Rain {
			w.Rain[i].Update(w.rng, w.Bounds)
		}
	}

	if fx.Snippets {
		for i := range w.Snippets {
			w.Snippets[i].Update(w.Bounds)
			if w.Snippets[i].Expired() {
				w.Snippets[i] = NewSnippet(w.rng, w.Bounds)
			}
		}
	}
}

// Links returns the current node connections
// The returned slice is reused by the next call
func (w *World) Links() []Link {
	if !w.Config.Effects.Nodes {
		return w.links[:0]
	}
	if w.Config.SpatialThreshold > 0 && len(w.Nodes) > w.Config.SpatialThreshold {
		w.links = w.grid.Links(w.links[:0], w.Nodes)
	} else {
		w.links = BruteForceLinks(w.links[:0], w.Nodes)
	}
	return w.links
}
