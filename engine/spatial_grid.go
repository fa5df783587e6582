package engine

import "math"

// BucketGrid is a sparse uniform grid used to prune pair checks for large node populations
// Cell size equals the link distance, so any linked pair lies in the same or an adjacent cell
type BucketGrid struct {
	cellSize float64
	buckets  map[cellKey][]int
	keys     []cellKey
}

type cellKey struct {
	X, Y int
}

// Forward half of the 8-neighborhood; with the own cell each pair is visited once
var forwardNeighbors = [4]cellKey{{1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// NewBucketGrid creates a grid with the given cell edge length
func NewBucketGrid(cellSize float64) *BucketGrid {
	return &BucketGrid{
		cellSize: cellSize,
		buckets:  make(map[cellKey][]int),
	}
}

func (g *BucketGrid) keyOf(x, y float64) cellKey {
	return cellKey{X: int(math.Floor(x / g.cellSize)), Y: int(math.Floor(y / g.cellSize))}
}

// rebuild clears buckets, keeping their backing arrays, and inserts every node index
func (g *BucketGrid) rebuild(nodes []Node) {
	for k, b := range g.buckets {
		g.buckets[k] = b[:0]
	}
	g.keys = g.keys[:0]
	for i := range nodes {
		k := g.keyOf(nodes[i].X, nodes[i].Y)
		b := g.buckets[k]
		if len(b) == 0 {
			g.keys = append(g.keys, k)
		}
		g.buckets[k] = append(b, i)
	}
}

// Links appends the same link set BruteForceLinks would produce, pairs normalized to A < B
func (g *BucketGrid) Links(dst []Link, nodes []Node) []Link {
	g.rebuild(nodes)

	for _, k := range g.keys {
		own := g.buckets[k]
		for ai := 0; ai < len(own); ai++ {
			for bi := ai + 1; bi < len(own); bi++ {
				dst = appendOrdered(dst, nodes, own[ai], own[bi])
			}
		}
		for _, off := range forwardNeighbors {
			other := g.buckets[cellKey{X: k.X + off.X, Y: k.Y + off.Y}]
			for _, a := range own {
				for _, b := range other {
					dst = appendOrdered(dst, nodes, a, b)
				}
			}
		}
	}
	return dst
}

func appendOrdered(dst []Link, nodes []Node, a, b int) []Link {
	if a > b {
		a, b = b, a
	}
	return appendLink(dst, nodes, a, b)
}
