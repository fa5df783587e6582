package engine

import (
	"github.com/lixenwraith/techfolio/parameter"
	"github.com/lixenwraith/techfolio/vmath"
)

// Link is a line between two nodes, A < B index order
type Link struct {
	A, B  int
	Alpha float64
}

// LinkAlpha maps node distance to line opacity: LinkMaxAlpha at zero, falling linearly to 0 at LinkDistance
func LinkAlpha(distance float64) float64 {
	if distance >= parameter.LinkDistance {
		return 0
	}
	return vmath.Clamp(parameter.LinkMaxAlpha*(1-distance/parameter.LinkDistance), 0, parameter.LinkMaxAlpha)
}

// BruteForceLinks appends a link for every node pair closer than LinkDistance
// n(n-1)/2 distance checks
func BruteForceLinks(dst []Link, nodes []Node) []Link {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			dst = appendLink(dst, nodes, i, j)
		}
	}
	return dst
}

func appendLink(dst []Link, nodes []Node, i, j int) []Link {
	d := vmath.Distance(nodes[i].X, nodes[i].Y, nodes[j].X, nodes[j].Y)
	if d < parameter.LinkDistance {
		dst = append(dst, Link{A: i, B: j, Alpha: LinkAlpha(d)})
	}
	return dst
}
