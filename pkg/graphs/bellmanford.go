package graphs

import (
	"github.com/pkg/errors"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// BellmanFordPaths is the result of a Bellman-Ford run. Distances of
// vertices reachable from a negative cycle keep decreasing forever;
// those vertices are marked poisoned and their distances are unusable.
type BellmanFordPaths[W algebra.Number] struct {
	*ShortestPaths[W]
	poisoned []bool
}

// Poisoned reports whether a negative cycle can reach v, making its
// distance meaningless.
func (p *BellmanFordPaths[W]) Poisoned(v int) bool {
	p.checkVertex(v)

	return p.poisoned[v]
}

// HasNegativeCycle reports whether any vertex is poisoned.
func (p *BellmanFordPaths[W]) HasNegativeCycle() bool {
	for _, bad := range p.poisoned {
		if bad {
			return true
		}
	}

	return false
}

// BellmanFord computes shortest paths from src, allowing negative edge
// weights. It runs 2n relaxation rounds: n to converge and n more to
// spread negative-cycle poisoning.
func BellmanFord[W algebra.Number](g *Graph[W], src int) (*BellmanFordPaths[W], error) {
	if err := g.checkSource(src); err != nil {
		return nil, errors.Wrap(err, "bellman-ford")
	}

	n := g.Len()
	p := newShortestPaths[W](n, src)
	poisoned := make([]bool, n)

	for round := 0; round < 2*n; round++ {
		for v := 0; v < n; v++ {
			if !p.reach[v] {
				continue
			}
			for _, a := range g.Neighbors(v) {
				nd := p.dist[v] + a.Weight
				if !p.reach[a.To] || p.dist[a.To] > nd {
					p.reach[a.To] = true
					p.dist[a.To] = nd
					p.prev[a.To] = v
					if round >= n {
						poisoned[a.To] = true
					}
				}
				if poisoned[v] {
					poisoned[a.To] = true
				}
			}
		}
	}

	return &BellmanFordPaths[W]{ShortestPaths: p, poisoned: poisoned}, nil
}
