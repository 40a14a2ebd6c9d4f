package graphs

import (
	"fmt"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// AllPairs holds all-pairs shortest distances.
type AllPairs[W algebra.Number] struct {
	dist  [][]W
	reach [][]bool
}

// FloydWarshall computes all-pairs shortest paths in O(n^3). Negative
// edges are allowed; HasNegativeCycle reports whether any distance is
// meaningless because of one.
func FloydWarshall[W algebra.Number](g *Graph[W]) *AllPairs[W] {
	n := g.Len()

	p := &AllPairs[W]{
		dist:  make([][]W, n),
		reach: make([][]bool, n),
	}
	for i := 0; i < n; i++ {
		p.dist[i] = make([]W, n)
		p.reach[i] = make([]bool, n)
		p.reach[i][i] = true
	}

	for v := 0; v < n; v++ {
		for _, a := range g.Neighbors(v) {
			if !p.reach[v][a.To] || p.dist[v][a.To] > a.Weight {
				p.reach[v][a.To] = true
				p.dist[v][a.To] = a.Weight
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if !p.reach[i][k] {
				continue
			}
			for j := 0; j < n; j++ {
				if !p.reach[k][j] {
					continue
				}
				nd := p.dist[i][k] + p.dist[k][j]
				if !p.reach[i][j] || p.dist[i][j] > nd {
					p.reach[i][j] = true
					p.dist[i][j] = nd
				}
			}
		}
	}

	return p
}

// Len returns the number of vertices.
func (p *AllPairs[W]) Len() int {
	return len(p.dist)
}

// Dist returns the shortest distance from u to v, and false when v is
// unreachable from u.
func (p *AllPairs[W]) Dist(u, v int) (W, bool) {
	p.checkVertex(u)
	p.checkVertex(v)

	return p.dist[u][v], p.reach[u][v]
}

// HasNegativeCycle reports whether some vertex can reach itself with
// negative total weight.
func (p *AllPairs[W]) HasNegativeCycle() bool {
	var zero W
	for v := range p.dist {
		if p.dist[v][v] < zero {
			return true
		}
	}

	return false
}

func (p *AllPairs[W]) checkVertex(v int) {
	if v < 0 || v >= len(p.dist) {
		panic(fmt.Sprintf("graphs: vertex %d out of range [0, %d)", v, len(p.dist)))
	}
}
