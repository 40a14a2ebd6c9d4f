package graphs

import (
	"fmt"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// ShortestPaths holds single-source distances and predecessor links.
type ShortestPaths[W algebra.Number] struct {
	source int
	dist   []W
	reach  []bool
	prev   []int
}

func newShortestPaths[W algebra.Number](n, src int) *ShortestPaths[W] {
	p := &ShortestPaths[W]{
		source: src,
		dist:   make([]W, n),
		reach:  make([]bool, n),
		prev:   make([]int, n),
	}
	for i := range p.prev {
		p.prev[i] = -1
	}
	p.reach[src] = true

	return p
}

// Source returns the source vertex.
func (p *ShortestPaths[W]) Source() int {
	return p.source
}

// Len returns the number of vertices.
func (p *ShortestPaths[W]) Len() int {
	return len(p.dist)
}

// Reachable reports whether v can be reached from the source.
func (p *ShortestPaths[W]) Reachable(v int) bool {
	p.checkVertex(v)

	return p.reach[v]
}

// Dist returns the shortest distance to v, and false when v is
// unreachable.
func (p *ShortestPaths[W]) Dist(v int) (W, bool) {
	p.checkVertex(v)

	return p.dist[v], p.reach[v]
}

// PathTo returns the vertices of a shortest path from the source to v,
// both ends included, or nil when v is unreachable.
func (p *ShortestPaths[W]) PathTo(v int) []int {
	p.checkVertex(v)

	if !p.reach[v] {
		return nil
	}

	var path []int
	for u := v; u != -1; u = p.prev[u] {
		path = append(path, u)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (p *ShortestPaths[W]) checkVertex(v int) {
	if v < 0 || v >= len(p.dist) {
		panic(fmt.Sprintf("graphs: vertex %d out of range [0, %d)", v, len(p.dist)))
	}
}
