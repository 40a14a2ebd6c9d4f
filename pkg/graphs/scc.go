package graphs

import (
	"fmt"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// Components is a partition of a directed graph into strongly connected
// components. Component ids are a topological order of the
// condensation: every edge goes from a component to one with an equal
// or larger id.
type Components struct {
	members [][]int
	ids     []int
}

// SCC decomposes a directed graph into strongly connected components
// with Kosaraju's two-pass search.
func SCC[W algebra.Number](g *Graph[W]) *Components {
	n := g.Len()

	rev := make([][]int, n)
	for _, e := range g.Edges() {
		rev[e.To] = append(rev[e.To], e.From)
	}

	order := make([]int, 0, n)
	visited := make([]bool, n)

	var dfs func(v int)
	dfs = func(v int) {
		visited[v] = true
		for _, a := range g.Neighbors(v) {
			if !visited[a.To] {
				dfs(a.To)
			}
		}
		order = append(order, v)
	}
	for v := 0; v < n; v++ {
		if !visited[v] {
			dfs(v)
		}
	}

	c := &Components{ids: make([]int, n)}
	visited = make([]bool, n)

	var collect func(v int, id int)
	collect = func(v, id int) {
		visited[v] = true
		c.ids[v] = id
		c.members[id] = append(c.members[id], v)
		for _, u := range rev[v] {
			if !visited[u] {
				collect(u, id)
			}
		}
	}
	for i := n - 1; i >= 0; i-- {
		v := order[i]
		if !visited[v] {
			c.members = append(c.members, nil)
			collect(v, len(c.members)-1)
		}
	}

	return c
}

// Count returns the number of components.
func (c *Components) Count() int {
	return len(c.members)
}

// ComponentOf returns the id of the component containing v.
func (c *Components) ComponentOf(v int) int {
	if v < 0 || v >= len(c.ids) {
		panic(fmt.Sprintf("graphs: vertex %d out of range [0, %d)", v, len(c.ids)))
	}

	return c.ids[v]
}

// Component returns the vertices of the component with the given id.
// The slice is shared, not copied.
func (c *Components) Component(id int) []int {
	if id < 0 || id >= len(c.members) {
		panic(fmt.Sprintf("graphs: component %d out of range [0, %d)", id, len(c.members)))
	}

	return c.members[id]
}

// Components returns every component in topological order. The slices
// are shared, not copied.
func (c *Components) Components() [][]int {
	return c.members
}
