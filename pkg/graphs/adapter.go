package graphs

import (
	"cmp"
	"sort"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
)

// FromGraph flattens a github.com/dominikbraun/graph graph into a
// Graph[int] so the algorithms in this package can run on it. Vertices
// are numbered by sorted key order; the returned keys slice maps a
// vertex index back to its key. Edge weights come from the library's
// integer edge weight.
func FromGraph[K cmp.Ordered, T any](src graph.Graph[K, T]) (*Graph[int], []K, error) {
	adjacencyMap, err := src.AdjacencyMap()
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to get adjacency map")
	}

	keys := make([]K, 0, len(adjacencyMap))
	for k := range adjacencyMap {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	index := make(map[K]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}

	directed := src.Traits().IsDirected

	var g *Graph[int]
	if directed {
		g = NewDirected[int](len(keys))
	} else {
		g = NewUndirected[int](len(keys))
	}

	for _, k := range keys {
		u := index[k]

		targets := make([]K, 0, len(adjacencyMap[k]))
		for t := range adjacencyMap[k] {
			targets = append(targets, t)
		}
		sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })

		for _, t := range targets {
			v := index[t]
			// an undirected adjacency map lists each edge from both ends
			if !directed && u > v {
				continue
			}

			if err := g.AddEdge(u, v, adjacencyMap[k][t].Properties.Weight); err != nil {
				return nil, nil, errors.Wrapf(err, "unable to add edge %v to %v", k, t)
			}
		}
	}

	return g, keys, nil
}
