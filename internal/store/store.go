package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dominikbraun/graph"
)

// Dense is a graph.Store for graphs whose vertex keys are the integers
// 0..n-1. Vertices and edge maps live in slices indexed by key, which
// keeps lookups allocation-free compared to the library's map-backed
// default store.
type Dense[T any] struct {
	lock     sync.RWMutex
	present  []bool
	count    int
	vertices []T
	props    []*graph.VertexProperties

	// outEdges and inEdges hold all edges keyed by the opposite endpoint.
	outEdges []map[int]graph.Edge[int] // source -> target
	inEdges  []map[int]graph.Edge[int] // target -> source
}

// NewDense creates a store sized for keys below n. Larger keys grow it.
func NewDense[T any](n int) *Dense[T] {
	s := &Dense[T]{}
	s.grow(n)

	return s
}

func (s *Dense[T]) grow(n int) {
	for len(s.present) < n {
		var zero T
		s.present = append(s.present, false)
		s.vertices = append(s.vertices, zero)
		s.props = append(s.props, nil)
		s.outEdges = append(s.outEdges, nil)
		s.inEdges = append(s.inEdges, nil)
	}
}

func (s *Dense[T]) AddVertex(k int, t T, p graph.VertexProperties) error {
	if k < 0 {
		return fmt.Errorf("vertex key %d is negative: %w", k, graph.ErrVertexNotFound)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.grow(k + 1)
	if s.present[k] {
		return graph.ErrVertexAlreadyExists
	}

	s.present[k] = true
	s.count++
	s.vertices[k] = t
	s.props[k] = &p

	return nil
}

// ListVertices returns the vertex keys in increasing order.
func (s *Dense[T]) ListVertices() ([]int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	keys := make([]int, 0, s.count)
	for k, ok := range s.present {
		if ok {
			keys = append(keys, k)
		}
	}

	return keys, nil
}

func (s *Dense[T]) VertexCount() (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.count, nil
}

func (s *Dense[T]) Vertex(k int) (T, graph.VertexProperties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.vertex(k)
}

func (s *Dense[T]) vertex(k int) (T, graph.VertexProperties, error) {
	if k < 0 || k >= len(s.present) || !s.present[k] {
		var zero T
		return zero, graph.VertexProperties{}, graph.ErrVertexNotFound
	}

	return s.vertices[k], *s.props[k], nil
}

func (s *Dense[T]) RemoveVertex(k int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if k < 0 || k >= len(s.present) || !s.present[k] {
		return graph.ErrVertexNotFound
	}
	if len(s.inEdges[k]) > 0 || len(s.outEdges[k]) > 0 {
		return graph.ErrVertexHasEdges
	}

	var zero T
	s.present[k] = false
	s.count--
	s.vertices[k] = zero
	s.props[k] = nil

	return nil
}

func (s *Dense[T]) AddEdge(sourceHash, targetHash int, edge graph.Edge[int]) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if sourceHash < 0 || targetHash < 0 {
		return graph.ErrVertexNotFound
	}
	s.grow(max(sourceHash, targetHash) + 1)

	if s.outEdges[sourceHash] == nil {
		s.outEdges[sourceHash] = make(map[int]graph.Edge[int])
	}
	s.outEdges[sourceHash][targetHash] = edge

	if s.inEdges[targetHash] == nil {
		s.inEdges[targetHash] = make(map[int]graph.Edge[int])
	}
	s.inEdges[targetHash][sourceHash] = edge

	return nil
}

func (s *Dense[T]) UpdateEdge(sourceHash, targetHash int, edge graph.Edge[int]) error {
	if _, err := s.Edge(sourceHash, targetHash); err != nil {
		return err
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.outEdges[sourceHash][targetHash] = edge
	s.inEdges[targetHash][sourceHash] = edge

	return nil
}

func (s *Dense[T]) RemoveEdge(sourceHash, targetHash int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if sourceHash < 0 || sourceHash >= len(s.present) || targetHash < 0 || targetHash >= len(s.present) {
		return nil
	}

	delete(s.inEdges[targetHash], sourceHash)
	delete(s.outEdges[sourceHash], targetHash)

	return nil
}

func (s *Dense[T]) Edge(sourceHash, targetHash int) (graph.Edge[int], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if sourceHash < 0 || sourceHash >= len(s.present) {
		return graph.Edge[int]{}, graph.ErrEdgeNotFound
	}

	edge, ok := s.outEdges[sourceHash][targetHash]
	if !ok {
		return graph.Edge[int]{}, graph.ErrEdgeNotFound
	}

	return edge, nil
}

// ListEdges returns the edges ordered by source, then target.
func (s *Dense[T]) ListEdges() ([]graph.Edge[int], error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	res := make([]graph.Edge[int], 0)
	for source := range s.outEdges {
		targets := make([]int, 0, len(s.outEdges[source]))
		for target := range s.outEdges[source] {
			targets = append(targets, target)
		}
		sort.Ints(targets)

		for _, target := range targets {
			res = append(res, s.outEdges[source][target])
		}
	}

	return res, nil
}

// CreatesCycle reports whether adding the edge (source, target) would
// close a cycle. It walks inEdges directly instead of materializing the
// predecessor map that the generic [graph.CreatesCycle] builds.
func (s *Dense[T]) CreatesCycle(source, target int) (bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if _, _, err := s.vertex(source); err != nil {
		return false, fmt.Errorf("could not get vertex with hash %v: %w", source, err)
	}
	if _, _, err := s.vertex(target); err != nil {
		return false, fmt.Errorf("could not get vertex with hash %v: %w", target, err)
	}

	if source == target {
		return true, nil
	}

	stack := []int{source}
	visited := make([]bool, len(s.present))

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[current] {
			continue
		}

		// target being an ancestor of source means the new edge closes a loop
		if current == target {
			return true, nil
		}
		visited[current] = true

		for adjacency := range s.inEdges[current] {
			stack = append(stack, adjacency)
		}
	}

	return false, nil
}

var _ graph.Store[int, string] = (*Dense[string])(nil)
