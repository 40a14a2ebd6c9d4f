package graphs

import (
	"container/heap"

	"github.com/pkg/errors"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// TopoOrder is a topological order of a directed acyclic graph. Unique
// reports whether it is the only one, i.e. whether the DAG has a
// Hamiltonian path.
type TopoOrder struct {
	Order  []int
	Unique bool
}

// TopologicalSort orders the vertices of a directed graph so that every
// edge goes forward. It returns ErrCyclic when no such order exists and
// ErrUndirectedGraph when g is undirected.
func TopologicalSort[W algebra.Number](g *Graph[W]) (TopoOrder, error) {
	return kahn(g, func() vertexQueue { return &fifoQueue{} })
}

// TopologicalSortStable is TopologicalSort returning the
// lexicographically smallest order.
func TopologicalSortStable[W algebra.Number](g *Graph[W]) (TopoOrder, error) {
	return kahn(g, func() vertexQueue { return &minQueue{} })
}

func kahn[W algebra.Number](g *Graph[W], newQueue func() vertexQueue) (TopoOrder, error) {
	if !g.Directed() {
		return TopoOrder{}, errors.Wrap(ErrUndirectedGraph, "topological sort")
	}

	n := g.Len()

	indegree := make([]int, n)
	for _, e := range g.Edges() {
		indegree[e.To]++
	}

	que := newQueue()
	for v := 0; v < n; v++ {
		if indegree[v] == 0 {
			que.push(v)
		}
	}

	res := TopoOrder{Order: make([]int, 0, n), Unique: true}
	for que.len() > 0 {
		if que.len() > 1 {
			res.Unique = false
		}

		v := que.pop()
		res.Order = append(res.Order, v)

		for _, a := range g.Neighbors(v) {
			indegree[a.To]--
			if indegree[a.To] == 0 {
				que.push(a.To)
			}
		}
	}

	if len(res.Order) < n {
		return TopoOrder{}, errors.Wrapf(ErrCyclic, "ordered %d of %d vertices", len(res.Order), n)
	}

	return res, nil
}

type vertexQueue interface {
	len() int
	push(v int)
	pop() int
}

type fifoQueue struct {
	buf  []int
	head int
}

func (q *fifoQueue) len() int { return len(q.buf) - q.head }

func (q *fifoQueue) push(v int) {
	q.buf = append(q.buf, v)
}

func (q *fifoQueue) pop() int {
	v := q.buf[q.head]
	q.head++

	return v
}

// minQueue pops the smallest vertex first.
type minQueue []int

func (q *minQueue) len() int   { return len(*q) }
func (q *minQueue) push(v int) { heap.Push((*intHeap)(q), v) }
func (q *minQueue) pop() int   { return heap.Pop((*intHeap)(q)).(int) }

type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x interface{}) { *h = append(*h, x.(int)) }

func (h *intHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
