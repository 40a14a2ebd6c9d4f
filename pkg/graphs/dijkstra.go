package graphs

import (
	"container/heap"
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// Dijkstra computes shortest paths from src. Edge weights must be
// non-negative; negative weights silently produce wrong distances.
func Dijkstra[W algebra.Number](g *Graph[W], src int) (*ShortestPaths[W], error) {
	if err := g.checkSource(src); err != nil {
		return nil, errors.Wrap(err, "dijkstra")
	}

	p := newShortestPaths[W](g.Len(), src)
	done := make([]bool, g.Len())

	pq := &distHeap[W]{{v: src}}
	for pq.Len() > 0 {
		top := heap.Pop(pq).(distEntry[W])
		if done[top.v] {
			continue
		}
		done[top.v] = true

		for _, a := range g.Neighbors(top.v) {
			nd := top.d + a.Weight
			if p.reach[a.To] && p.dist[a.To] <= nd {
				continue
			}
			p.reach[a.To] = true
			p.dist[a.To] = nd
			p.prev[a.To] = top.v
			heap.Push(pq, distEntry[W]{v: a.To, d: nd})
		}
	}

	return p, nil
}

// DijkstraAll runs Dijkstra from every vertex concurrently and returns
// the results indexed by source. It stops early when ctx is cancelled.
func DijkstraAll[W algebra.Number](ctx context.Context, g *Graph[W]) ([]*ShortestPaths[W], error) {
	res := make([]*ShortestPaths[W], g.Len())

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.NumCPU())

	for src := 0; src < g.Len(); src++ {
		src := src
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrapf(err, "dijkstra from %d", src)
			}

			p, err := Dijkstra(g, src)
			if err != nil {
				return err
			}
			res[src] = p

			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

type distEntry[W algebra.Number] struct {
	v int
	d W
}

type distHeap[W algebra.Number] []distEntry[W]

func (h distHeap[W]) Len() int            { return len(h) }
func (h distHeap[W]) Less(i, j int) bool  { return h[i].d < h[j].d }
func (h distHeap[W]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap[W]) Push(x interface{}) { *h = append(*h, x.(distEntry[W])) }

func (h *distHeap[W]) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
