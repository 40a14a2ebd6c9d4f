package graphs

import (
	"github.com/pkg/errors"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// BFS computes shortest paths from src counting every edge as one step.
// Edge weights are ignored.
func BFS[W algebra.Number](g *Graph[W], src int) (*ShortestPaths[W], error) {
	if err := g.checkSource(src); err != nil {
		return nil, errors.Wrap(err, "bfs")
	}

	p := newShortestPaths[W](g.Len(), src)

	queue := []int{src}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, a := range g.Neighbors(v) {
			if p.reach[a.To] {
				continue
			}
			p.reach[a.To] = true
			p.dist[a.To] = p.dist[v] + 1
			p.prev[a.To] = v
			queue = append(queue, a.To)
		}
	}

	return p, nil
}

// BFS01 computes shortest paths from src on a graph whose edge weights
// are all 0 or 1, using a deque instead of a priority queue.
func BFS01[W algebra.Number](g *Graph[W], src int) (*ShortestPaths[W], error) {
	if err := g.checkSource(src); err != nil {
		return nil, errors.Wrap(err, "bfs01")
	}
	for _, e := range g.Edges() {
		if e.Weight != 0 && e.Weight != 1 {
			return nil, errors.Wrapf(ErrWeightNotBinary, "edge (%d, %d) has weight %v", e.From, e.To, e.Weight)
		}
	}

	p := newShortestPaths[W](g.Len(), src)

	var dq deque
	dq.pushFront(src)
	for dq.len() > 0 {
		v := dq.popFront()

		for _, a := range g.Neighbors(v) {
			nd := p.dist[v] + a.Weight
			if p.reach[a.To] && p.dist[a.To] <= nd {
				continue
			}
			p.reach[a.To] = true
			p.dist[a.To] = nd
			p.prev[a.To] = v
			if a.Weight == 0 {
				dq.pushFront(a.To)
			} else {
				dq.pushBack(a.To)
			}
		}
	}

	return p, nil
}

// deque is a grow-only double-ended queue of vertices.
type deque struct {
	buf  []int
	head int
}

func (d *deque) len() int {
	return len(d.buf) - d.head
}

func (d *deque) pushBack(v int) {
	d.buf = append(d.buf, v)
}

func (d *deque) pushFront(v int) {
	if d.head == 0 {
		d.buf = append([]int{v}, d.buf...)
		return
	}
	d.head--
	d.buf[d.head] = v
}

func (d *deque) popFront() int {
	v := d.buf[d.head]
	d.head++

	return v
}
