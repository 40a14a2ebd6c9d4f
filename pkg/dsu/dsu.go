package dsu

import "fmt"

// DSU is a union-find structure with path compression and union by size.
type DSU struct {
	parents []int
	sizes   []int
	count   int
}

// New creates a DSU over n singleton elements.
func New(n int) *DSU {
	parents := make([]int, n)
	for i := range parents {
		parents[i] = i
	}

	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = 1
	}

	return &DSU{parents: parents, sizes: sizes, count: n}
}

// Len returns the number of elements.
func (d *DSU) Len() int {
	return len(d.parents)
}

// Find returns the representative of the component containing v.
func (d *DSU) Find(v int) int {
	d.checkIndex(v)

	if d.parents[v] == v {
		return v
	}

	root := d.Find(d.parents[v])
	d.parents[v] = root

	return root
}

// Merge joins the components containing u and v. It reports whether the two
// were previously separate.
func (d *DSU) Merge(u, v int) bool {
	u = d.Find(u)
	v = d.Find(v)

	if u == v {
		return false
	}

	if d.sizes[u] < d.sizes[v] {
		u, v = v, u
	}

	d.sizes[u] += d.sizes[v]
	d.parents[v] = u
	d.count--

	return true
}

// Connected reports whether u and v are in the same component.
func (d *DSU) Connected(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Size returns the number of elements in the component containing v.
func (d *DSU) Size(v int) int {
	return d.sizes[d.Find(v)]
}

// CountComponents returns the number of components.
func (d *DSU) CountComponents() int {
	return d.count
}

// Components lists every component, members in increasing order, components
// ordered by their smallest member.
func (d *DSU) Components() [][]int {
	grouped := make([][]int, len(d.parents))
	for v := range d.parents {
		root := d.Find(v)
		grouped[root] = append(grouped[root], v)
	}

	res := make([][]int, 0, d.count)
	for _, c := range grouped {
		if len(c) > 0 {
			res = append(res, c)
		}
	}

	return res
}

func (d *DSU) checkIndex(v int) {
	if v < 0 || v >= len(d.parents) {
		panic(fmt.Sprintf("dsu: element %d out of range [0, %d)", v, len(d.parents)))
	}
}
