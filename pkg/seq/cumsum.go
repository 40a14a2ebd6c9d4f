package seq

import (
	"fmt"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// CumSum answers range sums over a frozen sequence in O(1) per query.
type CumSum[T algebra.Number] struct {
	prefix []T
}

// NewCumSum precomputes the prefix sums of v.
func NewCumSum[T algebra.Number](v []T) *CumSum[T] {
	prefix := make([]T, len(v)+1)
	for i, x := range v {
		prefix[i+1] = prefix[i] + x
	}

	return &CumSum[T]{prefix: prefix}
}

// Len returns the length of the underlying sequence.
func (c *CumSum[T]) Len() int {
	return len(c.prefix) - 1
}

// Sum returns the sum over [l, r).
func (c *CumSum[T]) Sum(l, r int) T {
	if l < 0 || l > r || r > c.Len() {
		panic(fmt.Sprintf("seq: range [%d, %d) invalid for length %d", l, r, c.Len()))
	}

	return c.prefix[r] - c.prefix[l]
}

// CumSum2D answers rectangle sums over a frozen grid in O(1) per query.
type CumSum2D[T algebra.Number] struct {
	prefix [][]T
}

// NewCumSum2D precomputes the 2D prefix sums of grid. Rows beyond the
// first must have the same length as the first.
func NewCumSum2D[T algebra.Number](grid [][]T) *CumSum2D[T] {
	h := len(grid)
	w := 0
	if h > 0 {
		w = len(grid[0])
	}

	prefix := make([][]T, h+1)
	prefix[0] = make([]T, w+1)
	for i := 0; i < h; i++ {
		if len(grid[i]) != w {
			panic(fmt.Sprintf("seq: row %d has length %d, want %d", i, len(grid[i]), w))
		}

		prefix[i+1] = make([]T, w+1)
		for j := 0; j < w; j++ {
			prefix[i+1][j+1] = grid[i][j] + prefix[i+1][j] + prefix[i][j+1] - prefix[i][j]
		}
	}

	return &CumSum2D[T]{prefix: prefix}
}

// Rows returns the grid height.
func (c *CumSum2D[T]) Rows() int {
	return len(c.prefix) - 1
}

// Cols returns the grid width.
func (c *CumSum2D[T]) Cols() int {
	return len(c.prefix[0]) - 1
}

// Sum returns the sum over the rectangle [x1, x2) x [y1, y2).
func (c *CumSum2D[T]) Sum(x1, y1, x2, y2 int) T {
	if x1 < 0 || x1 > x2 || x2 > c.Rows() {
		panic(fmt.Sprintf("seq: row range [%d, %d) invalid for %d rows", x1, x2, c.Rows()))
	}
	if y1 < 0 || y1 > y2 || y2 > c.Cols() {
		panic(fmt.Sprintf("seq: column range [%d, %d) invalid for %d columns", y1, y2, c.Cols()))
	}

	return c.prefix[x2][y2] + c.prefix[x1][y1] - c.prefix[x1][y2] - c.prefix[x2][y1]
}
