package seq

import "fmt"

// RotateClockwise returns grid rotated 90 degrees clockwise. An h-by-w
// grid becomes w-by-h. Rows beyond the first must have the same length
// as the first.
func RotateClockwise[T any](grid [][]T) [][]T {
	h, w := gridDims(grid)

	rotated := make([][]T, w)
	for j := range rotated {
		rotated[j] = make([]T, h)
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			rotated[j][h-1-i] = grid[i][j]
		}
	}

	return rotated
}

// RotateCounterclockwise returns grid rotated 90 degrees counterclockwise.
// An h-by-w grid becomes w-by-h.
func RotateCounterclockwise[T any](grid [][]T) [][]T {
	h, w := gridDims(grid)

	rotated := make([][]T, w)
	for j := range rotated {
		rotated[j] = make([]T, h)
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			rotated[w-1-j][i] = grid[i][j]
		}
	}

	return rotated
}

// Transpose returns the transpose of grid. An h-by-w grid becomes w-by-h.
func Transpose[T any](grid [][]T) [][]T {
	h, w := gridDims(grid)

	transposed := make([][]T, w)
	for j := range transposed {
		transposed[j] = make([]T, h)
	}
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			transposed[j][i] = grid[i][j]
		}
	}

	return transposed
}

func gridDims[T any](grid [][]T) (h, w int) {
	h = len(grid)
	if h > 0 {
		w = len(grid[0])
	}
	for i := 0; i < h; i++ {
		if len(grid[i]) != w {
			panic(fmt.Sprintf("seq: row %d has length %d, want %d", i, len(grid[i]), w))
		}
	}

	return h, w
}
