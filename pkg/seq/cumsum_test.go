package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proconlib/go-procon/pkg/seq"
)

func TestCumSum(t *testing.T) {
	t.Parallel()

	c := seq.NewCumSum([]int{1, 2, 3, 4, 5})

	tests := map[string]struct {
		l, r int
		want int
	}{
		"full":      {l: 0, r: 5, want: 15},
		"first":     {l: 0, r: 1, want: 1},
		"middle":    {l: 1, r: 3, want: 5},
		"tail":      {l: 3, r: 5, want: 9},
		"inner":     {l: 2, r: 4, want: 7},
		"empty":     {l: 2, r: 2, want: 0},
		"last only": {l: 4, r: 5, want: 5},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, c.Sum(tc.l, tc.r))
		})
	}
}

func TestCumSumChecksRange(t *testing.T) {
	t.Parallel()

	c := seq.NewCumSum([]float64{1.5, 2.5})

	assert.Equal(t, 2, c.Len())
	assert.Panics(t, func() { c.Sum(-1, 1) })
	assert.Panics(t, func() { c.Sum(0, 3) })
	assert.Panics(t, func() { c.Sum(2, 1) })
}

func TestCumSum2D(t *testing.T) {
	t.Parallel()

	c := seq.NewCumSum2D([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	tests := map[string]struct {
		x1, y1, x2, y2 int
		want           int
	}{
		"full":         {x1: 0, y1: 0, x2: 3, y2: 3, want: 45},
		"top left":     {x1: 0, y1: 0, x2: 2, y2: 2, want: 12},
		"bottom right": {x1: 1, y1: 1, x2: 3, y2: 3, want: 28},
		"right band":   {x1: 0, y1: 1, x2: 2, y2: 3, want: 16},
		"bottom band":  {x1: 2, y1: 0, x2: 3, y2: 2, want: 15},
		"single cell":  {x1: 0, y1: 0, x2: 1, y2: 1, want: 1},
		"empty":        {x1: 0, y1: 0, x2: 0, y2: 0, want: 0},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, c.Sum(tc.x1, tc.y1, tc.x2, tc.y2))
		})
	}
}

func TestCumSum2DWideGrid(t *testing.T) {
	t.Parallel()

	c := seq.NewCumSum2D([][]int{
		{1, 2, 3, 4, 5},
		{6, 7, 8, 9, 10},
		{11, 12, 13, 14, 15},
	})

	require.Equal(t, 3, c.Rows())
	require.Equal(t, 5, c.Cols())

	assert.Equal(t, 120, c.Sum(0, 0, 3, 5))
	assert.Equal(t, 27, c.Sum(0, 0, 2, 3))
	assert.Equal(t, 69, c.Sum(1, 2, 3, 5))
	assert.Equal(t, 33, c.Sum(0, 1, 2, 4))
	assert.Equal(t, 23, c.Sum(2, 0, 3, 2))
	assert.Equal(t, 40, c.Sum(1, 0, 2, 5))
	assert.Equal(t, 30, c.Sum(0, 4, 3, 5))
}

func TestCumSum2DRejectsRaggedGrid(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		seq.NewCumSum2D([][]int{{1, 2}, {3}})
	})
}
