package fenwick_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proconlib/go-procon/pkg/algebra"
	"github.com/proconlib/go-procon/pkg/fenwick"
)

func TestTreePointAddRangeSum(t *testing.T) {
	t.Parallel()

	ft := fenwick.New[int](5, algebra.Sum[int]{})
	ft.Add(1, 5)
	ft.Add(2, 3)
	ft.Add(4, 2)

	assert.Equal(t, 5, ft.Fold(0, 2))
	assert.Equal(t, 8, ft.Fold(0, 3))
	assert.Equal(t, 5, ft.Fold(2, 5))
	assert.Equal(t, 10, ft.Prefix(5))
	assert.Equal(t, 0, ft.Fold(3, 3))
}

func TestTreeSetGet(t *testing.T) {
	t.Parallel()

	ft := fenwick.FromSlice([]int{3, 1, 4, 1, 5}, algebra.Sum[int]{})

	assert.Equal(t, 4, ft.Get(2))
	ft.Set(2, -2)
	assert.Equal(t, -2, ft.Get(2))
	assert.Equal(t, 8, ft.Prefix(5))
}

func TestTreeXorGroup(t *testing.T) {
	t.Parallel()

	ft := fenwick.FromSlice([]uint{0b101, 0b011, 0b110}, algebra.Xor[uint]{})

	assert.Equal(t, uint(0b110), ft.Fold(0, 2))
	assert.Equal(t, uint(0b000), ft.Fold(0, 3))
	assert.Equal(t, uint(0b101), ft.Fold(1, 3))
}

func TestTreeOutOfRange(t *testing.T) {
	t.Parallel()

	ft := fenwick.New[int](3, algebra.Sum[int]{})
	assert.Panics(t, func() { ft.Add(3, 1) })
	assert.Panics(t, func() { ft.Fold(1, 4) })
	assert.Panics(t, func() { ft.Prefix(-1) })
}

func TestTreeAgainstNaive(t *testing.T) {
	t.Parallel()

	const n = 97

	rng := rand.New(rand.NewSource(11))

	naive := make([]int, n)
	ft := fenwick.New[int](n, algebra.Sum[int]{})

	for q := 0; q < 2000; q++ {
		switch rng.Intn(3) {
		case 0:
			i := rng.Intn(n)
			v := rng.Intn(200) - 100
			naive[i] += v
			ft.Add(i, v)
		case 1:
			i := rng.Intn(n)
			v := rng.Intn(200) - 100
			naive[i] = v
			ft.Set(i, v)
		default:
			l := rng.Intn(n + 1)
			r := l + rng.Intn(n+1-l)

			want := 0
			for _, v := range naive[l:r] {
				want += v
			}
			require.Equal(t, want, ft.Fold(l, r), "fold [%d, %d)", l, r)
		}
	}
}
