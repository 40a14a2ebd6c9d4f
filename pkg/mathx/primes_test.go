package mathx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proconlib/go-procon/pkg/mathx"
)

func TestIsPrime(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		n    uint64
		want bool
	}{
		"zero":               {n: 0, want: false},
		"one":                {n: 1, want: false},
		"two":                {n: 2, want: true},
		"three":              {n: 3, want: true},
		"four":               {n: 4, want: false},
		"carmichael 561":     {n: 561, want: false},
		"carmichael 1105":    {n: 1105, want: false},
		"mersenne 2^31-1":    {n: 2147483647, want: true},
		"large prime":        {n: 1000000007, want: true},
		"large composite":    {n: 1000000007 * 2, want: false},
		"semiprime":          {n: 1000000007 * 998244353, want: false},
		"largest u64 prime":  {n: 18446744073709551557, want: true},
		"largest u64 square": {n: 4294967295 * 4294967295, want: false},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, mathx.IsPrime(tc.n))
		})
	}
}

func TestIsPrimeAgainstSieve(t *testing.T) {
	t.Parallel()

	sieve := mathx.NewLinearSieve(10000)
	for n := 0; n <= 10000; n++ {
		require.Equal(t, sieve.IsPrime(n), mathx.IsPrime(uint64(n)), "n=%d", n)
	}
}

func TestFactorize(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mathx.Factorize(0))
	assert.Empty(t, mathx.Factorize(1))
	assert.Equal(t, []mathx.Factor{{P: 2, E: 2}, {P: 3, E: 1}}, mathx.Factorize(12))
	assert.Equal(t, []mathx.Factor{{P: 2, E: 10}}, mathx.Factorize(1024))
	assert.Equal(t, []mathx.Factor{{P: 1000000007, E: 1}}, mathx.Factorize(1000000007))
	assert.Equal(t,
		[]mathx.Factor{{P: 3, E: 1}, {P: 5, E: 1}, {P: 7, E: 1}, {P: 11, E: 1}, {P: 13, E: 1}, {P: 17, E: 1}},
		mathx.Factorize(3*5*7*11*13*17),
	)
}

func TestDivisors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mathx.Divisors(0))
	assert.Equal(t, []uint64{1}, mathx.Divisors(1))
	assert.Equal(t, []uint64{1, 2, 3, 4, 6, 12}, mathx.Divisors(12))
	assert.Equal(t, []uint64{1, 2, 4, 8, 16}, mathx.Divisors(16))
	assert.Equal(t, []uint64{1, 17}, mathx.Divisors(17))
}

func TestLinearSieve(t *testing.T) {
	t.Parallel()

	s := mathx.NewLinearSieve(30)

	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, s.Primes())
	assert.Equal(t, 2, s.SmallestFactor(12))
	assert.Equal(t, 7, s.SmallestFactor(7))
	assert.Equal(t, 0, s.SmallestFactor(1))
	assert.Equal(t, []mathx.Factor{{P: 2, E: 2}, {P: 3, E: 1}}, s.Factorize(12))
	assert.Panics(t, func() { s.SmallestFactor(31) })
}

func TestLinearSieveAgainstTrialDivision(t *testing.T) {
	t.Parallel()

	s := mathx.NewLinearSieve(2000)
	for n := 2; n <= 2000; n++ {
		require.Equal(t, mathx.Factorize(uint64(n)), s.Factorize(n), "n=%d", n)
	}
}
