package mathx

import (
	"math"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// FloorDiv returns floor(a / b), rounding toward negative infinity rather
// than toward zero.
func FloorDiv[T algebra.Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

// CeilDiv returns ceil(a / b), rounding toward positive infinity.
func CeilDiv[T algebra.Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}

	return q
}

// Isqrt returns the integer square root of n: the largest r with r*r <= n.
func Isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}

	return r
}

// FloorSum returns the sum of floor((a*i + b) / m) for i in [0, n).
// m must be positive; a and b may be negative.
func FloorSum(n, m, a, b int64) int64 {
	if n <= 0 {
		return 0
	}

	var res int64

	if a < 0 {
		a2 := ((a % m) + m) % m
		res -= n * (n - 1) / 2 * ((a2 - a) / m)
		a = a2
	}
	if b < 0 {
		b2 := ((b % m) + m) % m
		res -= n * ((b2 - b) / m)
		b = b2
	}

	for {
		if a >= m {
			res += n * (n - 1) / 2 * (a / m)
			a %= m
		}
		if b >= m {
			res += n * (b / m)
			b %= m
		}

		yMax := a*n + b
		if yMax < m {
			return res
		}

		n = yMax / m
		b = yMax % m
		m, a = a, m
	}
}
