package mathx

import "github.com/proconlib/go-procon/pkg/algebra"

// GCD returns the greatest common divisor of a and b, folding negatives by
// absolute value. GCD(0, 0) is 0.
func GCD[T algebra.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b, or 0 when either is 0.
func LCM[T algebra.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	g := GCD(a, b)

	res := a / g * b
	if res < 0 {
		res = -res
	}

	return res
}

// ExtGCD returns g = gcd(a, b) together with coefficients x, y such that
// a*x + b*y = g. g is always non-negative.
func ExtGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		if a < 0 {
			return -a, -1, 0
		}
		return a, 1, 0
	}

	g, x1, y1 := ExtGCD(b, a%b)

	return g, y1, x1 - (a/b)*y1
}
