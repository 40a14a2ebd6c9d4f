package mathx

import "sort"

// millerRabinBases is a witness set proven sufficient for every 64-bit
// integer.
var millerRabinBases = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime, deterministically for the full 64-bit
// range (Miller-Rabin with a fixed witness set).
func IsPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0:
		return false
	}

	d := n - 1
	r := 0
	for d%2 == 0 {
		d >>= 1
		r++
	}

	md := NewMod(n)

witness:
	for _, a := range millerRabinBases {
		if a%n == 0 {
			continue
		}

		x := md.Pow(a, d)
		if x == 1 || x == n-1 {
			continue
		}

		for i := 0; i < r-1; i++ {
			x = md.Mul(x, x)
			if x == n-1 {
				continue witness
			}
		}

		return false
	}

	return true
}

// Factor is a prime power in a factorisation.
type Factor struct {
	P uint64
	E int
}

// Factorize returns the prime factorisation of n in increasing prime order.
// Factorize(0) and Factorize(1) are empty.
func Factorize(n uint64) []Factor {
	var res []Factor

	for p := uint64(2); p <= n/p; p++ {
		if n%p != 0 {
			continue
		}

		e := 0
		for n%p == 0 {
			n /= p
			e++
		}
		res = append(res, Factor{P: p, E: e})
	}

	if n > 1 {
		res = append(res, Factor{P: n, E: 1})
	}

	return res
}

// Divisors returns every divisor of n in increasing order. Divisors(0) is
// empty.
func Divisors(n uint64) []uint64 {
	if n == 0 {
		return nil
	}

	var res []uint64
	for d := uint64(1); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}

		res = append(res, d)
		if d != n/d {
			res = append(res, n/d)
		}
	}

	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })

	return res
}
