package mathx

import "fmt"

// LinearSieve precomputes, in O(n), every prime up to a limit together with
// the smallest prime factor of every integer up to the limit, which turns
// factorisation of sieved values into an O(log n) walk.
type LinearSieve struct {
	primes []int
	spf    []int
}

// NewLinearSieve sieves the integers up to and including limit.
func NewLinearSieve(limit int) *LinearSieve {
	if limit < 0 {
		limit = 0
	}

	spf := make([]int, limit+1)
	var primes []int

	for i := 2; i <= limit; i++ {
		if spf[i] == 0 {
			spf[i] = i
			primes = append(primes, i)
		}
		for _, p := range primes {
			if p > spf[i] || i*p > limit {
				break
			}
			spf[i*p] = p
		}
	}

	return &LinearSieve{primes: primes, spf: spf}
}

// Primes returns the primes up to the limit in increasing order.
func (s *LinearSieve) Primes() []int {
	return s.primes
}

// IsPrime reports whether n is prime. n must not exceed the sieve limit.
func (s *LinearSieve) IsPrime(n int) bool {
	s.check(n)

	return n >= 2 && s.spf[n] == n
}

// SmallestFactor returns the smallest prime factor of n, or 0 when n < 2.
// n must not exceed the sieve limit.
func (s *LinearSieve) SmallestFactor(n int) int {
	s.check(n)

	return s.spf[n]
}

// Factorize returns the prime factorisation of n in increasing prime order.
// n must not exceed the sieve limit.
func (s *LinearSieve) Factorize(n int) []Factor {
	s.check(n)

	var res []Factor
	for n >= 2 {
		p := s.spf[n]
		e := 0
		for n%p == 0 {
			n /= p
			e++
		}
		res = append(res, Factor{P: uint64(p), E: e})
	}

	return res
}

func (s *LinearSieve) check(n int) {
	if n < 0 || n >= len(s.spf) {
		panic(fmt.Sprintf("mathx: %d outside sieve range [0, %d]", n, len(s.spf)-1))
	}
}
