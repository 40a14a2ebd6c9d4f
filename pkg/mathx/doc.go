// Package mathx provides the number-theoretic toolbox: gcd and the extended
// Euclidean algorithm, modular arithmetic, deterministic 64-bit primality
// testing, factorisation, a linear sieve, floor sums and binomial
// coefficient tables.
package mathx
