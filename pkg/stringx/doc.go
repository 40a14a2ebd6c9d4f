// Package stringx provides string algorithms: Z-arrays, rolling hashes,
// tries and suffix arrays. Everything operates on byte slices so the same
// code serves strings and arbitrary byte sequences.
package stringx
