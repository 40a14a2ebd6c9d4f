// Package seq provides sequence utilities: prefix sums in one and two
// dimensions, run-length encoding, coordinate compression, sorted-slice
// bounds, inversion counting, permutation enumeration, and grid
// rotation.
package seq
