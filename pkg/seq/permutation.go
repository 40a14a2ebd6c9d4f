package seq

import "cmp"

// NextPermutation rearranges v into the lexicographically next
// permutation in place and reports whether one exists. It returns false
// with v untouched when v is already the last permutation, so looping
// until false starting from sorted input visits every permutation.
// Equal elements are supported; permutations are visited once each.
func NextPermutation[T cmp.Ordered](v []T) bool {
	i := len(v) - 2
	for i >= 0 && v[i] >= v[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(v) - 1
	for v[j] <= v[i] {
		j--
	}
	v[i], v[j] = v[j], v[i]

	for l, r := i+1, len(v)-1; l < r; l, r = l+1, r-1 {
		v[l], v[r] = v[r], v[l]
	}

	return true
}
