package seq

import (
	"cmp"
	"sort"
)

// LowerBound returns the first index in the sorted slice v whose element
// is not less than x, or len(v) when every element is smaller.
func LowerBound[T cmp.Ordered](v []T, x T) int {
	return sort.Search(len(v), func(i int) bool { return v[i] >= x })
}

// UpperBound returns the first index in the sorted slice v whose element
// is greater than x, or len(v) when no element is.
func UpperBound[T cmp.Ordered](v []T, x T) int {
	return sort.Search(len(v), func(i int) bool { return v[i] > x })
}

// Compress maps each element of v to its rank among the distinct values.
// It returns the ranks alongside the sorted distinct values, so that
// values[ranks[i]] == v[i].
func Compress[T cmp.Ordered](v []T) (ranks []int, values []T) {
	values = make([]T, len(v))
	copy(values, v)
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	n := 0
	for i, x := range values {
		if i == 0 || x != values[n-1] {
			values[n] = x
			n++
		}
	}
	values = values[:n]

	ranks = make([]int, len(v))
	for i, x := range v {
		ranks[i] = LowerBound(values, x)
	}

	return ranks, values
}
