// Package intervals maintains a set of integers as disjoint closed
// intervals. Inserting and removing ranges keeps the representation
// canonical: intervals never overlap and never touch.
package intervals

import (
	"fmt"
	"sort"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// Interval is a closed range [Lo, Hi].
type Interval[T algebra.Integer] struct {
	Lo, Hi T
}

// Set stores disjoint closed intervals ordered by their lower ends.
// Adjacent intervals such as [1, 2] and [3, 4] are coalesced. The zero
// value is an empty set.
type Set[T algebra.Integer] struct {
	ivs []Interval[T]
}

// Len returns the number of disjoint intervals.
func (s *Set[T]) Len() int {
	return len(s.ivs)
}

// Intervals returns the disjoint intervals in increasing order.
func (s *Set[T]) Intervals() []Interval[T] {
	out := make([]Interval[T], len(s.ivs))
	copy(out, s.ivs)

	return out
}

// Insert adds every integer in [lo, hi] to the set, merging with any
// interval it overlaps or touches.
func (s *Set[T]) Insert(lo, hi T) {
	if lo > hi {
		panic(fmt.Sprintf("intervals: interval [%v, %v] is empty", lo, hi))
	}

	// first interval reaching lo-1 or beyond; the guard keeps iv.Hi+1
	// from overflowing
	i := sort.Search(len(s.ivs), func(k int) bool {
		iv := s.ivs[k]
		return iv.Hi >= lo || iv.Hi+1 == lo
	})
	// first interval starting past hi+1
	j := sort.Search(len(s.ivs), func(k int) bool {
		iv := s.ivs[k]
		return iv.Lo > hi && iv.Lo != hi+1
	})

	if i < j {
		lo = min(lo, s.ivs[i].Lo)
		hi = max(hi, s.ivs[j-1].Hi)
	}

	s.ivs = append(s.ivs[:i], append([]Interval[T]{{Lo: lo, Hi: hi}}, s.ivs[j:]...)...)
}

// InsertPoint adds the single integer x.
func (s *Set[T]) InsertPoint(x T) {
	s.Insert(x, x)
}

// Remove deletes every integer in [lo, hi] from the set, splitting
// intervals that extend past either end.
func (s *Set[T]) Remove(lo, hi T) {
	if lo > hi {
		panic(fmt.Sprintf("intervals: interval [%v, %v] is empty", lo, hi))
	}

	i := sort.Search(len(s.ivs), func(k int) bool { return s.ivs[k].Hi >= lo })
	j := sort.Search(len(s.ivs), func(k int) bool { return s.ivs[k].Lo > hi })
	if i >= j {
		return
	}

	var keep []Interval[T]
	if s.ivs[i].Lo < lo {
		keep = append(keep, Interval[T]{Lo: s.ivs[i].Lo, Hi: lo - 1})
	}
	if s.ivs[j-1].Hi > hi {
		keep = append(keep, Interval[T]{Lo: hi + 1, Hi: s.ivs[j-1].Hi})
	}

	s.ivs = append(s.ivs[:i], append(keep, s.ivs[j:]...)...)
}

// Contains reports whether x is in the set.
func (s *Set[T]) Contains(x T) bool {
	_, ok := s.Covering(x)

	return ok
}

// Covering returns the interval containing x, if any.
func (s *Set[T]) Covering(x T) (Interval[T], bool) {
	i := sort.Search(len(s.ivs), func(k int) bool { return s.ivs[k].Hi >= x })
	if i == len(s.ivs) || s.ivs[i].Lo > x {
		return Interval[T]{}, false
	}

	return s.ivs[i], true
}

// Mex returns the smallest integer not less than x that is absent from
// the set.
func (s *Set[T]) Mex(x T) T {
	if iv, ok := s.Covering(x); ok {
		return iv.Hi + 1
	}

	return x
}
