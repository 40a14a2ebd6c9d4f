package stringx

import (
	"bytes"
	"sort"
)

// SuffixArray holds the suffixes of a byte sequence in lexicographic
// order. Construction doubles rank lengths and sorts, O(n log^2 n), which
// is plenty for contest-sized inputs.
type SuffixArray struct {
	text []byte
	sa   []int
}

// NewSuffixArray builds the suffix array of s.
func NewSuffixArray(s []byte) *SuffixArray {
	n := len(s)

	sa := make([]int, n)
	rank := make([]int, n)
	for i := 0; i < n; i++ {
		sa[i] = i
		rank[i] = int(s[i])
	}

	tmp := make([]int, n)
	for k := 1; ; k *= 2 {
		rankAt := func(i int) int {
			if i >= n {
				return -1
			}
			return rank[i]
		}
		less := func(a, b int) bool {
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			return rankAt(a+k) < rankAt(b+k)
		}

		sort.Slice(sa, func(i, j int) bool { return less(sa[i], sa[j]) })

		if n > 0 {
			tmp[sa[0]] = 0
			for i := 1; i < n; i++ {
				tmp[sa[i]] = tmp[sa[i-1]]
				if less(sa[i-1], sa[i]) {
					tmp[sa[i]]++
				}
			}
			copy(rank, tmp)

			if rank[sa[n-1]] == n-1 {
				break
			}
		} else {
			break
		}
	}

	return &SuffixArray{text: s, sa: sa}
}

// Array returns the suffix start positions in lexicographic suffix order.
func (s *SuffixArray) Array() []int {
	return s.sa
}

// Len returns the length of the underlying text.
func (s *SuffixArray) Len() int {
	return len(s.text)
}

// Contains reports whether pattern occurs in the text, by binary search
// over the suffix order.
func (s *SuffixArray) Contains(pattern []byte) bool {
	i := sort.Search(len(s.sa), func(i int) bool {
		return bytes.Compare(s.suffix(i, len(pattern)), pattern) >= 0
	})

	return i < len(s.sa) && bytes.Equal(s.suffix(i, len(pattern)), pattern)
}

// Count returns the number of occurrences of pattern in the text.
func (s *SuffixArray) Count(pattern []byte) int {
	lo := sort.Search(len(s.sa), func(i int) bool {
		return bytes.Compare(s.suffix(i, len(pattern)), pattern) >= 0
	})
	hi := sort.Search(len(s.sa), func(i int) bool {
		return bytes.Compare(s.suffix(i, len(pattern)), pattern) > 0
	})

	return hi - lo
}

// suffix returns the i-th suffix clipped to at most n bytes.
func (s *SuffixArray) suffix(i, n int) []byte {
	suf := s.text[s.sa[i]:]
	if len(suf) > n {
		suf = suf[:n]
	}

	return suf
}

// LCPArray returns the Kasai LCP array: lcp[i] is the length of the
// longest common prefix of the suffixes at sa[i] and sa[i+1]. Its length
// is len(sa)-1, or 0 for texts shorter than two bytes.
func (s *SuffixArray) LCPArray() []int {
	n := len(s.text)
	if n < 2 {
		return nil
	}

	rank := make([]int, n)
	for i, p := range s.sa {
		rank[p] = i
	}

	lcp := make([]int, n-1)
	h := 0
	for i := 0; i < n; i++ {
		if h > 0 {
			h--
		}
		if rank[i] == n-1 {
			h = 0
			continue
		}

		j := s.sa[rank[i]+1]
		for i+h < n && j+h < n && s.text[i+h] == s.text[j+h] {
			h++
		}
		lcp[rank[i]] = h
	}

	return lcp
}
