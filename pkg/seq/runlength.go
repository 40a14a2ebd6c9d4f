package seq

// Run is one maximal block of equal adjacent elements.
type Run[T comparable] struct {
	Value T
	Count int
}

// RunLength encodes s as maximal runs of equal adjacent elements, e.g.
// "aaabbbbcc" becomes [{a 3} {b 4} {c 2}].
func RunLength[T comparable](s []T) []Run[T] {
	var runs []Run[T]
	for i := 0; i < len(s); {
		j := i + 1
		for j < len(s) && s[j] == s[i] {
			j++
		}
		runs = append(runs, Run[T]{Value: s[i], Count: j - i})
		i = j
	}

	return runs
}

// RunLengthString is RunLength over the bytes of s.
func RunLengthString(s string) []Run[byte] {
	return RunLength([]byte(s))
}
