package stringx

// ZArray returns, for every index i, the length of the longest common
// prefix of s and s[i:]. By convention z[0] is len(s). Runs in O(n).
func ZArray[T comparable](s []T) []int {
	n := len(s)
	if n == 0 {
		return nil
	}

	z := make([]int, n)
	z[0] = n

	i, j := 1, 0
	for i < n {
		for i+j < n && s[j] == s[i+j] {
			j++
		}
		z[i] = j

		if j == 0 {
			i++
			continue
		}

		k := 1
		for i+k < n && k+z[k] < j {
			z[i+k] = z[k]
			k++
		}
		i += k
		j -= k
	}

	return z
}

// ZArrayString is ZArray over the bytes of s.
func ZArrayString(s string) []int {
	return ZArray([]byte(s))
}
