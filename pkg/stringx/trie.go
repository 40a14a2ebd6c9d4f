package stringx

import "fmt"

type trieNode struct {
	children   []int32
	passed     int
	terminated int
}

// Trie is a byte-alphabet trie counting inserted words. It supports
// membership and prefix queries, removal, and lexicographic selection of
// the k-th word.
type Trie struct {
	offset byte
	sigma  int
	nodes  []trieNode
}

// NewTrie creates a trie over the alphabet [offset, offset+sigma).
// NewTrie('a', 26) covers lower-case words.
func NewTrie(offset byte, sigma int) *Trie {
	t := &Trie{offset: offset, sigma: sigma}
	t.nodes = append(t.nodes, t.newNode())

	return t
}

func (t *Trie) newNode() trieNode {
	children := make([]int32, t.sigma)
	for i := range children {
		children[i] = -1
	}

	return trieNode{children: children}
}

func (t *Trie) index(c byte) int {
	i := int(c) - int(t.offset)
	if i < 0 || i >= t.sigma {
		panic(fmt.Sprintf("stringx: byte %q outside trie alphabet", c))
	}

	return i
}

// Insert adds one occurrence of s, which may already be present.
func (t *Trie) Insert(s []byte) {
	cur := 0
	t.nodes[cur].passed++
	for _, c := range s {
		i := t.index(c)
		if t.nodes[cur].children[i] < 0 {
			t.nodes = append(t.nodes, t.newNode())
			t.nodes[cur].children[i] = int32(len(t.nodes) - 1)
		}
		cur = int(t.nodes[cur].children[i])
		t.nodes[cur].passed++
	}
	t.nodes[cur].terminated++
}

// Erase removes one occurrence of s. It reports whether an occurrence was
// present to remove.
func (t *Trie) Erase(s []byte) bool {
	if t.Count(s) == 0 {
		return false
	}

	cur := 0
	t.nodes[cur].passed--
	for _, c := range s {
		cur = int(t.nodes[cur].children[t.index(c)])
		t.nodes[cur].passed--
	}
	t.nodes[cur].terminated--

	return true
}

// Contains reports whether s was inserted at least once.
func (t *Trie) Contains(s []byte) bool {
	return t.Count(s) > 0
}

// Count returns the number of times s was inserted.
func (t *Trie) Count(s []byte) int {
	node, ok := t.walk(s)
	if !ok {
		return 0
	}

	return t.nodes[node].terminated
}

// CountPrefix returns the number of inserted words having s as a prefix,
// counting multiplicity.
func (t *Trie) CountPrefix(s []byte) int {
	node, ok := t.walk(s)
	if !ok {
		return 0
	}

	return t.nodes[node].passed
}

// Len returns the number of inserted words, counting multiplicity.
func (t *Trie) Len() int {
	return t.nodes[0].passed
}

// Nth returns the k-th word (0-indexed) in lexicographic order, counting
// multiplicity, or false when fewer than k+1 words are stored.
func (t *Trie) Nth(k int) ([]byte, bool) {
	if k < 0 || k >= t.Len() {
		return nil, false
	}

	var word []byte
	cur := 0
	for {
		if k < t.nodes[cur].terminated {
			return word, true
		}
		k -= t.nodes[cur].terminated

		for i := 0; i < t.sigma; i++ {
			child := t.nodes[cur].children[i]
			if child < 0 {
				continue
			}
			if k < t.nodes[child].passed {
				word = append(word, t.offset+byte(i))
				cur = int(child)
				break
			}
			k -= t.nodes[child].passed
		}
	}
}

// LongestCommonPrefixWith returns the length of the longest prefix of s
// shared with at least one inserted word.
func (t *Trie) LongestCommonPrefixWith(s []byte) int {
	cur := 0
	for n, c := range s {
		next := t.nodes[cur].children[t.index(c)]
		if next < 0 || t.nodes[next].passed == 0 {
			return n
		}
		cur = int(next)
	}

	return len(s)
}

func (t *Trie) walk(s []byte) (int, bool) {
	cur := 0
	for _, c := range s {
		next := t.nodes[cur].children[t.index(c)]
		if next < 0 || t.nodes[next].passed == 0 {
			return 0, false
		}
		cur = int(next)
	}

	return cur, true
}
