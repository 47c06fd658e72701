package boggle

import "sort"

// WordSet is a duplicate-free, unordered collection of found words.
type WordSet map[string]struct{}

// Add inserts word.
func (s WordSet) Add(word string) {
	s[word] = struct{}{}
}

// Contains reports whether word is in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words.
func (s WordSet) Len() int {
	return len(s)
}

// Union adds every word of other to s.
func (s WordSet) Union(other WordSet) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// Sorted returns the words in alphabetical order.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
