package boggle

import "sort"

// Trie is a data structure for storing common prefixes of dictionary words so that a
// search can test, one letter at a time, whether a path can still become a word.
//
// A Trie is not safe for concurrent mutation. Build it fully before handing it to a
// Solver; after that any number of searches may share it.
type Trie struct {
	root  *Node
	count int
}

// Node is a node in a Trie which contains a map of runes to more node pointers.
// If word is non-empty, this indicates that the node defines the end of a word.
type Node struct {
	value    rune
	children map[rune]*Node
	word     string
}

// New creates a new empty trie. The root represents the empty prefix.
func New() *Trie {
	t := new(Trie)
	t.root = newNode(0)
	return t
}

// Build creates a trie holding every given word.
func Build(words ...string) *Trie {
	t := New()
	t.Insert(words...)
	return t
}

func newNode(value rune) *Node {
	return &Node{value: value, children: make(map[rune]*Node)}
}

// Insert inserts words into the Trie. Matching is exact, so callers fold case first.
// Empty strings are ignored and re-inserting a word is a no-op.
func (t *Trie) Insert(entries ...string) {
	for _, entry := range entries {
		t.insertInternal(entry)
	}
}

func (t *Trie) insertInternal(entry string) {
	if len(entry) == 0 {
		return
	}
	currentNode := t.root
	for _, character := range entry {
		child, ok := currentNode.children[character]
		if !ok {
			child = newNode(character)
			currentNode.children[character] = child
		}
		currentNode = child
	}
	if currentNode.word == "" {
		t.count++
	}
	currentNode.word = entry
}

// Root returns the node for the empty prefix.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of distinct words stored.
func (t *Trie) Len() int {
	return t.count
}

// Value returns the character this node represents. The root holds zero.
func (n *Node) Value() rune {
	return n.value
}

// Child returns the child for r, or nil if no stored word continues with r.
func (n *Node) Child(r rune) *Node {
	return n.children[r]
}

// Word returns the word this node completes, if any.
func (n *Node) Word() (string, bool) {
	return n.word, n.word != ""
}

// walk follows s from the root and returns the node reached, or nil.
func (t *Trie) walk(s string) *Node {
	current := t.root
	for _, r := range s {
		next, ok := current.children[r]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)
	return n != nil && n.word == word && word != ""
}

// HasPrefix reports whether any stored word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// WordsWithPrefix returns the stored words starting with prefix in alphabetical order.
// A limit of zero returns all of them.
func (t *Trie) WordsWithPrefix(prefix string, limit int) []string {
	n := t.walk(prefix)
	if n == nil {
		return []string{}
	}
	hits := make([]string, 0)
	n.collectAllDescendentWords(&hits)
	sort.Strings(hits)
	if limit > 0 && len(hits) > limit {
		return hits[:limit]
	}
	return hits
}

// collectAllDescendentWords appends the words of n and every node below it.
func (n *Node) collectAllDescendentWords(hits *[]string) {
	if n.word != "" {
		*hits = append(*hits, n.word)
	}
	for _, node := range n.children {
		node.collectAllDescendentWords(hits)
	}
}
