// lexicon.go
// This file implements the Lexicon, a prefix trie over uppercase
// letters, together with a cache of cross-check letter sets.

package skrafl

import (
	"github.com/hashicorp/golang-lru/simplelru"
)

// Lexicon is a rooted prefix trie. Every node carries a Final flag and
// a map of outgoing edges keyed by uppercase letter. Build one with
// NewLexicon or NewLexiconFromWords; the zero value has no root node
// and is not usable.
type Lexicon struct {
	root *trieNode
	// crossCache memoizes CrossSet(up, down) results, keyed by the
	// concatenation of the two fragments, mirroring the teacher DAWG's
	// crossCache (dawg.go).
	crossCache *simplelru.LRU
}

type trieNode struct {
	final bool
	edges map[rune]*trieNode
}

func newTrieNode() *trieNode {
	return &trieNode{edges: make(map[rune]*trieNode)}
}

// NewLexicon returns an empty, ready-to-use Lexicon.
func NewLexicon() *Lexicon {
	lru, _ := simplelru.NewLRU(4096, nil)
	return &Lexicon{root: newTrieNode(), crossCache: lru}
}

// NewLexiconFromWords builds a Lexicon containing exactly the given
// words (each uppercased on insertion).
func NewLexiconFromWords(words []string) *Lexicon {
	lex := NewLexicon()
	for _, w := range words {
		lex.Add(w)
	}
	return lex
}

// Add inserts an uppercase word into the trie. Add is idempotent: a
// word already present is left as-is.
func (lex *Lexicon) Add(word string) {
	node := lex.root
	for _, r := range upper(word) {
		next, ok := node.edges[r]
		if !ok {
			next = newTrieNode()
			node.edges[r] = next
		}
		node = next
	}
	node.final = true
}

// Exists returns true iff word was previously Add-ed.
func (lex *Lexicon) Exists(word string) bool {
	node := lex.descendFrom(lex.root, word)
	return node != nil && node.final
}

// Node is a handle to a position within the trie, returned by Descend,
// from which navigation may continue.
type Node struct {
	n *trieNode
}

// Descend returns the subtree reached by following prefix from the
// root, or ok=false if prefix is not present in the trie.
func (lex *Lexicon) Descend(prefix string) (Node, bool) {
	node := lex.descendFrom(lex.root, prefix)
	if node == nil {
		return Node{}, false
	}
	return Node{n: node}, true
}

// Root returns a Node positioned at the root of the trie.
func (lex *Lexicon) Root() Node {
	return Node{n: lex.root}
}

// Descend continues navigation from n by a single uppercase letter.
func (n Node) Descend(letter rune) (Node, bool) {
	if n.n == nil {
		return Node{}, false
	}
	next, ok := n.n.edges[upperRune(letter)]
	if !ok {
		return Node{}, false
	}
	return Node{n: next}, true
}

// Final reports whether n corresponds to a complete word.
func (n Node) Final() bool {
	return n.n != nil && n.n.final
}

// NextLetters returns the set of outgoing edge letters at n.
func (n Node) NextLetters() []rune {
	if n.n == nil {
		return nil
	}
	out := make([]rune, 0, len(n.n.edges))
	for r := range n.n.edges {
		out = append(out, r)
	}
	return out
}

// Valid reports whether n denotes an existing node (as opposed to the
// zero Node returned on a failed Descend).
func (n Node) Valid() bool {
	return n.n != nil
}

func (lex *Lexicon) descendFrom(start *trieNode, prefix string) *trieNode {
	node := start
	for _, r := range upper(prefix) {
		next, ok := node.edges[r]
		if !ok {
			return nil
		}
		node = next
	}
	return node
}

// CrossSet returns the set of uppercase letters x for which
// up + x + down is a word in the lexicon, as described in spec §4.4.
// Both up and down may be empty, but CrossSet should only be called
// when at least one is non-empty (the "no cross word" case is handled
// by the caller, per the sentinel semantics of cross-checks/scores).
func (lex *Lexicon) CrossSet(up, down string) map[rune]bool {
	key := upper(up) + "\x00" + upper(down)
	if v, ok := lex.crossCache.Get(key); ok {
		return v.(map[rune]bool)
	}
	result := make(map[rune]bool)
	node, ok := lex.Descend(up)
	if ok {
		for _, x := range node.NextLetters() {
			next, ok2 := node.Descend(x)
			if !ok2 {
				continue
			}
			if isFinalAfter(next, down) {
				result[x] = true
			}
		}
	}
	lex.crossCache.Add(key, result)
	return result
}

// isFinalAfter reports whether descending from n by suffix ends on a
// final node.
func isFinalAfter(n Node, suffix string) bool {
	cur := n.n
	for _, r := range upper(suffix) {
		next, ok := cur.edges[r]
		if !ok {
			return false
		}
		cur = next
	}
	return cur.final
}

func upper(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, upperRune(r))
	}
	return string(out)
}

func upperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
