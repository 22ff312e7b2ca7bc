package lang

import "unicode"

// abbrevNode is one node of the reversed-word lookup trie: its children are
// keyed by the next character walking *backward* from the dot, so a single
// backward walk over the text being scanned is also a single forward walk
// through the trie.
type abbrevNode struct {
	children map[rune]*abbrevNode
	isEnd    bool
}

func newAbbrevNode() *abbrevNode {
	return &abbrevNode{children: make(map[rune]*abbrevNode)}
}

// abbrevTrie is a case-folded, reversed-word trie built once from a
// language's abbreviation categories and then used read-only by every
// scanning goroutine.
type abbrevTrie struct {
	root *abbrevNode
}

func newAbbrevTrie(categories map[string][]string) abbrevTrie {
	t := abbrevTrie{root: newAbbrevNode()}
	for _, words := range categories {
		for _, w := range words {
			t.insert(w)
		}
	}
	return t
}

func (t abbrevTrie) insert(word string) {
	node := t.root
	runes := []rune(word)
	for i := len(runes) - 1; i >= 0; i-- {
		r := unicode.ToLower(runes[i])
		child, ok := node.children[r]
		if !ok {
			child = newAbbrevNode()
			node.children[r] = child
		}
		node = child
	}
	node.isEnd = true
}

// find reports whether the word immediately preceding dotBytePos in window
// is a known abbreviation. window[dotBytePos] is the dot's own first byte
// (not part of the word); the word is whatever contiguous run of letters
// and internal dots (as in "U.S") ends right before it.
//
// A compound like "U.S.A." is only fully shaped once its last dot has been
// seen, but the scanner asks about each of its dots as it walks forward;
// the first dot's backward walk has nothing but a single "U" to go on. A
// lone letter immediately before a dot (no letter directly before it, or
// nothing before it at all) is always treated as an initial, so
// every dot of "U.S.A." resolves the same way without needing "U.S.A"
// itself in any word list.
func (t abbrevTrie) find(window []byte, dotBytePos int) bool {
	if dotBytePos <= 0 || dotBytePos > len(window) {
		return false
	}
	runes := []rune(string(window[:dotBytePos]))
	last := len(runes) - 1
	if unicode.IsLetter(runes[last]) && (last == 0 || !unicode.IsLetter(runes[last-1])) {
		return true
	}
	node := t.root
	for i := len(runes) - 1; i >= 0; i-- {
		r := unicode.ToLower(runes[i])
		child, ok := node.children[r]
		if !ok {
			break
		}
		node = child
		if node.isEnd {
			if i == 0 {
				return true
			}
			prev := runes[i-1]
			if !unicode.IsLetter(prev) && prev != '.' {
				return true
			}
		}
	}
	return false
}
