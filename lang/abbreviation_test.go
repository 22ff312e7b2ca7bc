package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbbrevTrieFindsKnownAbbreviation(t *testing.T) {
	trie := newAbbrevTrie(map[string][]string{
		"titles": {"Mr", "Dr"},
		"geo":    {"U.S"},
	})

	window := []byte("Please see Mr.")
	assert.True(t, trie.find(window, len(window)-1))
}

func TestAbbrevTrieCaseInsensitive(t *testing.T) {
	trie := newAbbrevTrie(map[string][]string{"titles": {"Mr"}})
	window := []byte("see mr.")
	assert.True(t, trie.find(window, len(window)-1))
}

func TestAbbrevTrieRejectsNonAbbreviation(t *testing.T) {
	trie := newAbbrevTrie(map[string][]string{"titles": {"Mr", "Dr"}})
	window := []byte("The cat sat.")
	assert.False(t, trie.find(window, len(window)-1))
}

func TestAbbrevTrieHandlesInternalDots(t *testing.T) {
	trie := newAbbrevTrie(map[string][]string{"geo": {"U.S"}})
	window := []byte("Visit the U.S.")
	assert.True(t, trie.find(window, len(window)-1))
}

func TestAbbrevTrieAtStartOfText(t *testing.T) {
	trie := newAbbrevTrie(map[string][]string{"titles": {"Dr"}})
	window := []byte("Dr.")
	assert.True(t, trie.find(window, len(window)-1))
}

func TestAbbrevTrieRejectsSuffixOfLongerWord(t *testing.T) {
	trie := newAbbrevTrie(map[string][]string{"titles": {"Mr"}})
	window := []byte("Summer.")
	assert.False(t, trie.find(window, len(window)-1))
}

func TestAbbrevTrieEmptyCategories(t *testing.T) {
	trie := newAbbrevTrie(nil)
	assert.False(t, trie.find([]byte("Mr."), 2))
}

func TestAbbrevTrieHandlesChainedInitialsAtEveryDot(t *testing.T) {
	trie := newAbbrevTrie(map[string][]string{"geo": {"U.S"}})
	window := []byte("U.S.A.")

	// "U.S.A." has three dots, at byte indices 1, 3, and 5. Every one of
	// them must resolve as abbreviation-internal, including the first
	// ("U.") where the trie only has a single letter to go on.
	assert.True(t, trie.find(window, 1))
	assert.True(t, trie.find(window, 3))
	assert.True(t, trie.find(window, 5))
}

func TestAbbrevTrieLoneLetterIsAlwaysAnInitial(t *testing.T) {
	trie := newAbbrevTrie(nil)
	assert.True(t, trie.find([]byte("U."), 1))
	assert.True(t, trie.find([]byte("Go see U."), 8))
}
