package simpleinput

import (
	"fmt"

	"github.com/derekparker/trie"
)

// trieIndex keeps syllables in a pointer-based trie. Each syllable's
// position is stored as node meta data and never changes, so
// ResolvePosition is the identity.
type trieIndex struct {
	frozen bool
	tree   *trie.Trie
	nextID int
	size   int
}

func newTrieIndex() *trieIndex {
	return &trieIndex{
		tree:   trie.New(),
		nextID: rootState + 1,
	}
}

func (ti *trieIndex) EncodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			if !ti.frozen {
				return nil, false
			}
			r = 0
		}
		key = append(key, uint16(r))
	}
	return key, true
}

func decodeKey(key []uint16) (string, bool) {
	runes := make([]rune, len(key))
	for i, c := range key {
		if c == 0 {
			return "", false
		}
		runes[i] = rune(c)
	}
	return string(runes), true
}

func (ti *trieIndex) Insert(key []uint16) int {
	if ti.frozen || len(key) == 0 {
		return 0
	}
	s, ok := decodeKey(key)
	if !ok {
		return 0
	}
	if node, found := ti.tree.Find(s); found {
		return node.Meta().(int)
	}
	id := ti.nextID
	ti.nextID++
	ti.size++
	ti.tree.Add(s, id)
	return id
}

func (ti *trieIndex) ResolvePosition(pos int) int {
	return pos
}

func (ti *trieIndex) Freeze() {
	ti.frozen = true
}

func (ti *trieIndex) Find(key []uint16) int {
	s, ok := decodeKey(key)
	if !ok || s == "" {
		return 0
	}
	if node, found := ti.tree.Find(s); found {
		return node.Meta().(int)
	}
	return 0
}

func (ti *trieIndex) Iterator() indexIterator {
	return &trieIterator{tree: ti.tree}
}

// trieIterator reports the syllable position for prefixes which are
// syllables and rootState for prefixes which only lead to syllables.
type trieIterator struct {
	tree   *trie.Trie
	prefix []rune
	dead   bool
}

func (it *trieIterator) Next(symbol uint16) int {
	if it.dead || symbol == 0 {
		it.dead = true
		return 0
	}
	it.prefix = append(it.prefix, rune(symbol))
	s := string(it.prefix)
	if node, found := it.tree.Find(s); found {
		return node.Meta().(int)
	}
	if it.tree.HasKeysWithPrefix(s) {
		return rootState
	}
	it.dead = true
	return 0
}

func (ti *trieIndex) String() string {
	return fmt.Sprintf("Trie(keys=%d,frozen=%v)", ti.size, ti.frozen)
}

func (ti *trieIndex) Stats() indexStats {
	return indexStats{
		Backend:    string(BackendTrie),
		UsedSlots:  ti.size,
		TotalSlots: ti.size,
		MaxStateID: ti.nextID - 1,
	}
}
