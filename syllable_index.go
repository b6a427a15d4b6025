package simpleinput

import "fmt"

// Backend names a syllable index implementation.
type Backend string

const (
	// BackendDAT stores syllables in a frozen double-array trie.
	BackendDAT Backend = "dat"
	// BackendTrie stores syllables in a pointer-based trie.
	BackendTrie Backend = "trie"
)

// rootState is the state of the empty prefix. It never carries candidates,
// as empty syllables are rejected on load.
const rootState = 1

// indexIterator walks successive prefix states for one key.
// Next returns 0 as soon as the prefix is not present in the index.
type indexIterator interface {
	Next(symbol uint16) int
}

type indexStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s indexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// syllableIndex is the internal backend abstraction for syllable keys.
//
// Keys are inserted while the index is mutable. Freeze may renumber states,
// so positions returned by Insert have to be passed through ResolvePosition
// afterwards. Find and Iterator are valid on frozen indexes only.
type syllableIndex interface {
	EncodeKey(s string) ([]uint16, bool)
	Insert(key []uint16) int
	ResolvePosition(pos int) int
	Freeze()
	Find(key []uint16) int
	Iterator() indexIterator
	Stats() indexStats
	fmt.Stringer
}

func newSyllableIndex(backend Backend) (syllableIndex, error) {
	switch backend {
	case BackendDAT, "":
		return newDATIndex(), nil
	case BackendTrie:
		return newTrieIndex(), nil
	}
	return nil, fmt.Errorf("unknown syllable index backend %q", backend)
}

// ParseBackend converts a configuration value into a Backend.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendDAT, BackendTrie:
		return b, nil
	case "":
		return BackendDAT, nil
	}
	return "", fmt.Errorf("unknown syllable index backend %q", s)
}
