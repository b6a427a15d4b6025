package simpleinput

import (
	"fmt"
	"sort"

	"github.com/kililixi/SimpleInput/dat"
)

type datBuildNode struct {
	tmpID    int
	state    uint32
	children map[uint16]*datBuildNode
}

// datIndex collects syllables in a plain tree and compiles it into a
// double-array trie on Freeze. Temporary node IDs handed out by Insert are
// mapped to final DAT states through ResolvePosition.
type datIndex struct {
	frozen      bool
	root        *datBuildNode
	nodes       []*datBuildNode // by tmpID, until frozen
	nextDenseID uint16
	compiled    *dat.DAT
}

func newDATIndex() *datIndex {
	root := &datBuildNode{tmpID: rootState, children: make(map[uint16]*datBuildNode)}
	return &datIndex{
		root:  root,
		nodes: []*datBuildNode{nil, root},
		compiled: &dat.DAT{
			Root: rootState,
		},
	}
}

func (di *datIndex) EncodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, len(s))
	if di.frozen {
		for _, r := range s {
			key = append(key, di.compiled.Dense(r)) // 0 for unknown runes kills the walk
		}
		return key, true
	}
	for _, r := range s {
		dense := di.compiled.Dense(r)
		if dense == 0 {
			if di.nextDenseID == ^uint16(0) {
				return nil, false
			}
			di.nextDenseID++
			dense = di.nextDenseID
			di.compiled.Alphabet.Set(r, dense)
		}
		key = append(key, dense)
	}
	return key, true
}

func (di *datIndex) Insert(key []uint16) int {
	if di.frozen || len(key) == 0 {
		return 0
	}
	n := di.root
	for _, c := range key {
		if c == 0 {
			return 0
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{
				tmpID:    len(di.nodes),
				children: make(map[uint16]*datBuildNode),
			}
			di.nodes = append(di.nodes, child)
			n.children[c] = child
		}
		n = child
	}
	return n.tmpID
}

func (di *datIndex) ResolvePosition(pos int) int {
	if !di.frozen {
		return pos
	}
	if pos <= 0 || pos >= len(di.nodes) {
		return 0
	}
	return int(di.nodes[pos].state)
}

func (di *datIndex) Find(key []uint16) int {
	assert(di.frozen, "find on mutable DAT index")
	if len(key) == 0 {
		return 0
	}
	return int(di.compiled.Walk(key))
}

func (di *datIndex) Freeze() {
	if di.frozen {
		return
	}
	di.compiled.Sigma = di.nextDenseID
	di.compiled.Base = make([]int32, int(di.compiled.Root)+1)
	di.compiled.Check = make([]int32, int(di.compiled.Root)+1)
	di.root.state = di.compiled.Root
	queue := []*datBuildNode{di.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(di.compiled.Check, labels)
		ensureDATIndex(di.compiled, base+int(labels[len(labels)-1]))
		di.compiled.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			di.compiled.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	for _, n := range di.nodes[1:] {
		n.children = nil // only tmpID -> state is needed from here on
	}
	di.root = nil
	di.frozen = true
}

func (di *datIndex) Iterator() indexIterator {
	assert(di.frozen, "iterator on mutable DAT index")
	return &datIterator{
		d:     di.compiled,
		state: di.compiled.Root,
	}
}

type datIterator struct {
	d     *dat.DAT
	state uint32
	dead  bool
}

func (it *datIterator) Next(symbol uint16) int {
	if it.dead || symbol == 0 {
		it.dead = true
		return 0
	}
	next, ok := it.d.Transition(it.state, symbol)
	if !ok {
		it.dead = true
		return 0
	}
	it.state = next
	return int(next)
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findDATBase returns the first base at which every label lands on a free slot.
// Slot Root is occupied by the root itself.
func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == rootState || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

func (di *datIndex) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", di.compiled.NStates(), di.compiled.Sigma, di.frozen)
}

func (di *datIndex) Stats() indexStats {
	stats := indexStats{
		Backend:    string(BackendDAT),
		TotalSlots: di.compiled.NStates(),
		MaxStateID: int(di.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(di.compiled.Root)
	for i := range di.compiled.Check {
		if i == int(di.compiled.Root) || di.compiled.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}
