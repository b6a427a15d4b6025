package simpleinput

import (
	"fmt"
	"math"
)

const absentCandidates = math.MaxUint32
const initialCandidateStoreSlots = rootState + 1 // include slot 0 + root slot

// candidateStore keeps candidate lists directly indexed by index state.
// All lists share one rune slice; a state references its list by offset and
// length.
type candidateStore struct {
	offset []uint32 // will grow with demand
	length []uint16 // will grow with demand
	runes  []rune
}

func newCandidateStore(capacity int) *candidateStore {
	s := &candidateStore{
		offset: make([]uint32, initialCandidateStoreSlots),
		length: make([]uint16, initialCandidateStoreSlots),
		runes:  make([]rune, 0, capacity),
	}
	for i := range s.offset {
		s.offset[i] = absentCandidates
	}
	return s
}

func (s *candidateStore) ensure(pos int) {
	if pos < len(s.offset) {
		return
	}
	grow := pos + 1 - len(s.offset)
	old := len(s.offset)
	s.offset = append(s.offset, make([]uint32, grow)...)
	s.length = append(s.length, make([]uint16, grow)...)
	for i := old; i < len(s.offset); i++ {
		s.offset[i] = absentCandidates
	}
}

// Put stores a candidate list at index state pos. A state may be written
// more than once; the old list stays in the backing slice.
func (s *candidateStore) Put(pos int, candidates []rune) error {
	if pos <= rootState {
		return fmt.Errorf("invalid index state for candidates: %d", pos)
	}
	if len(candidates) == 0 {
		return fmt.Errorf("empty candidate list for index state %d", pos)
	}
	if len(candidates) > math.MaxUint16 {
		return fmt.Errorf("candidate list too long: %d", len(candidates))
	}
	if uint64(len(s.runes)+len(candidates)) >= absentCandidates {
		return fmt.Errorf("candidate store full")
	}
	s.ensure(pos)
	s.offset[pos] = uint32(len(s.runes))
	s.length[pos] = uint16(len(candidates))
	s.runes = append(s.runes, candidates...)
	return nil
}

// Candidates returns the candidate list for an index state.
// The returned slice has its capacity capped and must not be modified.
func (s *candidateStore) Candidates(pos int) ([]rune, bool) {
	if pos < 0 || pos >= len(s.offset) {
		return nil, false
	}
	off := s.offset[pos]
	if off == absentCandidates {
		return nil, false
	}
	end := int(off) + int(s.length[pos])
	return s.runes[off:end:end], true
}

// Size returns the number of stored candidate runes.
func (s *candidateStore) Size() int {
	return len(s.runes)
}
