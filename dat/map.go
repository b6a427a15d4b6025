package dat

// Alphabet maps runes to dense alphabet IDs (uint16).
//
// Pinyin keys are almost always lowercase ASCII, so the first 128 code points
// live in a flat table; anything else falls back to a map which stays nil
// until needed.
type Alphabet struct {
	ASCII [128]uint16
	Other map[rune]uint16
}

// Dense returns the dense alphabet ID for r.
// Returns 0 if absent.
func (a *Alphabet) Dense(r rune) uint16 {
	if r >= 0 && r < 128 {
		return a.ASCII[r]
	}
	return a.Other[r]
}

// Set sets mapping r -> dense (dense may be 0 to clear).
func (a *Alphabet) Set(r rune, dense uint16) {
	if r >= 0 && r < 128 {
		a.ASCII[r] = dense
		return
	}
	if a.Other == nil {
		if dense == 0 {
			return
		}
		a.Other = make(map[rune]uint16)
	}
	if dense == 0 {
		delete(a.Other, r)
		return
	}
	a.Other[r] = dense
}

// Size returns the number of runes with a dense ID.
func (a *Alphabet) Size() int {
	n := len(a.Other)
	for _, d := range a.ASCII {
		if d != 0 {
			n++
		}
	}
	return n
}
