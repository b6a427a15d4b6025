package simpleinput

// Boundary separates a finished syllable from the letters typed after it,
// e.g. "zhong'guo".
const Boundary = '\''

// maxLookahead is the number of letters a matched prefix may be extended by
// to find a longer syllable. The longest syllables have six letters
// ("zhuang", "shuang"), so five more letters reach every syllable which
// starts with a single-letter match.
const maxLookahead = 5

// Segment finds the leading syllable of an untoned pinyin string.
//
// If the whole string is a syllable (or a single letter with a fallback),
// its candidates are returned together with the unchanged input. Otherwise
// the input is scanned for the shortest prefix which is a syllable and
// cannot be extended to another syllable within maxLookahead letters. Its
// candidates are returned with a Boundary inserted after it:
//
//	"zhongguo" => [中 种 重 …], "zhong'guo"
//
// If no prefix matches, Segment returns (nil, "").
func (dict *Dictionary) Segment(pinyin string) ([]rune, string) {
	if dict == nil || dict.index == nil || pinyin == "" {
		return nil, ""
	}
	if candidates, ok := dict.Lookup(pinyin); ok {
		return candidates, pinyin
	}
	matches := dict.prefixMatches(pinyin)
	n := len(pinyin)
	for p := 1; p <= n; p++ {
		if matches[p] == nil {
			continue
		}
		if !extendable(matches, p, n) {
			return matches[p], pinyin[:p] + string(Boundary) + pinyin[p:]
		}
	}
	return nil, ""
}

// extendable reports whether a prefix of length p can be extended by up to
// maxLookahead letters to another matching prefix.
func extendable(matches [][]rune, p, n int) bool {
	for j := 1; j <= maxLookahead && p+j <= n; j++ {
		if matches[p+j] != nil {
			return true
		}
	}
	return false
}

// prefixMatches walks the syllable index once along pinyin and returns the
// candidates for every prefix length which is a syllable. matches[p] belongs
// to pinyin[:p]; matches[0] is always nil. A single leading letter without an
// entry of its own uses the letter fallback.
func (dict *Dictionary) prefixMatches(pinyin string) [][]rune {
	matches := make([][]rune, len(pinyin)+1)
	letters := 0
	for letters < len(pinyin) && pinyin[letters] >= 'a' && pinyin[letters] <= 'z' {
		letters++ // syllables are made of a–z only
	}
	if key, ok := dict.index.EncodeKey(pinyin[:letters]); ok {
		it := dict.index.Iterator()
		for i, c := range key {
			state := it.Next(c)
			if state == 0 {
				break
			}
			if candidates, found := dict.candidates.Candidates(state); found {
				matches[i+1] = candidates
			}
		}
	}
	if matches[1] == nil {
		if f, ok := dict.letterFallback(pinyin[0]); ok {
			matches[1] = f
		}
	}
	return matches
}
