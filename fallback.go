package simpleinput

// placeholderI is the fallback for letter i. No syllable consists of a bare
// "i" and none starts with it, so the letter stands for itself.
var placeholderI = []rune{'i'}

// expandFallback derives a candidate list for every letter a–z which has no
// entry of its own: the list of the first syllable in source order starting
// with that letter. E.g., without an entry for "b", "b" falls back to the
// candidates of "ba" if that is the first b-syllable of the source.
//
// Exact single-letter entries take precedence at lookup time; the fallback
// table is only consulted when the exact lookup misses.
func expandFallback(keys []string, entries map[string][]rune) (fallback [26][]rune) {
	for c := byte('a'); c <= 'z'; c++ {
		if c == 'i' {
			fallback[c-'a'] = placeholderI
			continue
		}
		if _, ok := entries[string(c)]; ok {
			continue
		}
		for _, k := range keys {
			if k[0] == c {
				fallback[c-'a'] = entries[k]
				break
			}
		}
		if fallback[c-'a'] == nil {
			tracer().Debugf("no fallback for letter %q", c)
		}
	}
	return
}
