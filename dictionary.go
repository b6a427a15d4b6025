package simpleinput

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"unicode"
)

// ErrNoSyllableTable is returned when a dictionary or session is set up
// without a usable pinyin-to-hanzi table. There is nothing to retry against;
// callers should treat it as a configuration error.
var ErrNoSyllableTable = errors.New("no pinyin to hanzi table")

// SyllableReader yields dictionary entries one-by-one: an untoned syllable
// and the characters for it, most frequent first. The same syllable may be
// reported more than once; its characters are appended in order.
// It should return io.EOF when the stream is exhausted.
type SyllableReader interface {
	Next() (syllable string, hanzi string, err error)
}

// PronunciationReader yields the tone-marked readings of one character at a
// time. It should return io.EOF when the stream is exhausted.
type PronunciationReader interface {
	Next() (hanzi rune, readings []string, err error)
}

// Dictionary is a loaded pinyin dictionary.
//
// A dictionary contains:
//   - syllable entries (compiled into a syllable index + candidate store)
//   - single-letter fallbacks derived from the syllable entries
//   - a reverse map from characters to their first syllable
//   - optional tone-marked pronunciations loaded through PronunciationReader.
//
// A dictionary is read-only once loading has finished and may be shared by
// any number of sessions.
type Dictionary struct {
	index          syllableIndex
	candidates     *candidateStore
	keys           []string          // syllables in source order
	fallback       [26][]rune        // by letter - 'a'
	pinyinOf       map[rune]string   // e.g., '中' => "zhong"
	pronunciations map[rune][]string // e.g., '中' => ["zhōng", "zhòng"]
	Identifier     string            // Identifies the dictionary
}

// Option configures LoadSyllables.
type Option func(*loadOptions)

type loadOptions struct {
	backend Backend
}

// WithBackend selects the syllable index implementation. The default is
// BackendDAT.
func WithBackend(backend Backend) Option {
	return func(o *loadOptions) {
		o.backend = backend
	}
}

// LoadSyllables compiles a dictionary from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package notone or withtone to parse concrete formats and feed this API.
//
// Syllables must consist of letters a–z; other entries are skipped. Characters
// repeated within one syllable are kept at their first position. If reader is
// nil or yields no usable entry, LoadSyllables returns an error wrapping
// ErrNoSyllableTable.
func LoadSyllables(name string, reader SyllableReader, opts ...Option) (dict *Dictionary, err error) {
	if reader == nil {
		return nil, fmt.Errorf("dictionary %q: %w", name, ErrNoSyllableTable)
	}
	options := loadOptions{backend: BackendDAT}
	for _, opt := range opts {
		opt(&options)
	}
	index, err := newSyllableIndex(options.backend)
	if err != nil {
		return nil, err
	}
	entries := make(map[string][]rune)
	var keys []string
	var syllable, hanzi string
	total := 0
	for {
		syllable, hanzi, err = reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dictionary %q: %w", name, err)
		}
		if !isSyllable(syllable) {
			tracer().Debugf("skipping invalid syllable %q", syllable)
			continue
		}
		candidates, seen := entries[syllable]
		candidates = appendUnique(candidates, hanzi)
		if len(candidates) == 0 {
			continue // no entry may be empty
		}
		if !seen {
			keys = append(keys, syllable)
		}
		total += len(candidates) - len(entries[syllable])
		entries[syllable] = candidates
	}
	if len(keys) == 0 {
		tracer().Errorf("dictionary %q has no syllable entries", name)
		return nil, fmt.Errorf("dictionary %q: %w", name, ErrNoSyllableTable)
	}
	dict = &Dictionary{
		index:      index,
		candidates: newCandidateStore(total),
		keys:       keys,
		pinyinOf:   make(map[rune]string, total),
		Identifier: fmt.Sprintf("pinyin: %s", name),
	}
	positions := make([]int, len(keys))
	for i, k := range keys {
		key, ok := index.EncodeKey(k)
		if !ok {
			return nil, fmt.Errorf("could not encode syllable %q", k)
		}
		if positions[i] = index.Insert(key); positions[i] == 0 {
			return nil, fmt.Errorf("could not allocate index position for syllable %q", k)
		}
	}
	index.Freeze()
	tracer().Debugf("compiled syllable index %s", index)
	for i, k := range keys {
		state := index.ResolvePosition(positions[i])
		if state == 0 {
			return nil, fmt.Errorf("could not resolve index position after freeze for syllable %q", k)
		}
		if err = dict.candidates.Put(state, entries[k]); err != nil {
			return nil, err
		}
		for _, r := range entries[k] {
			if _, ok := dict.pinyinOf[r]; !ok {
				dict.pinyinOf[r] = k // one pronunciation per character
			}
		}
	}
	dict.fallback = expandFallback(keys, entries)
	backend, used, slots, maxStateID, fill := dict.IndexStats()
	tracer().Infof("loaded %d syllables, %d candidates", len(keys), dict.candidates.Size())
	tracer().Infof("syllable index stats backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		backend, used, slots, fill, maxStateID)
	return dict, nil
}

// LoadPronunciations loads tone-marked readings from a streaming source.
// It has to be called before the dictionary is shared.
func (dict *Dictionary) LoadPronunciations(reader PronunciationReader) (err error) {
	if dict.pronunciations == nil {
		dict.pronunciations = make(map[rune][]string)
	}
	n := 0
	for {
		var hanzi rune
		var readings []string
		hanzi, readings, err = reader.Next()
		if err == io.EOF {
			tracer().Infof("loaded pronunciations for %d characters", n)
			return nil
		} else if err != nil {
			break
		}
		if len(readings) == 0 {
			continue
		}
		dict.pronunciations[hanzi] = slices.Clone(readings)
		n++
	}
	return err
}

// IndexStats reports density metrics for the underlying syllable index.
func (dict *Dictionary) IndexStats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if dict == nil || dict.index == nil {
		return "", 0, 0, 0, 0
	}
	stats := dict.index.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}

// Len returns the number of syllables in the dictionary.
func (dict *Dictionary) Len() int {
	if dict == nil {
		return 0
	}
	return len(dict.keys)
}

// Syllables returns all syllables in source order.
func (dict *Dictionary) Syllables() []string {
	if dict == nil {
		return nil
	}
	return slices.Clone(dict.keys)
}

// Lookup returns the candidates for syllable. Single letters without an
// entry of their own resolve to their fallback list.
//
// Example:
//
//	"a" => [阿 啊 呵 腌 嗄 吖 锕], true.
//
// The returned slice must not be modified.
func (dict *Dictionary) Lookup(syllable string) ([]rune, bool) {
	if dict == nil || dict.index == nil || syllable == "" {
		return nil, false
	}
	if candidates, ok := dict.exact(syllable); ok {
		return candidates, true
	}
	if len(syllable) == 1 {
		return dict.letterFallback(syllable[0])
	}
	return nil, false
}

func (dict *Dictionary) exact(syllable string) ([]rune, bool) {
	key, ok := dict.index.EncodeKey(syllable)
	if !ok {
		return nil, false
	}
	return dict.candidates.Candidates(dict.index.Find(key))
}

func (dict *Dictionary) letterFallback(c byte) ([]rune, bool) {
	if c < 'a' || c > 'z' {
		return nil, false
	}
	f := dict.fallback[c-'a']
	return f, len(f) > 0
}

// PinyinOf returns the untoned syllable for a character. Characters with
// more than one reading report the first syllable listing them.
func (dict *Dictionary) PinyinOf(hanzi rune) (string, bool) {
	if dict == nil {
		return "", false
	}
	syllable, ok := dict.pinyinOf[hanzi]
	return syllable, ok
}

// Pronunciations returns the tone-marked readings of a character, if
// pronunciations have been loaded.
func (dict *Dictionary) Pronunciations(hanzi rune) []string {
	if dict == nil {
		return nil
	}
	return slices.Clone(dict.pronunciations[hanzi])
}

func isSyllable(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// appendUnique appends the characters of hanzi not yet in candidates.
func appendUnique(candidates []rune, hanzi string) []rune {
	for _, r := range hanzi {
		if unicode.IsSpace(r) || slices.Contains(candidates, r) {
			continue
		}
		candidates = append(candidates, r)
	}
	return candidates
}
