package withtone

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	simpleinput "github.com/kililixi/SimpleInput"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'simpleinput.withtone'
func tracer() tracing.Trace {
	return tracing.Select("simpleinput.withtone")
}

// FirstCodePoint is the character of the first table entry (一).
const FirstCodePoint = 0x4E00

// Reader streams the tone-marked readings of a pinyin table ordered by code
// point.
//
// The table is a comma-separated list. Entry i holds the readings of the
// character U+4E00+i, alternate readings separated by spaces:
//
//	yī,dīng zhēng,kǎo qiǎo yú,qī,shàng,xià,…
//
// Characters without a reading have an empty entry. The list may be wrapped
// in a JavaScript string assignment:
//
//	var pinyin_dict_withtone = "yī,dīng zhēng,…";
type Reader struct {
	scanner    *bufio.Scanner
	index      int // number of entries read
	identifier string
}

func NewReader(reader io.Reader) *Reader {
	scanner := bufio.NewScanner(reader)
	scanner.Split(scanEntries)
	return &Reader{
		scanner: scanner,
	}
}

// Identifier returns the variable name of a JavaScript-wrapped table.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next character with its readings.
// It returns io.EOF when exhausted. Characters without readings are skipped.
func (r *Reader) Next() (rune, []string, error) {
	for r.scanner.Scan() {
		entry := r.scanner.Text()
		if r.index == 0 {
			entry = r.skipAssignment(entry)
		}
		hanzi := rune(FirstCodePoint + r.index)
		r.index++
		readings := strings.Fields(strings.Trim(entry, " \t\r\n\"';"))
		if len(readings) == 0 {
			continue
		}
		return hanzi, readings, nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, nil, err
	}
	return 0, nil, io.EOF
}

func (r *Reader) skipAssignment(entry string) string {
	lhs, rhs, found := strings.Cut(entry, "=")
	if !found {
		return entry
	}
	if fields := strings.Fields(lhs); len(fields) > 0 {
		r.identifier = strings.TrimPrefix(fields[len(fields)-1], "window.")
		tracer().Debugf("reading table %s", r.identifier)
	}
	return rhs
}

// scanEntries is a split function for bufio.Scanner which splits at commas.
func scanEntries(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, ','); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// SyllableReader turns a tone-marked table into untoned dictionary entries,
// one per reading of each character.
type SyllableReader struct {
	entries  *Reader
	hanzi    rune
	readings []string
}

func NewSyllableReader(reader io.Reader) *SyllableReader {
	return &SyllableReader{entries: NewReader(reader)}
}

// Next returns the next (syllable, hanzi) pair, the syllable stripped of its
// tone. It returns io.EOF when exhausted.
func (r *SyllableReader) Next() (string, string, error) {
	for len(r.readings) == 0 {
		hanzi, readings, err := r.entries.Next()
		if err != nil {
			return "", "", err
		}
		r.hanzi, r.readings = hanzi, readings
	}
	syllable := StripTones(r.readings[0])
	r.readings = r.readings[1:]
	return syllable, string(r.hanzi), nil
}

// LoadDictionary loads a tone-marked pinyin table. Characters are listed per
// syllable in code point order, and the tone-marked readings are available
// through Dictionary.Pronunciations.
//
// This will load the table temporarily into memory.
func LoadDictionary(name string, reader io.Reader, opts ...simpleinput.Option) (*simpleinput.Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	dict, err := simpleinput.LoadSyllables(name, NewSyllableReader(bytes.NewReader(data)), opts...)
	if err != nil {
		return nil, err
	}
	err = dict.LoadPronunciations(NewReader(bytes.NewReader(data)))
	return dict, err
}
