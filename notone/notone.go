package notone

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	simpleinput "github.com/kililixi/SimpleInput"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("simpleinput.notone")
}

// Reader streams syllable entries from an untoned pinyin table.
type Reader struct {
	source     *bufio.Reader
	dec        *json.Decoder
	identifier string
	err        error // sticky; io.EOF once the table is exhausted
}

// LoadDictionary parses an untoned pinyin table and returns a ready-to-use
// dictionary.
//
// The table is a JSON object from syllable to characters, most frequent
// first:
//
//	{"a":"阿啊呵腌嗄吖锕","ai":"爱埃挨哎唉哀皑癌蔼矮艾碍隘", …}
//
// It may be wrapped in a JavaScript assignment, as it is shipped for
// browsers:
//
//	var pinyin_dict_notone = {"a":"阿啊呵", …};
//
// The name of the assigned variable is reported by Reader.Identifier.
// Entries are loaded in source order.
func LoadDictionary(name string, reader io.Reader, opts ...simpleinput.Option) (*simpleinput.Dictionary, error) {
	return simpleinput.LoadSyllables(name, NewReader(reader), opts...)
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		source: bufio.NewReader(reader),
	}
}

// Identifier returns the variable name of a JavaScript-wrapped table. It is
// empty for plain JSON and before the first call to Next.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next entry as (syllable, hanzi).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	if r.err != nil {
		return "", "", r.err
	}
	if r.dec == nil {
		if r.err = r.start(); r.err != nil {
			return "", "", r.err
		}
	}
	if !r.dec.More() {
		if _, err := r.dec.Token(); err != nil { // closing brace
			r.err = fmt.Errorf("notone: %w", err)
			return "", "", r.err
		}
		r.err = io.EOF
		return "", "", io.EOF
	}
	tok, err := r.dec.Token()
	if err != nil {
		r.err = fmt.Errorf("notone: %w", err)
		return "", "", r.err
	}
	syllable, ok := tok.(string)
	if !ok {
		r.err = fmt.Errorf("notone: unexpected token %v", tok)
		return "", "", r.err
	}
	var hanzi string
	if err = r.dec.Decode(&hanzi); err != nil {
		r.err = fmt.Errorf("notone: entry %q: %w", syllable, err)
		return "", "", r.err
	}
	return syllable, hanzi, nil
}

// start skips an optional assignment prefix and positions the decoder inside
// the table object.
func (r *Reader) start() error {
	prefix, err := r.source.ReadString('{')
	if errors.Is(err, io.EOF) {
		if strings.TrimSpace(prefix) == "" {
			tracer().Debugf("empty pinyin table")
			return io.EOF
		}
		return fmt.Errorf("notone: no table object found")
	} else if err != nil {
		return fmt.Errorf("notone: %w", err)
	}
	r.identifier = assignedName(prefix[:len(prefix)-1])
	if r.identifier != "" {
		tracer().Debugf("reading table %s", r.identifier)
	}
	r.dec = json.NewDecoder(io.MultiReader(strings.NewReader("{"), r.source))
	if _, err = r.dec.Token(); err != nil {
		return fmt.Errorf("notone: %w", err)
	}
	return nil
}

// assignedName extracts NAME from "var NAME =" or "window.NAME =".
func assignedName(prefix string) string {
	lhs, _, found := strings.Cut(prefix, "=")
	if !found {
		return ""
	}
	fields := strings.Fields(lhs)
	if len(fields) == 0 {
		return ""
	}
	name := fields[len(fields)-1]
	return strings.TrimPrefix(name, "window.")
}
