package dictfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	simpleinput "github.com/kililixi/SimpleInput"
	"github.com/kililixi/SimpleInput/internal/config"
	"github.com/kililixi/SimpleInput/notone"
	"github.com/kililixi/SimpleInput/withtone"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'simpleinput.dictfile'
func tracer() tracing.Trace {
	return tracing.Select("simpleinput.dictfile")
}

// Sources are the table files a dictionary is built from. Either may be nil.
type Sources struct {
	NoTone   io.Reader // syllable => characters, ordered by frequency
	WithTone io.Reader // character => tone-marked readings
}

// LoadDictionary loads a dictionary from the untoned and the tone-marked
// pinyin tables.
//
// Please refer to
//
//	https://github.com/sxei/pinyinjs/tree/master/dict
//
// for the pinyin_dict_notone.js and pinyin_dict_withtone.js tables.
//
// The untoned table is preferred for syllable lookup, as it leaves out rare
// characters and lists candidates by frequency. Without it, syllables are
// derived from the tone-marked table. If the tone-marked table is given, it
// also provides the pronunciations of characters.
//
// Example usage:
//
//	nt, _ := os.Open("path/to/pinyin_dict_notone.js")
//	defer nt.Close()
//
//	dict, err := dictfile.LoadDictionary("pinyin", dictfile.Sources{NoTone: nt})
//
// If no table is given, an error wrapping simpleinput.ErrNoSyllableTable is
// returned.
func LoadDictionary(name string, src Sources, opts ...simpleinput.Option) (*simpleinput.Dictionary, error) {
	switch {
	case src.NoTone != nil && src.WithTone != nil:
		dict, err := notone.LoadDictionary(name, src.NoTone, opts...)
		if err != nil {
			return nil, err
		}
		err = dict.LoadPronunciations(withtone.NewReader(src.WithTone))
		return dict, err
	case src.NoTone != nil:
		return notone.LoadDictionary(name, src.NoTone, opts...)
	case src.WithTone != nil:
		tracer().Infof("no untoned table for %s, deriving syllables from tone-marked table", name)
		return withtone.LoadDictionary(name, src.WithTone, opts...)
	}
	tracer().Errorf("dictionary %s has no tables", name)
	return nil, fmt.Errorf("dictionary %q: %w", name, simpleinput.ErrNoSyllableTable)
}

// Open loads a dictionary from the table files named in cfg, using the
// configured index backend.
func Open(cfg config.Dictionary) (*simpleinput.Dictionary, error) {
	backend, err := simpleinput.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, err
	}
	var src Sources
	if src.NoTone, err = readFile(cfg.NoTone); err != nil {
		return nil, err
	}
	if src.WithTone, err = readFile(cfg.WithTone); err != nil {
		return nil, err
	}
	name := cfg.NoTone
	if name == "" {
		name = cfg.WithTone
	}
	return LoadDictionary(name, src, simpleinput.WithBackend(backend))
}

// readFile returns the content of path, or nil if path is empty.
func readFile(path string) (io.Reader, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pinyin table: %w", err)
	}
	return bytes.NewReader(data), nil
}
