package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	simpleinput "github.com/kililixi/SimpleInput"
	"github.com/kililixi/SimpleInput/internal/config"
	"gopkg.in/yaml.v3"
)

// record is one printed step. A nil snapshot means the key had no effect.
type record struct {
	Key      string                `json:"key" yaml:"key"`
	Snapshot *simpleinput.Snapshot `json:"snapshot" yaml:"snapshot"`
}

type printer interface {
	Print(record) error
	Close() error
}

func newPrinter(format string, w io.Writer) (printer, error) {
	switch format {
	case config.FormatText, "":
		return textPrinter{w: w}, nil
	case config.FormatYAML:
		return yamlPrinter{enc: yaml.NewEncoder(w)}, nil
	case config.FormatJSON:
		return jsonPrinter{enc: json.NewEncoder(w)}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// textPrinter writes one line per step:
//
//	z         z'h  [1/2 >]  1:中 2:种 3:重 …
//	<space>   => 中
type textPrinter struct {
	w io.Writer
}

func (p textPrinter) Print(rec record) error {
	snap := rec.Snapshot
	var line string
	switch {
	case snap == nil:
		line = "(no effect)"
	case snap.Finished:
		line = "=> " + snap.DisplayText
	default:
		var b strings.Builder
		b.WriteString(snap.DisplayText)
		if snap.TotalPages > 0 {
			b.WriteString("  [")
			if snap.HasPrev {
				b.WriteString("< ")
			}
			fmt.Fprintf(&b, "%d/%d", snap.PageCurrent, snap.TotalPages)
			if snap.HasNext {
				b.WriteString(" >")
			}
			b.WriteString("] ")
			for i, c := range snap.Candidates {
				fmt.Fprintf(&b, " %d:%s", i+1, c)
			}
		}
		line = b.String()
	}
	_, err := fmt.Fprintf(p.w, "%-9s %s\n", rec.Key, line)
	return err
}

func (p textPrinter) Close() error { return nil }

type yamlPrinter struct {
	enc *yaml.Encoder
}

func (p yamlPrinter) Print(rec record) error { return p.enc.Encode(rec) }
func (p yamlPrinter) Close() error           { return p.enc.Close() }

type jsonPrinter struct {
	enc *json.Encoder
}

func (p jsonPrinter) Print(rec record) error { return p.enc.Encode(rec) }
func (p jsonPrinter) Close() error           { return nil }
