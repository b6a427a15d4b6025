package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	simpleinput "github.com/kililixi/SimpleInput"
)

// keyReset is not a key code; it asks the runner to reset the session.
const keyReset = -1

// step is one key of a script together with its spelling in the script.
type step struct {
	Code  int
	Token string
}

var namedKeys = map[string]int{
	"bs":    simpleinput.KeyBackspace,
	"space": simpleinput.KeySpace,
	"pgup":  simpleinput.KeyPageUp,
	"pgdn":  simpleinput.KeyPageDown,
	"lt":    '<',
	"reset": keyReset,
}

// parseScript splits a script line into key steps. Every rune is a key of
// its own, except for named keys in angle brackets:
//
//	"zhongguo<space>1"  => z h o n g g u o <space> 1
//	"nih1<bs>"          => n i h 1 <bs>
func parseScript(line string) ([]step, error) {
	var steps []step
	for len(line) > 0 {
		if line[0] != '<' {
			r, size := utf8.DecodeRuneInString(line)
			steps = append(steps, step{Code: int(r), Token: string(r)})
			line = line[size:]
			continue
		}
		end := strings.IndexByte(line, '>')
		if end < 0 {
			return nil, fmt.Errorf("unterminated key name in %q", line)
		}
		name := line[1:end]
		code, ok := namedKeys[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown key <%s>", name)
		}
		steps = append(steps, step{Code: code, Token: "<" + name + ">"})
		line = line[end+1:]
	}
	return steps, nil
}
