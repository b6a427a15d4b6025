// Command simpleinput replays keystroke scripts against a pinyin input
// session and prints what the session reports after every key.
//
//	simpleinput -notone pinyin_dict_notone.js 'nihao<space>1' 'zhongguo<pgdn>3'
//
// Scripts are given as arguments or, one per line, on stdin. Letters, digits
// and punctuation stand for themselves; named keys are written <bs>, <space>,
// <pgup>, <pgdn>, <lt> and <reset>. Every script starts with a fresh session.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	simpleinput "github.com/kililixi/SimpleInput"
	"github.com/kililixi/SimpleInput/dictfile"
	"github.com/kililixi/SimpleInput/internal/config"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run returns the exit code: 0 on success, 1 for a bad script, 2 for bad
// flags and 3 for configuration or dictionary errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("simpleinput", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagConfig   string
		flagNoTone   string
		flagWithTone string
		flagBackend  string
		flagFormat   string
		flagTrace    string
	)
	fs.StringVar(&flagConfig, "config", "", "configuration file (TOML, YAML or JSON)")
	fs.StringVar(&flagNoTone, "notone", "", "untoned pinyin table (overrides config)")
	fs.StringVar(&flagWithTone, "withtone", "", "tone-marked pinyin table (overrides config)")
	fs.StringVar(&flagBackend, "backend", "", "syllable index backend: dat or trie (overrides config)")
	fs.StringVar(&flagFormat, "format", "", "output format: text, yaml or json (overrides config)")
	fs.StringVar(&flagTrace, "trace", "", "trace level: error, info or debug (overrides config)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadUnvalidated(flagConfig)
	if err != nil {
		fmt.Fprintf(stderr, "simpleinput: %v\n", err)
		return 3
	}
	overrideIfSet(&cfg.Dictionary.NoTone, flagNoTone)
	overrideIfSet(&cfg.Dictionary.WithTone, flagWithTone)
	overrideIfSet(&cfg.Dictionary.Backend, flagBackend)
	overrideIfSet(&cfg.Output.Format, flagFormat)
	overrideIfSet(&cfg.Trace.Level, flagTrace)
	if err = cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "simpleinput: %v\n", err)
		return 3
	}
	setupTracing(cfg.Trace.Level, stderr)

	dict, err := dictfile.Open(cfg.Dictionary)
	if err != nil {
		if errors.Is(err, simpleinput.ErrNoSyllableTable) {
			fmt.Fprintln(stderr, "simpleinput: no pinyin table, use -notone or -withtone")
		} else {
			fmt.Fprintf(stderr, "simpleinput: %v\n", err)
		}
		return 3
	}
	session, err := simpleinput.NewSession(dict)
	if err != nil {
		fmt.Fprintf(stderr, "simpleinput: %v\n", err)
		return 3
	}
	out, err := newPrinter(cfg.Output.Format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "simpleinput: %v\n", err)
		return 3
	}
	defer out.Close()

	scripts := fs.Args()
	if len(scripts) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			scripts = append(scripts, scanner.Text())
		}
		if err = scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "simpleinput: %v\n", err)
			return 1
		}
	}
	for _, script := range scripts {
		if err = replay(session, script, out); err != nil {
			fmt.Fprintf(stderr, "simpleinput: %v\n", err)
			return 1
		}
	}
	return 0
}

// replay feeds one script to a fresh session.
func replay(session *simpleinput.Session, script string, out printer) error {
	steps, err := parseScript(script)
	if err != nil {
		return err
	}
	session.Reset()
	for _, st := range steps {
		if st.Code == keyReset {
			session.Reset()
			continue
		}
		snap := session.HandleKey(st.Code)
		if err = out.Print(record{Key: st.Token, Snapshot: snap}); err != nil {
			return err
		}
	}
	return nil
}

func overrideIfSet(dst *string, flagValue string) {
	if flagValue != "" {
		*dst = flagValue
	}
}

// setupTracing routes all tracers to w at the given level.
func setupTracing(level string, w io.Writer) {
	tracing.SetTraceSelector(&traceSelector{
		level:   traceLevel(level),
		out:     w,
		tracers: make(map[string]tracing.Trace),
	})
}

func traceLevel(level string) tracing.TraceLevel {
	switch strings.ToLower(level) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// traceSelector hands out one Go-logger tracer per key, all sharing the
// configured level and output.
type traceSelector struct {
	mu      sync.Mutex
	level   tracing.TraceLevel
	out     io.Writer
	tracers map[string]tracing.Trace
}

func (sel *traceSelector) Select(key string) tracing.Trace {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	t, ok := sel.tracers[key]
	if !ok {
		t = gologadapter.New()
		t.SetOutput(sel.out)
		t.SetTraceLevel(sel.level)
		sel.tracers[key] = t
	}
	return t
}
