/*
Package simpleinput is a small pinyin input method engine.

It turns a stream of keystrokes into Chinese characters. Letters are
collected in a pending buffer of untoned pinyin, the buffer is segmented
against a syllable dictionary, and the characters matching the leading
syllable are offered as candidates, eight per page. Digits and space select a
candidate, backspace edits the buffer, page-up/page-down move through the
candidate pages.

The dictionary is compiled once from a streaming source (see packages notone,
withtone and dictfile for concrete formats) into a frozen prefix index. Two
index backends are available: a double-array trie (the default) and a
pointer-based trie. Candidate lists are stored separately in a compact
candidate store and referenced by index state IDs.

Segmentation is greedy: the longest prefix of the buffer which is a syllable
and cannot be extended to a longer syllable within a lookahead of five
letters ends the current segment. This is not a real decoder; users recover
from bad segmentations by typing further or deleting.

A Dictionary is immutable after loading and may be shared between any number
of sessions. A Session is not safe for concurrent use.

Typical usage:

	dict, err := notone.LoadDictionary("notone", f)
	if err != nil {
		...
	}
	session, _ := simpleinput.NewSession(dict)
	for _, key := range "nihao1" {
		snap := session.HandleKey(int(key))
		...
	}

----------------------------------------------------------------------

# BSD License

Copyright (c) the SimpleInput authors

All rights reserved.

License information is available in the LICENSE file.
*/
package simpleinput

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'simpleinput'
func tracer() tracing.Trace {
	return tracing.Select("simpleinput")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
