package simpleinput

import "testing"

func TestSegment(t *testing.T) {
	tests := []struct {
		pinyin    string
		annotated string
		first     string // first candidate, "" for none
	}{
		{pinyin: "a", annotated: "a", first: "阿"},
		{pinyin: "xian", annotated: "xian", first: "现"},
		{pinyin: "b", annotated: "b", first: "把"},            // letter fallback
		{pinyin: "i", annotated: "i", first: "i"},             // placeholder
		{pinyin: "zhongguo", annotated: "zhong'guo", first: "中"},
		{pinyin: "zhongg", annotated: "zhong'g", first: "中"},
		{pinyin: "nihao", annotated: "ni'hao", first: "你"},
		{pinyin: "xia", annotated: "xi'a", first: "系"},
		{pinyin: "niv", annotated: "ni'v", first: "你"},
		{pinyin: "bq", annotated: "b'q", first: "把"},
		{pinyin: "zhuangx", annotated: "zhuang'x", first: "装"},
		// "zhuang" is out of reach of the lookahead from "z" in a
		// five letter input, so the fallback for "z" ends the segment
		{pinyin: "zhuan", annotated: "z'huan", first: "中"},
		{pinyin: "v", annotated: "", first: ""},
		{pinyin: "vx", annotated: "", first: ""},
		{pinyin: "q", annotated: "", first: ""},
		{pinyin: "", annotated: "", first: ""},
	}
	for _, backend := range backends {
		dict := mustLoadSample(t, backend)
		for _, tt := range tests {
			candidates, annotated := dict.Segment(tt.pinyin)
			if annotated != tt.annotated {
				t.Fatalf("%s: segment(%q) annotated %q, want %q", backend, tt.pinyin, annotated, tt.annotated)
			}
			first := ""
			if len(candidates) > 0 {
				first = string(candidates[0])
			}
			if first != tt.first {
				t.Fatalf("%s: segment(%q) first candidate %q, want %q", backend, tt.pinyin, first, tt.first)
			}
		}
	}
}

func TestSegmentReturnsStoredOrder(t *testing.T) {
	for _, backend := range backends {
		dict := mustLoadSample(t, backend)
		for _, e := range sampleEntries {
			candidates, annotated := dict.Segment(e[0])
			if annotated != e[0] {
				t.Fatalf("%s: syllable %q should not be split, got %q", backend, e[0], annotated)
			}
			if string(candidates) != e[1] {
				t.Fatalf("%s: candidates for %q: got %q, want %q", backend, e[0], string(candidates), e[1])
			}
		}
	}
}

func TestSegmentUnmatched(t *testing.T) {
	dict := mustLoadEntries(t, BackendDAT, [2]string{"ma", "妈"})
	for _, pinyin := range []string{"x", "xyz", "vvvvvvv", "qma"} {
		candidates, annotated := dict.Segment(pinyin)
		if candidates != nil || annotated != "" {
			t.Fatalf("segment(%q) should not match, got %q, %q", pinyin, string(candidates), annotated)
		}
	}
}

func TestSegmentBackendsAgree(t *testing.T) {
	datDict := mustLoadSample(t, BackendDAT)
	trieDict := mustLoadSample(t, BackendTrie)
	inputs := []string{
		"zhongguonihao", "anbai", "aiai", "xianxi", "zhuangzhong", "nvguo",
		"baibai", "haoa", "ganb", "zzzz", "nix", "an",
	}
	for _, pinyin := range inputs {
		c1, a1 := datDict.Segment(pinyin)
		c2, a2 := trieDict.Segment(pinyin)
		if a1 != a2 || string(c1) != string(c2) {
			t.Fatalf("backends disagree on %q: dat=(%q,%q) trie=(%q,%q)",
				pinyin, string(c1), a1, string(c2), a2)
		}
	}
}
