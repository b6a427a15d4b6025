package simpleinput

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewSessionRequiresDictionary(t *testing.T) {
	if _, err := NewSession(nil); !errors.Is(err, ErrNoSyllableTable) {
		t.Fatalf("expected ErrNoSyllableTable, got %v", err)
	}
	if _, err := NewSession(&Dictionary{}); !errors.Is(err, ErrNoSyllableTable) {
		t.Fatalf("expected ErrNoSyllableTable for unloaded dictionary, got %v", err)
	}
}

func TestSessionSingleLetter(t *testing.T) {
	for _, backend := range backends {
		s := mustNewSession(t, backend)
		snap := s.HandleKey('a')
		want := &Snapshot{
			PageCurrent: 1,
			TotalPages:  1,
			DisplayText: "a",
			Candidates:  []string{"阿", "啊", "呵", "腌", "嗄", "吖", "锕"},
		}
		if !reflect.DeepEqual(snap, want) {
			t.Fatalf("%s: got %+v, want %+v", backend, snap, want)
		}
		if s.State() != AwaitingSelection {
			t.Fatalf("%s: expected awaiting-selection, got %s", backend, s.State())
		}
	}
}

func TestSessionTwoSyllables(t *testing.T) {
	for _, backend := range backends {
		s := mustNewSession(t, backend)
		snap := typeKeys(s, "zhongguo")
		if snap.DisplayText != "zhong'guo" || snap.Finished {
			t.Fatalf("%s: unexpected pre-edit %+v", backend, snap)
		}
		if snap.Candidates[0] != "中" || snap.TotalPages != 2 || !snap.HasNext {
			t.Fatalf("%s: unexpected candidates %+v", backend, snap)
		}
		snap = s.HandleKey(KeySpace)
		if snap.Finished || snap.DisplayText != "中guo" || snap.Candidates[0] != "国" {
			t.Fatalf("%s: after first selection got %+v", backend, snap)
		}
		if s.Committed() != "中" || s.Pending() != "guo" {
			t.Fatalf("%s: committed=%q pending=%q", backend, s.Committed(), s.Pending())
		}
		snap = s.HandleKey('1')
		if !snap.Finished || snap.DisplayText != "中国" {
			t.Fatalf("%s: after second selection got %+v", backend, snap)
		}
		if s.State() != Idle || s.Committed() != "" || s.Pending() != "" {
			t.Fatalf("%s: session not reset after finishing", backend)
		}
	}
}

func TestSessionIncrementalBoundary(t *testing.T) {
	s := mustNewSession(t, BackendDAT)
	steps := []struct {
		key  rune
		want string
	}{
		{'z', "z"}, {'h', "z'h"}, {'o', "z'ho"}, {'n', "z'hon"}, {'g', "zhong"},
		{'g', "zhong'g"}, {'u', "zhong'gu"}, {'o', "zhong'guo"},
	}
	for _, step := range steps {
		snap := s.HandleKey(int(step.key))
		if snap.DisplayText != step.want {
			t.Fatalf("after %q: display %q, want %q", step.key, snap.DisplayText, step.want)
		}
	}
}

func TestSessionUnmatchedLetter(t *testing.T) {
	s := mustNewSession(t, BackendDAT)
	snap := s.HandleKey('v')
	if snap.Finished || len(snap.Candidates) != 0 || snap.TotalPages != 0 || snap.PageCurrent != 1 {
		t.Fatalf("expected empty candidates for v, got %+v", snap)
	}
	if s.Pending() != "" {
		t.Fatalf("unmatched input should be dropped, pending is %q", s.Pending())
	}
}

func TestSessionBackspaceFinishes(t *testing.T) {
	s := mustNewSession(t, BackendDAT)
	typeKeys(s, "nih")
	if s.Pending() != "ni'h" {
		t.Fatalf("expected ni'h, got %q", s.Pending())
	}
	snap := s.HandleKey('1')
	if snap.Finished || s.Committed() != "你" || s.Pending() != "h" {
		t.Fatalf("unexpected state after selection: %+v", snap)
	}
	snap = s.HandleKey(KeyBackspace)
	want := &Snapshot{
		Finished:    true,
		PageCurrent: 1,
		TotalPages:  0,
		DisplayText: "你",
		Candidates:  []string{},
	}
	if !reflect.DeepEqual(snap, want) {
		t.Fatalf("got %+v, want %+v", snap, want)
	}
	if s.State() != Idle || s.Pending() != "" || s.Committed() != "" {
		t.Fatalf("session not reset: pending=%q committed=%q", s.Pending(), s.Committed())
	}
}

func TestSessionBackspaceEdits(t *testing.T) {
	s := mustNewSession(t, BackendTrie)
	typeKeys(s, "zhongg")
	snap := s.HandleKey(KeyBackspace)
	if snap.Finished || snap.DisplayText != "zhong" || snap.Candidates[0] != "中" {
		t.Fatalf("unexpected snapshot after backspace: %+v", snap)
	}
	typeKeys(s, "gu")
	s.HandleKey(KeyBackspace)
	if s.Pending() != "zhong'g" {
		t.Fatalf("expected zhong'g, got %q", s.Pending())
	}
}

func TestSessionDanglingFinal(t *testing.T) {
	for _, backend := range backends {
		for _, input := range []string{"niv", "niu"} {
			s := mustNewSession(t, backend)
			typeKeys(s, input)
			snap := s.HandleKey(KeySpace)
			if !snap.Finished || snap.DisplayText != "你" {
				t.Fatalf("%s/%s: selection before a dangling final should finish, got %+v", backend, input, snap)
			}
			if s.State() != Idle {
				t.Fatalf("%s/%s: expected idle session, got %s", backend, input, s.State())
			}
		}
	}
}

func TestSessionPaging(t *testing.T) {
	s := mustNewSession(t, BackendDAT)
	snap := typeKeys(s, "ni")
	if snap.TotalPages != 3 || snap.HasPrev || !snap.HasNext {
		t.Fatalf("unexpected first page %+v", snap)
	}
	if snap = s.HandleKey(KeyPageUp); snap.PageCurrent != 1 || snap.Finished {
		t.Fatalf("page up on first page should not move, got %+v", snap)
	}
	snap = s.HandleKey(KeyPageDown)
	if snap.PageCurrent != 2 || !snap.HasPrev || !snap.HasNext {
		t.Fatalf("unexpected second page %+v", snap)
	}
	if strings.Join(snap.Candidates, "") != "腻妮霓昵溺旎睨鲵" {
		t.Fatalf("unexpected second page candidates %v", snap.Candidates)
	}
	last := s.HandleKey(KeyPageDown)
	if last.PageCurrent != 3 || last.HasNext || len(last.Candidates) != 4 {
		t.Fatalf("unexpected last page %+v", last)
	}
	again := s.HandleKey(KeyPageDown)
	if !reflect.DeepEqual(last, again) {
		t.Fatalf("page down on last page should be a no-op: %+v vs %+v", last, again)
	}
	if s.HandleKey('5') != nil {
		t.Fatalf("selecting beyond the last page entry should have no effect")
	}
	s.HandleKey(KeyPageUp)
	snap = s.HandleKey('2')
	if !snap.Finished || snap.DisplayText != "妮" {
		t.Fatalf("expected 妮 from page 2, got %+v", snap)
	}
}

func TestSessionInvalidSelection(t *testing.T) {
	s := mustNewSession(t, BackendDAT)
	typeKeys(s, "a")
	for _, key := range []int{'0', '8', '9'} {
		if snap := s.HandleKey(key); snap != nil {
			t.Fatalf("key %q should have no effect, got %+v", rune(key), snap)
		}
	}
	if s.Pending() != "a" {
		t.Fatalf("invalid selection changed the session: %q", s.Pending())
	}
	if snap := s.HandleKey('7'); !snap.Finished || snap.DisplayText != "锕" {
		t.Fatalf("expected 锕, got %+v", snap)
	}
}

func TestSessionPassthrough(t *testing.T) {
	s := mustNewSession(t, BackendDAT)
	tests := []struct {
		key  int
		want string
	}{
		{key: '1', want: "1"},
		{key: KeySpace, want: " "},
		{key: KeyPageDown, want: "\""},
		{key: ',', want: ","},
		{key: 'A', want: "A"},
	}
	for _, tt := range tests {
		snap := s.HandleKey(tt.key)
		if snap == nil || !snap.Finished || snap.DisplayText != tt.want || len(snap.Candidates) != 0 {
			t.Fatalf("idle key %d: got %+v, want passthrough %q", tt.key, snap, tt.want)
		}
	}
	typeKeys(s, "ni")
	snap := s.HandleKey('.')
	if !snap.Finished || snap.DisplayText != "." {
		t.Fatalf("expected passthrough of '.', got %+v", snap)
	}
	if snap.TotalPages != 3 || !snap.HasNext {
		t.Fatalf("passthrough should report the current pages, got %+v", snap)
	}
	if s.Pending() != "ni" || s.State() != AwaitingSelection {
		t.Fatalf("passthrough must not touch the session, pending=%q", s.Pending())
	}
}

func TestSessionReset(t *testing.T) {
	s := mustNewSession(t, BackendDAT)
	typeKeys(s, "nihao")
	s.HandleKey(KeySpace)
	s.HandleKey(KeyPageDown)
	s.Reset()
	if s.Pending() != "" || s.Committed() != "" || s.State() != Idle {
		t.Fatalf("reset left state behind: pending=%q committed=%q", s.Pending(), s.Committed())
	}
	snap := s.Snapshot()
	if snap.PageCurrent != 1 || snap.TotalPages != 0 || len(snap.Candidates) != 0 || snap.DisplayText != "" {
		t.Fatalf("unexpected snapshot after reset: %+v", snap)
	}
}

func TestSessionsShareDictionary(t *testing.T) {
	dict := mustLoadSample(t, BackendDAT)
	s1, _ := NewSession(dict)
	s2, _ := NewSession(dict)
	typeKeys(s1, "zhong")
	typeKeys(s2, "guo")
	if s1.Pending() != "zhong" || s2.Pending() != "guo" {
		t.Fatalf("sessions interfere: %q / %q", s1.Pending(), s2.Pending())
	}
	if snap := s1.HandleKey(KeySpace); snap.DisplayText != "中" {
		t.Fatalf("expected 中, got %+v", snap)
	}
	if snap := s2.HandleKey(KeySpace); snap.DisplayText != "国" {
		t.Fatalf("expected 国, got %+v", snap)
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || AwaitingSelection.String() != "awaiting-selection" {
		t.Fatalf("unexpected state names")
	}
	if State(7).String() != "State(7)" {
		t.Fatalf("unexpected name for unknown state: %s", State(7))
	}
}
