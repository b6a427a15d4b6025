package simpleinput

import (
	"fmt"
	"strings"
)

// PageSize is the number of candidates shown per page.
const PageSize = 8

// Key codes understood by Session.HandleKey besides 'a'–'z' and '0'–'9'.
const (
	KeyBackspace = 8
	KeySpace     = 32
	KeyPageUp    = 33
	KeyPageDown  = 34
)

// State is the coarse state of a session.
type State int

const (
	Idle              State = iota // nothing typed
	Composing                      // pinyin or committed characters, no candidates
	AwaitingSelection              // candidates to choose from
)

func (st State) String() string {
	switch st {
	case Idle:
		return "idle"
	case Composing:
		return "composing"
	case AwaitingSelection:
		return "awaiting-selection"
	}
	return fmt.Sprintf("State(%d)", int(st))
}

// Snapshot is what a session reports after a key. It is a projection of the
// session state and does not share memory with it.
//
// Finished snapshots carry text to be inserted into the document; all other
// snapshots carry the text to show as pre-edit.
type Snapshot struct {
	Finished    bool     `json:"finished" yaml:"finished"`
	PageCurrent int      `json:"page_current" yaml:"page_current"`
	TotalPages  int      `json:"total_pages" yaml:"total_pages"`
	HasNext     bool     `json:"has_next" yaml:"has_next"`
	HasPrev     bool     `json:"has_prev" yaml:"has_prev"`
	DisplayText string   `json:"display_text" yaml:"display_text"`
	Candidates  []string `json:"candidates" yaml:"candidates"`
}

// Session is one typing interaction: the pinyin typed so far, the characters
// already chosen and the current candidate page.
//
// A Session must not be used from more than one goroutine.
type Session struct {
	dict        *Dictionary
	pending     string // untoned pinyin, may contain one Boundary
	committed   string // characters chosen so far
	candidates  []rune // all candidates for the leading syllable of pending
	pageCurrent int
	pageCount   int
}

// NewSession creates a session on top of dict. It returns an error wrapping
// ErrNoSyllableTable if dict has not been loaded.
func NewSession(dict *Dictionary) (*Session, error) {
	if dict == nil || dict.index == nil {
		return nil, fmt.Errorf("new session: %w", ErrNoSyllableTable)
	}
	s := &Session{dict: dict}
	s.Reset()
	return s, nil
}

// Reset drops all pending input and committed characters.
func (s *Session) Reset() {
	s.pending = ""
	s.committed = ""
	s.candidates = nil
	s.pageCurrent = 1
	s.pageCount = 0
}

// Pending returns the pinyin typed since the last selection, including a
// boundary marker if the leading syllable is complete.
func (s *Session) Pending() string { return s.pending }

// Committed returns the characters chosen so far in this session.
func (s *Session) Committed() string { return s.committed }

// State reports the coarse session state.
func (s *Session) State() State {
	switch {
	case len(s.candidates) > 0:
		return AwaitingSelection
	case s.pending != "" || s.committed != "":
		return Composing
	}
	return Idle
}

// Snapshot returns the current pre-edit view without handling a key.
func (s *Session) Snapshot() *Snapshot {
	return s.render()
}

// HandleKey processes one key code and reports the outcome. A nil result
// means the key had no effect (selection of a non-existent candidate).
//
//   - 'a'–'z' extend the pending pinyin
//   - KeyBackspace deletes the last pending letter, finishing the session
//     when nothing is left
//   - '1'–'9' choose from the current page, KeySpace chooses the first
//     candidate
//   - KeyPageUp/KeyPageDown move between candidate pages
//
// Digits, space and page keys are only taken while pinyin is pending. Any
// other key is passed through: the result is finished and carries the key as
// text, and the session is left untouched.
func (s *Session) HandleKey(code int) *Snapshot {
	tracer().Debugf("key %d, pending=%q committed=%q", code, s.pending, s.committed)
	switch {
	case code >= 'a' && code <= 'z':
		return s.addLetter(byte(code))
	case code == KeyBackspace:
		return s.deleteLetter()
	case s.pending == "":
		return s.passthrough(code)
	case code >= '0' && code <= '9':
		return s.selectCandidate(code - '0')
	case code == KeySpace:
		return s.selectCandidate(1)
	case code == KeyPageUp:
		if s.pageCount > 0 && s.pageCurrent > 1 {
			s.pageCurrent--
		}
		return s.render()
	case code == KeyPageDown:
		if s.pageCurrent < s.pageCount {
			s.pageCurrent++
		}
		return s.render()
	}
	return s.passthrough(code)
}

func (s *Session) addLetter(c byte) *Snapshot {
	s.pending += string(c)
	return s.refresh()
}

func (s *Session) deleteLetter() *Snapshot {
	if len(s.pending) <= 1 {
		return s.finish()
	}
	s.pending = s.pending[:len(s.pending)-1]
	return s.refresh()
}

// selectCandidate chooses entry n (1-based) of the current page.
func (s *Session) selectCandidate(n int) *Snapshot {
	page := Paginate(s.candidates, PageSize, s.pageCurrent)
	if n < 1 || n > len(page.Items) {
		tracer().Debugf("no candidate %d on page %d", n, s.pageCurrent)
		return nil
	}
	s.committed += string(page.Items[n-1])
	i := strings.IndexByte(s.pending, Boundary)
	if i <= 0 {
		return s.finish() // the whole pending pinyin has been consumed
	}
	s.pending = s.pending[i+1:]
	if s.pending == "u" || s.pending == "v" {
		return s.finish() // dangling finals have no characters of their own
	}
	return s.refresh()
}

// refresh segments the pending pinyin anew and starts over at page 1.
func (s *Session) refresh() *Snapshot {
	pinyin := strings.ReplaceAll(s.pending, string(Boundary), "")
	s.candidates, s.pending = s.dict.Segment(pinyin)
	s.pageCurrent = 1
	s.pageCount = Paginate(s.candidates, PageSize, 1).PageCount
	return s.render()
}

func (s *Session) render() *Snapshot {
	assert(s.pageCurrent >= 1, "page number below 1")
	page := Paginate(s.candidates, PageSize, s.pageCurrent)
	visible := make([]string, len(page.Items))
	for i, r := range page.Items {
		visible[i] = string(r)
	}
	return &Snapshot{
		PageCurrent: s.pageCurrent,
		TotalPages:  s.pageCount,
		HasNext:     page.HasNext,
		HasPrev:     page.HasPrev,
		DisplayText: s.committed + s.pending,
		Candidates:  visible,
	}
}

// finish ends the session, returning the committed characters as finished
// text.
func (s *Session) finish() *Snapshot {
	text := s.committed
	s.Reset()
	snap := s.render()
	snap.Finished = true
	snap.DisplayText = text
	return snap
}

func (s *Session) passthrough(code int) *Snapshot {
	return &Snapshot{
		Finished:    true,
		PageCurrent: s.pageCurrent,
		TotalPages:  s.pageCount,
		HasNext:     s.pageCurrent < s.pageCount,
		HasPrev:     s.pageCurrent > 1,
		DisplayText: string(rune(code)),
		Candidates:  []string{},
	}
}
