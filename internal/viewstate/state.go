// Package viewstate holds the single mutable slot behind each table view.
package viewstate

type Phase int

const (
	Loading Phase = iota
	Populated
	Failed
)

func (p Phase) String() string {
	switch p {
	case Loading:
		return "loading"
	case Populated:
		return "populated"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// State is the current record list of one view instance. It starts empty and
// is only ever replaced wholesale. Each activation opens a generation; results
// tagged with an older generation are ignored.
//
// State is owned by the UI goroutine and is not safe for concurrent use.
type State[R any] struct {
	records []R
	phase   Phase
	err     error
	gen     uint64
}

func New[R any]() *State[R] {
	return &State[R]{records: []R{}}
}

// Begin starts a new generation and returns its token. Held records are kept.
func (s *State[R]) Begin() uint64 {
	s.gen++
	s.phase = Loading
	s.err = nil
	return s.gen
}

// Reset empties the held records. The generation counter keeps counting so
// results issued before the reset stay stale.
func (s *State[R]) Reset() {
	s.records = []R{}
	s.phase = Loading
	s.err = nil
}

// Generation returns the token of the current generation.
func (s *State[R]) Generation() uint64 {
	return s.gen
}

// Replace swaps in recs if gen is current. A nil slice is stored as empty.
func (s *State[R]) Replace(gen uint64, recs []R) bool {
	if gen != s.gen {
		return false
	}
	if recs == nil {
		recs = []R{}
	}
	s.records = recs
	s.phase = Populated
	s.err = nil
	return true
}

// Fail records err for gen. The held records are left untouched.
func (s *State[R]) Fail(gen uint64, err error) bool {
	if gen != s.gen {
		return false
	}
	s.phase = Failed
	s.err = err
	return true
}

func (s *State[R]) Records() []R { return s.records }
func (s *State[R]) Phase() Phase { return s.phase }
func (s *State[R]) Err() error   { return s.err }
func (s *State[R]) Len() int     { return len(s.records) }
