package page

import "fmt"

// State is the lifecycle of a page load.
type State int

const (
	StateLoading State = iota
	StateFound
	StateNotFound
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateFound:
		return "found"
	case StateNotFound:
		return "not_found"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transition is allowed from s.
func (s State) Terminal() bool {
	switch s {
	case StateFound, StateNotFound, StateError:
		return true
	default:
		return false
	}
}

// machine tracks one load. The only legal moves are loading -> terminal.
type machine struct {
	state State
}

func (m *machine) transition(to State) error {
	switch m.state {
	case StateLoading:
		if !to.Terminal() {
			return fmt.Errorf("invalid transition %s -> %s", m.state, to)
		}
		m.state = to
		return nil
	case StateFound, StateNotFound, StateError:
		return fmt.Errorf("invalid transition %s -> %s: state is terminal", m.state, to)
	default:
		return fmt.Errorf("unknown state %s", m.state)
	}
}

// mustTransition panics on an illegal move. Each load makes exactly one
// move, so a panic here is a programming error.
func (m *machine) mustTransition(to State) {
	if err := m.transition(to); err != nil {
		panic(err)
	}
}
