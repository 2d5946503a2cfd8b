package dirglob

// state represents a possible state of a segment's state machine.
type state struct {
	// Out contains all possible transitions out of this state.
	Out []edge

	// Accept is whether the state is a fully-matched state.
	Accept bool
}

// stateSet represents a set of possible machine states.
type stateSet map[*state]struct{}

// edge represents a state transition inside the state machine.
type edge struct {
	// Expr tests a rune; if the expression passes, the edge can be followed.
	Expr expression

	// State is the machine state that the machine transitions into when Expr
	// is satisfied.
	State *state
}

// singleton wraps a single value in a set.
func singleton(s *state) stateSet { return stateSet{s: {}} }

// matchSegment progresses an initial set of states, one rune from the segment
// at a time.
func matchSegment(initial stateSet, segment string) stateSet {
	a := make(stateSet, len(initial))
	b := make(stateSet, len(initial))
	for n := range initial {
		a[n] = struct{}{}
	}

	for len(segment) > 0 {
		if len(a) == 0 {
			return nil
		}
		r, n := decodeChar(segment)
		segment = segment[n:]
		for n := range a {
			for _, e := range n.Out {
				if e.Expr.match(r) {
					b[e.State] = struct{}{}
				}
			}
		}
		a, b = b, a
		clear(b)
	}
	return a
}

// accepts reports whether the machine starting at initial accepts name.
func accepts(initial *state, name string) bool {
	for n := range matchSegment(singleton(initial), name) {
		if n.Accept {
			return true
		}
	}
	return false
}
