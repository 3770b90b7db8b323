package mask

// State carries what one expansion branch knows: the digits it has
// produced so far and how many of them back-references have consumed.
// It is passed by value; branches never share mutable parts, because
// sibling branches stand for mutually exclusive digit choices.
type State struct {
	digits []byte // produced digit characters, append-only
	next   int    // index of the earliest unreferenced digit
}

// withDigit returns a copy of s with d appended to the digit history.
// The history is cloned so sibling branches cannot see each other's
// digits through a shared backing array.
func (s State) withDigit(d byte) State {
	digits := make([]byte, len(s.digits)+1)
	copy(digits, s.digits)
	digits[len(s.digits)] = d
	return State{digits: digits, next: s.next}
}

// takeRef consumes the earliest unreferenced digit. It returns the
// advanced state and the digit; ok is false when every produced digit
// has already been referenced. Advancing only moves the cursor, so the
// now read-only history can be shared.
func (s State) takeRef() (State, byte, bool) {
	if s.next >= len(s.digits) {
		return s, 0, false
	}
	d := s.digits[s.next]
	return State{digits: s.digits, next: s.next + 1}, d, true
}
