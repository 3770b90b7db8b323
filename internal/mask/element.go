package mask

// Element is a single parsed unit of a mask. The set of implementations
// is closed: Literal, DigitSlot, BackRef and Group are the only variants.
type Element interface {
	isElement()
}

// Literal emits exactly one rune and leaves the branch state untouched.
type Literal struct {
	Ch rune
}

// DigitSlot branches ten ways, emitting '0' through '9' in ascending
// order and recording the chosen digit in the branch's history.
type DigitSlot struct{}

// BackRef emits the shift-row symbol of the earliest digit no previous
// back-reference has consumed. A branch with no such digit left is
// dropped without error.
type BackRef struct{}

// Group expands its children as one unit. When Reverse is set the text
// produced inside the group is reversed before it is appended; digit
// history and reference cursor changes made inside are kept either way.
type Group struct {
	Elems   []Element
	Reverse bool
}

func (Literal) isElement()   {}
func (DigitSlot) isElement() {}
func (BackRef) isElement()   {}
func (Group) isElement()     {}
