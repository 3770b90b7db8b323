package mask

// partial is one live branch of an expansion: the text produced so far
// and the state that produced it.
type partial struct {
	out string
	st  State
}

// Expand parses mask and returns every string it denotes, in canonical
// order. Two calls with the same mask yield identical sequences.
func Expand(mask string, opts Options) ([]string, error) {
	elems, err := Parse(mask, opts)
	if err != nil {
		return nil, err
	}
	return ExpandElements(elems), nil
}

// ExpandElements runs the expansion worklist over an already parsed
// element sequence, starting from an empty state.
func ExpandElements(elems []Element) []string {
	parts := expandSeq(elems, State{})
	outs := make([]string, len(parts))
	for i, part := range parts {
		outs[i] = part.out
	}
	return outs
}

// expandSeq threads the worklist through elems. Each element maps the
// current branches to the concatenation of their children, so output
// order is fixed by branch order and the ascending digit fan-out.
func expandSeq(elems []Element, st State) []partial {
	results := []partial{{st: st}}
	for _, el := range elems {
		var next []partial
		switch el := el.(type) {
		case Literal:
			for _, part := range results {
				next = append(next, partial{out: part.out + string(el.Ch), st: part.st})
			}
		case DigitSlot:
			for _, part := range results {
				for d := byte('0'); d <= '9'; d++ {
					next = append(next, partial{
						out: part.out + string(rune(d)),
						st:  part.st.withDigit(d),
					})
				}
			}
		case BackRef:
			for _, part := range results {
				st, d, ok := part.st.takeRef()
				if !ok {
					// No digit left to reference: the branch dies here.
					continue
				}
				next = append(next, partial{out: part.out + string(shiftSymbol(d)), st: st})
			}
		case Group:
			for _, part := range results {
				for _, sub := range expandSeq(el.Elems, part.st) {
					out := sub.out
					if el.Reverse {
						out = reverseRunes(out)
					}
					next = append(next, partial{out: part.out + out, st: sub.st})
				}
			}
		}
		results = next
	}
	return results
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
