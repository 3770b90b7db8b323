// Package morph emits uppercase-span variants of candidate lines,
// driven by a small rule language.
package morph

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Spec is one parsed capitalization rule: which words of a line to
// mutate, where the uppercase window is anchored, and the contiguous
// span lengths to try.
type Spec struct {
	Start   int  // first word, 1-based
	End     int  // last word, inclusive
	FromEnd bool // '$': positions count from the end of the word
	Pos     int  // window anchor within the word, 1-based
	MinSpan int
	MaxSpan int

	text string
}

// String returns the rule as written.
func (sp *Spec) String() string { return sp.text }

// ParseSpec parses the rule language
//
//	w<start>[-<end>]<dir><pos>{<min>-<max>}
//
// where start and end select 1-based word indices (end defaults to
// start), dir is '^' to anchor from the front of the word or '$' from
// the back, pos places the window, and min..max are the span lengths to
// uppercase. The whole string must match.
func ParseSpec(s string) (*Spec, error) {
	sc := specScanner{src: s}
	bad := func() (*Spec, error) {
		return nil, fmt.Errorf("invalid capitalization spec %q", s)
	}

	if !sc.eat('w') {
		return bad()
	}
	start, ok := sc.number()
	if !ok {
		return bad()
	}
	end := start
	if sc.eat('-') {
		if end, ok = sc.number(); !ok {
			return bad()
		}
	}
	fromEnd := false
	switch {
	case sc.eat('^'):
	case sc.eat('$'):
		fromEnd = true
	default:
		return bad()
	}
	pos, ok := sc.number()
	if !ok {
		return bad()
	}
	if !sc.eat('{') {
		return bad()
	}
	minSpan, ok := sc.number()
	if !ok {
		return bad()
	}
	if !sc.eat('-') {
		return bad()
	}
	maxSpan, ok := sc.number()
	if !ok {
		return bad()
	}
	if !sc.eat('}') || !sc.done() {
		return bad()
	}

	if minSpan < 1 || maxSpan < minSpan {
		return nil, fmt.Errorf("invalid span range %d-%d in spec %q", minSpan, maxSpan, s)
	}

	return &Spec{
		Start:   start,
		End:     end,
		FromEnd: fromEnd,
		Pos:     pos,
		MinSpan: minSpan,
		MaxSpan: maxSpan,
		text:    s,
	}, nil
}

// ParseSpecs parses every rule, failing on the first invalid one.
func ParseSpecs(args []string) ([]*Spec, error) {
	specs := make([]*Spec, 0, len(args))
	for _, arg := range args {
		sp, err := ParseSpec(arg)
		if err != nil {
			return nil, err
		}
		specs = append(specs, sp)
	}
	return specs, nil
}

// Apply returns every variant of line the rule produces, or an error
// when the word range or anchor position does not fit the line. Words
// are split on whitespace and variants rejoined with single spaces.
// Variant order is word index, then span length, then window offset,
// all ascending. A range with end before start selects no words and
// produces no variants.
func (sp *Spec) Apply(line string) ([]string, error) {
	words := strings.Fields(line)
	if sp.Start < 1 || sp.End > len(words) {
		return nil, fmt.Errorf("word range %d-%d out of bounds for line %q", sp.Start, sp.End, line)
	}

	upper := cases.Upper(language.Und)
	var variants []string
	for wi := sp.Start - 1; wi < sp.End; wi++ {
		runes := []rune(words[wi])
		if sp.Pos < 1 || sp.Pos > len(runes) {
			return nil, fmt.Errorf("position %d out of bounds for word %q in line %q", sp.Pos, words[wi], line)
		}

		// Positions from the back work on the reversed rune sequence;
		// the mutated word is flipped back afterwards.
		rep := runes
		if sp.FromEnd {
			rep = reversedRunes(runes)
		}

		anchor := sp.Pos - 1
		for span := sp.MinSpan; span <= sp.MaxSpan; span++ {
			for offset := 0; offset <= sp.MaxSpan-span; offset++ {
				start := anchor + offset
				end := start + span
				if end > len(rep) {
					continue
				}
				mutated := upperSpan(upper, rep, start, end)
				if sp.FromEnd {
					mutated = reversedRunes(mutated)
				}
				fields := make([]string, len(words))
				copy(fields, words)
				fields[wi] = string(mutated)
				variants = append(variants, strings.Join(fields, " "))
			}
		}
	}
	return variants, nil
}

// upperSpan uppercases rep[start:end] with full case mapping, so the
// result may gain runes (ß becomes SS).
func upperSpan(upper cases.Caser, rep []rune, start, end int) []rune {
	var b strings.Builder
	b.WriteString(string(rep[:start]))
	b.WriteString(upper.String(string(rep[start:end])))
	b.WriteString(string(rep[end:]))
	return []rune(b.String())
}

func reversedRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}

// specScanner is a byte cursor over one rule string.
type specScanner struct {
	src string
	pos int
}

func (sc *specScanner) eat(b byte) bool {
	if sc.pos < len(sc.src) && sc.src[sc.pos] == b {
		sc.pos++
		return true
	}
	return false
}

func (sc *specScanner) number() (int, bool) {
	start := sc.pos
	for sc.pos < len(sc.src) && sc.src[sc.pos] >= '0' && sc.src[sc.pos] <= '9' {
		sc.pos++
	}
	if sc.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(sc.src[start:sc.pos])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (sc *specScanner) done() bool {
	return sc.pos == len(sc.src)
}
