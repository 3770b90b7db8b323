package mask

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	markDigit   = "?d"
	markBackRef = "?^"
)

// DefaultMaxDepth bounds group nesting during parsing. Deeper masks are
// rejected as malformed instead of recursing without bound.
const DefaultMaxDepth = 64

// Options configures parsing.
type Options struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

// ParseError reports a malformed mask. Offset is the byte position of
// the construct that could not be parsed.
type ParseError struct {
	Mask   string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed mask %q at offset %d: %s", e.Mask, e.Offset, e.Msg)
}

// Parse converts a mask string into its element sequence.
//
// Markers are matched in priority order: "?d" becomes a DigitSlot, "?^"
// a BackRef, '{' opens a Group closed by the matching '}' (an optional
// '-' directly after the closer reverses the group), and anything else
// is a single Literal rune. A lone '?' and an unmatched '}' are
// literals; only an unmatched '{' fails.
func Parse(mask string, opts Options) ([]Element, error) {
	p := &parser{mask: mask, maxDepth: opts.maxDepth()}
	return p.sequence(0)
}

type parser struct {
	mask     string
	pos      int // byte offset into mask
	maxDepth int
}

// sequence parses elements until the end of input or, below a group,
// the enclosing '}'. The closer itself is left for group to consume.
func (p *parser) sequence(depth int) ([]Element, error) {
	var elems []Element
	for p.pos < len(p.mask) {
		rest := p.mask[p.pos:]
		switch {
		case strings.HasPrefix(rest, markDigit):
			elems = append(elems, DigitSlot{})
			p.pos += len(markDigit)
		case strings.HasPrefix(rest, markBackRef):
			elems = append(elems, BackRef{})
			p.pos += len(markBackRef)
		case rest[0] == '{':
			group, err := p.group(depth)
			if err != nil {
				return nil, err
			}
			elems = append(elems, group)
		case rest[0] == '}' && depth > 0:
			return elems, nil
		default:
			r, size := utf8.DecodeRuneInString(rest)
			elems = append(elems, Literal{Ch: r})
			p.pos += size
		}
	}
	return elems, nil
}

// group parses a brace-delimited group starting at the current '{'.
func (p *parser) group(depth int) (Element, error) {
	open := p.pos
	if depth+1 > p.maxDepth {
		return nil, &ParseError{
			Mask:   p.mask,
			Offset: open,
			Msg:    fmt.Sprintf("groups nested deeper than %d", p.maxDepth),
		}
	}
	p.pos++ // '{'
	elems, err := p.sequence(depth + 1)
	if err != nil {
		return nil, err
	}
	if p.pos >= len(p.mask) {
		return nil, &ParseError{Mask: p.mask, Offset: open, Msg: "unmatched '{'"}
	}
	p.pos++ // '}'
	group := Group{Elems: elems}
	if p.pos < len(p.mask) && p.mask[p.pos] == '-' {
		group.Reverse = true
		p.pos++
	}
	return group, nil
}
