// Package permute turns a weighted wordlist into every ordered pair of
// distinct words, heaviest combination first.
package permute

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single wordlist line.
const maxLineBytes = 1 << 20

// entry is one wordlist row.
type entry struct {
	word   string
	weight float64
}

// pair is one ordered candidate pair with its sort keys.
type pair struct {
	total float64
	first float64
	w1    string
	w2    string
}

// Stage emits every ordered pair of distinct words. Distinctness is by
// word text, so equal words from different rows never pair with each
// other.
type Stage struct {
	lenient bool
}

// New returns a permute stage. Strict mode requires an integer weight on
// every line. In lenient mode weights may be floating point, and any
// missing or unparsable weight demotes the whole input to unweighted
// pairing in input order instead of failing the run.
func New(lenient bool) *Stage {
	return &Stage{lenient: lenient}
}

// Name identifies the stage in progress events.
func (s *Stage) Name() string { return "permute" }

// Run reads "word weight" lines from r and writes one "word1 word2" line
// per ordered pair to w. Weighted pairs are sorted descending by combined
// weight, then by first-word weight; full ties keep generation order.
func (s *Stage) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	entries, weighted, err := s.read(r)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	if !weighted {
		for _, e1 := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, e2 := range entries {
				if e1.word == e2.word {
					continue
				}
				fmt.Fprintf(out, "%s %s\n", e1.word, e2.word)
			}
		}
		return out.Flush()
	}

	var pairs []pair
	for _, e1 := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, e2 := range entries {
			if e1.word == e2.word {
				continue
			}
			pairs = append(pairs, pair{
				total: e1.weight + e2.weight,
				first: e1.weight,
				w1:    e1.word,
				w2:    e2.word,
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].total != pairs[j].total {
			return pairs[i].total > pairs[j].total
		}
		return pairs[i].first > pairs[j].first
	})

	for _, p := range pairs {
		fmt.Fprintf(out, "%s %s\n", p.w1, p.w2)
	}
	return out.Flush()
}

// read collects the wordlist. weighted reports whether every line carried
// a usable weight; strict mode never returns false, it errors instead.
// A multi-word row keeps everything before the weight as the word.
func (s *Stage) read(r io.Reader) (entries []entry, weighted bool, err error) {
	weighted = true
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineno := 0
	for sc.Scan() {
		lineno++
		parts := strings.Fields(sc.Text())
		if len(parts) == 0 {
			continue
		}
		if s.lenient && len(parts) < 2 {
			entries = append(entries, entry{word: parts[0]})
			weighted = false
			continue
		}
		raw := parts[len(parts)-1]
		word := strings.Join(parts[:len(parts)-1], " ")
		weight, perr := s.parseWeight(raw)
		if perr != nil {
			if !s.lenient {
				return nil, false, fmt.Errorf("line %d: invalid weight %q", lineno, raw)
			}
			entries = append(entries, entry{word: word})
			weighted = false
			continue
		}
		entries = append(entries, entry{word: word, weight: weight})
	}
	if err := sc.Err(); err != nil {
		return nil, false, fmt.Errorf("read wordlist: %w", err)
	}
	return entries, weighted, nil
}

func (s *Stage) parseWeight(raw string) (float64, error) {
	if s.lenient {
		return strconv.ParseFloat(raw, 64)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}
