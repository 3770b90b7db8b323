// Package fill crosses two-word lines with every separator its masks
// expand to.
package fill

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"wordforge/internal/mask"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Stage joins word pairs with cached separators. Separator lists are
// expanded once at construction and never change afterwards.
type Stage struct {
	masks []string
	seps  [][]string // aligned with masks, duplicates included
}

// New expands every mask up front, so a malformed mask or a blown
// branch budget fails the run before any input is read. The mask list
// keeps its order and duplicates; a repeated mask repeats its output.
func New(ctx context.Context, masks []string, limits mask.Limits) (*Stage, error) {
	cache, err := mask.BuildCache(ctx, masks, limits, 0)
	if err != nil {
		return nil, err
	}
	st := &Stage{
		masks: cache.Masks(),
		seps:  make([][]string, len(masks)),
	}
	for i, m := range st.masks {
		st.seps[i] = cache.Separators(m)
	}
	return st, nil
}

// Name identifies the stage in progress events.
func (s *Stage) Name() string { return "fill" }

// Run reads lines of exactly two whitespace-separated words from r and
// writes word1+separator+word2 for every separator of every mask to w.
// Lines with any other token count are skipped silently. Output order is
// input line outermost, mask order in the middle, separator order
// innermost.
func (s *Stage) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		parts := strings.Fields(sc.Text())
		if len(parts) != 2 {
			continue
		}
		for _, seps := range s.seps {
			for _, sep := range seps {
				out.WriteString(parts[0])
				out.WriteString(sep)
				out.WriteString(parts[1])
				out.WriteByte('\n')
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read word pairs: %w", err)
	}
	return out.Flush()
}
