package morph

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// maxLineBytes bounds a single candidate line.
const maxLineBytes = 1 << 20

// Stage applies capitalization rules to every input line.
type Stage struct {
	specs []*Spec
	log   *zap.Logger
}

// New returns a morph stage over the given rules. A line a rule cannot
// be applied to is logged and skipped for that rule only; other rules
// still see the line.
func New(specs []*Spec, log *zap.Logger) *Stage {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stage{specs: specs, log: log}
}

// Name identifies the stage in progress events.
func (s *Stage) Name() string { return "morph" }

// Run reads candidate lines from r and writes every variant to w, rules
// applied in the order given.
func (s *Stage) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		for _, sp := range s.specs {
			variants, err := sp.Apply(line)
			if err != nil {
				s.log.Warn("rule skipped for line",
					zap.String("spec", sp.String()),
					zap.Error(err))
				continue
			}
			for _, v := range variants {
				out.WriteString(v)
				out.WriteByte('\n')
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read candidates: %w", err)
	}
	return out.Flush()
}
