package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultEventEvery is how many output lines pass between two working
// events of one stage.
const DefaultEventEvery = 4096

// Options configures a chained run.
type Options struct {
	// Stages run in order; with none the input is copied through.
	Stages []Stage
	// Sink receives progress events. Nil disables reporting.
	Sink ProgressSink
	// InputSize is the source size in bytes, or <= 0 when unknown.
	// Known sizes turn fraction reporting on.
	InputSize int64
	// EventEvery overrides DefaultEventEvery when positive.
	EventEvery uint64
}

// Result summarizes a finished run.
type Result struct {
	// Candidates is the number of lines the final stage wrote.
	Candidates uint64
	Elapsed    time.Duration
}

// Chain connects the stages with in-process pipes and runs them
// concurrently, streaming r through every stage into w. The first stage
// failure cancels the run and is returned with the stage name attached;
// writes already flushed to w stay written.
func Chain(ctx context.Context, opts Options, r io.Reader, w io.Writer) (Result, error) {
	start := time.Now()
	every := opts.EventEvery
	if every == 0 {
		every = DefaultEventEvery
	}
	emit := func(evt Event) {
		if opts.Sink != nil {
			opts.Sink.OnEvent(evt)
		}
	}

	src := &byteCountReader{src: r}
	fraction := func() float64 {
		if opts.InputSize <= 0 {
			return -1
		}
		f := float64(src.Bytes()) / float64(opts.InputSize)
		if f > 1 {
			f = 1
		}
		return f
	}

	if len(opts.Stages) == 0 {
		counter := newLineCountWriter(w, every, nil)
		if _, err := io.Copy(counter, src); err != nil {
			return Result{}, err
		}
		return Result{Candidates: counter.Lines(), Elapsed: time.Since(start)}, nil
	}

	for _, st := range opts.Stages {
		emit(Event{Stage: st.Name(), Status: StatusQueued, Fraction: fraction()})
	}

	last := len(opts.Stages) - 1

	// readers[i] feeds stage i; inWard[i] is its closable pipe end (nil
	// for the first stage), outWard[i] the pipe it writes (nil for the
	// last, which writes w directly).
	readers := make([]io.Reader, len(opts.Stages))
	inWard := make([]*io.PipeReader, len(opts.Stages))
	outWard := make([]*io.PipeWriter, len(opts.Stages))

	readers[0] = src
	for i := 0; i < last; i++ {
		pr, pw := io.Pipe()
		outWard[i] = pw
		readers[i+1] = pr
		inWard[i+1] = pr
	}

	counters := make([]*lineCountWriter, len(opts.Stages))
	for i, st := range opts.Stages {
		var dst io.Writer = w
		if i != last {
			dst = outWard[i]
		}
		name := st.Name()
		counters[i] = newLineCountWriter(dst, every, func(lines uint64) {
			emit(Event{Stage: name, Status: StatusWorking, Lines: lines, Fraction: fraction()})
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, st := range opts.Stages {
		g.Go(func(i int, st Stage) func() error {
			return func() error {
				emit(Event{Stage: st.Name(), Status: StatusWorking, Fraction: fraction()})
				err := st.Run(gctx, readers[i], counters[i])

				// Unblock both neighbors: the downstream reader sees EOF
				// or the failure, and an upstream writer stuck on a pipe
				// this stage abandoned gets released.
				if pw := outWard[i]; pw != nil {
					pw.CloseWithError(err)
				}
				if pr := inWard[i]; pr != nil {
					pr.CloseWithError(err)
				}

				if err != nil {
					emit(Event{Stage: st.Name(), Status: StatusError, Lines: counters[i].Lines(), Fraction: fraction(), Err: err})
					return fmt.Errorf("%s: %w", st.Name(), err)
				}
				emit(Event{Stage: st.Name(), Status: StatusDone, Lines: counters[i].Lines(), Fraction: fraction()})
				return nil
			}
		}(i, st))
	}

	err := g.Wait()
	res := Result{
		Candidates: counters[last].Lines(),
		Elapsed:    time.Since(start),
	}
	return res, err
}
