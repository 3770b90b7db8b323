// Package pipeline chains candidate stages over in-process text streams
// and reports their progress.
package pipeline

import (
	"context"
	"io"
)

// Stage is one transformation of the candidate stream. Run must consume
// r until EOF or a failure, write every output line to w, and return
// only once it will write no more.
type Stage interface {
	Name() string
	Run(ctx context.Context, r io.Reader, w io.Writer) error
}

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the stage is waiting for input.
	StatusQueued Status = "queued"
	// StatusWorking indicates the stage is processing lines.
	StatusWorking Status = "working"
	// StatusDone indicates the stage finished cleanly.
	StatusDone Status = "done"
	// StatusError indicates the stage failed.
	StatusError Status = "error"
)

// Event reports progress for one stage of a run. Lines is the number of
// lines the stage has written so far. Fraction is how much of a
// known-size input the run has consumed, or negative when the input size
// is unknown.
type Event struct {
	Stage    string
	Status   Status
	Lines    uint64
	Fraction float64
	Err      error
}

// ProgressSink consumes progress events. Stages run concurrently, so a
// sink must be safe for concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel. With Done set, a send
// gives up once Done closes, so a consumer that stopped reading cannot
// wedge a stage mid-run; without it every event is delivered.
type ChannelSink struct {
	Ch   chan<- Event
	Done <-chan struct{}
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	if s.Done == nil {
		s.Ch <- evt
		return
	}
	select {
	case s.Ch <- evt:
	case <-s.Done:
	}
}
