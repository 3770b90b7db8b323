package main

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wordforge/internal/pipeline"
	"wordforge/internal/ui"
)

type chainOutcome struct {
	result pipeline.Result
	err    error
}

// runChainWithUI executes the pipeline in a worker goroutine while a
// Bubble Tea program renders its progress events. The pipeline outcome
// is reported after the display shuts down; a display failure wins over
// a pipeline failure because it usually hides one.
func runChainWithUI(ctx context.Context, title string, stages []string, opts pipeline.Options, r io.Reader, w io.Writer) (pipeline.Result, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan chainOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = pipeline.ChannelSink{Ch: events, Done: ctx.Done()}
		res, err := pipeline.Chain(ctx, optsCopy, r, w)
		outcomeCh <- chainOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, stages, events, opts.InputSize > 0)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()

	// Once Run returns the model reads no more events. Keep draining
	// until the worker closes the channel so no stage blocks on a full
	// buffer during teardown.
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
