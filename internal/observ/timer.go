package observ

import (
	"fmt"
	"time"
)

// Mark records the duration and metadata of one timed phase.
type Mark struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer accumulates named phase durations for a single run.
// It is not safe for concurrent use.
type Timer struct {
	marks []Mark
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{marks: make([]Mark, 0, 8)} }

// Time runs fn and records its wall-clock duration under name. The
// duration is recorded even when fn fails, so aborted runs still show
// where the time went.
func (t *Timer) Time(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	t.marks = append(t.marks, Mark{Name: name, Dur: time.Since(start)})
	return err
}

// Observe records an externally measured duration.
func (t *Timer) Observe(name string, d time.Duration, note string) {
	t.marks = append(t.marks, Mark{Name: name, Dur: d, Note: note})
}

// Summary returns a human-readable string summarizing all recorded marks.
func (t *Timer) Summary() string {
	report := t.Report()
	out := "timings:\n"
	for _, m := range report.Marks {
		out += fmt.Sprintf("  %-20s %7.2f ms", m.Name, m.DurationMS)
		if m.Note != "" {
			out += "  // " + m.Note
		}
		out += "\n"
	}
	out += fmt.Sprintf("  %-20s %7.2f ms\n", "total", report.TotalMS)
	return out
}

// MarkReport is the serializable form of a single mark.
type MarkReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates all marks with durations in milliseconds.
type Report struct {
	TotalMS float64      `json:"total_ms"`
	Marks   []MarkReport `json:"marks"`
}

// Report builds the mark slice and total duration in milliseconds.
func (t *Timer) Report() Report {
	if len(t.marks) == 0 {
		return Report{}
	}
	report := Report{
		Marks: make([]MarkReport, len(t.marks)),
	}
	var total time.Duration
	for i, mark := range t.marks {
		total += mark.Dur
		report.Marks[i] = MarkReport{
			Name:       mark.Name,
			DurationMS: durationToMillis(mark.Dur),
			Note:       mark.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
