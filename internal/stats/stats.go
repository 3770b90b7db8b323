// Package stats summarizes a candidate stream instead of forwarding it.
package stats

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"
)

// maxLineBytes bounds a single candidate line.
const maxLineBytes = 1 << 20

// Report holds the length statistics of a candidate stream.
type Report struct {
	Total    int     `json:"total"`
	Shortest int     `json:"shortest"`
	Longest  int     `json:"longest"`
	Average  float64 `json:"average"`
}

// Collect consumes r line by line. Lengths count runes, not bytes.
func Collect(ctx context.Context, r io.Reader) (Report, error) {
	var rep Report
	sum := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		n := utf8.RuneCountInString(sc.Text())
		if rep.Total == 0 || n < rep.Shortest {
			rep.Shortest = n
		}
		if n > rep.Longest {
			rep.Longest = n
		}
		sum += n
		rep.Total++
	}
	if err := sc.Err(); err != nil {
		return Report{}, fmt.Errorf("read candidates: %w", err)
	}
	if rep.Total > 0 {
		rep.Average = float64(sum) / float64(rep.Total)
	}
	return rep, nil
}

// WriteText renders the report in its four-line form, or the
// no-candidates notice when the stream was empty.
func (rep Report) WriteText(w io.Writer) error {
	if rep.Total == 0 {
		_, err := fmt.Fprintln(w, "No candidates generated.")
		return err
	}
	_, err := fmt.Fprintf(w,
		"Total candidates: %d\nShortest length: %d\nLongest length: %d\nAverage length: %.2f\n",
		rep.Total, rep.Shortest, rep.Longest, rep.Average)
	return err
}

// WriteJSON renders the report as one indented JSON object.
func (rep Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// Stage is the pipeline adapter: it swallows the candidate stream and
// emits the report in its place, so a run in stats mode produces the
// summary on the pipeline output.
type Stage struct {
	// Format selects the rendering, "pretty" (default) or "json".
	Format string
}

// Name identifies the stage in progress events.
func (s Stage) Name() string { return "stats" }

// Run consumes every line of r and writes the report to w.
func (s Stage) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	rep, err := Collect(ctx, r)
	if err != nil {
		return err
	}
	if s.Format == "json" {
		return rep.WriteJSON(w)
	}
	return rep.WriteText(w)
}
