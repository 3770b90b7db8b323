package pipeline

import (
	"bytes"
	"io"
	"sync/atomic"
)

// byteCountReader tracks how many bytes have been read from the source
// stream. The count is read concurrently by event emitters.
type byteCountReader struct {
	src io.Reader
	n   atomic.Int64
}

func (r *byteCountReader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		r.n.Add(int64(n))
	}
	return n, err
}

func (r *byteCountReader) Bytes() int64 { return r.n.Load() }

// lineCountWriter counts the newlines flowing to dst and fires emit at
// every threshold crossing. Write is called by a single stage goroutine;
// only the line counter is shared.
type lineCountWriter struct {
	dst   io.Writer
	lines atomic.Uint64
	every uint64
	next  uint64
	emit  func(lines uint64)
}

func newLineCountWriter(dst io.Writer, every uint64, emit func(uint64)) *lineCountWriter {
	return &lineCountWriter{dst: dst, every: every, next: every, emit: emit}
}

func (w *lineCountWriter) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	if n > 0 {
		if fresh := uint64(bytes.Count(p[:n], []byte{'\n'})); fresh > 0 {
			total := w.lines.Add(fresh)
			if w.emit != nil && total >= w.next {
				w.next = total + w.every
				w.emit(total)
			}
		}
	}
	return n, err
}

func (w *lineCountWriter) Lines() uint64 { return w.lines.Load() }
