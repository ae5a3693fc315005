// Package trace provides the append-only decision sinks used across primtrace.
//
// This file declares Sink, the Buffer/Writer/Tee/Discard implementations,
// and the Resolve helper that maps a nil sink to Discard.
package trace

import (
	"fmt"
	"io"
)

// Sink records human-readable decision lines in the order they are appended.
//
// Implementations must preserve call order and must not mutate or drop lines.
type Sink interface {
	// Append records one line. It never fails from the caller's point of view.
	Append(line string)
}

// Resolve returns s unchanged when non-nil, or Discard otherwise.
// Components call it once on entry so a nil sink is always safe.
// Complexity: O(1)
func Resolve(s Sink) Sink {
	if s == nil {
		return Discard
	}

	return s
}

// Buffer is an in-memory Sink. The zero value is ready to use.
type Buffer struct {
	lines []string
}

// Append records line at the end of the buffer.
// Complexity: O(1) amortized.
func (b *Buffer) Append(line string) {
	b.lines = append(b.lines, line)
}

// Len returns the number of recorded lines.
// Complexity: O(1)
func (b *Buffer) Len() int { return len(b.lines) }

// Lines returns a copy of all recorded lines in append order.
// The copy keeps the buffer append-only: callers cannot alter history.
// Complexity: O(n)
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)

	return out
}

// Writer is a Sink that writes each appended line, newline-terminated,
// to an underlying io.Writer.
//
// The Sink contract has no error channel, so the first write failure is
// retained and all later Appends become no-ops; inspect it with Err().
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer sink over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Append writes line followed by '\n' to the underlying writer.
// After the first write failure the sink stops writing.
// Complexity: O(len(line))
func (ws *Writer) Append(line string) {
	if ws.err != nil {
		return
	}
	if _, err := fmt.Fprintln(ws.w, line); err != nil {
		ws.err = err
	}
}

// Err reports the first write failure, or nil if every Append succeeded.
// Complexity: O(1)
func (ws *Writer) Err() error { return ws.err }

// multi fans each appended line out to every wrapped sink, in order.
type multi struct {
	sinks []Sink
}

// Tee returns a Sink that forwards every line to each of sinks in order.
// Nil entries are skipped. Tee of zero sinks behaves like Discard.
func Tee(sinks ...Sink) Sink {
	kept := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}

	return &multi{sinks: kept}
}

// Append forwards line to every wrapped sink.
// Complexity: O(k) sink calls, k = number of wrapped sinks.
func (m *multi) Append(line string) {
	for _, s := range m.sinks {
		s.Append(line)
	}
}

// discard is the no-op Sink backing the Discard singleton.
type discard struct{}

// Append drops the line.
func (discard) Append(string) {}

// Discard is a Sink that ignores every line.
var Discard Sink = discard{}
