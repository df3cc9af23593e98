// render.go — fragment-level rendering of a chain.
//
// A chain "A" -> "B" -> "C" with header "[ERR] " and trailer "\n" reaches the
// sink as: "[ERR] ", "A", ": ", "B", ": ", "C", "\n".
//
// A negative sink status aborts the walk and is returned as is. Fragments
// already emitted are not taken back.
package errchain

import (
	"errors"
	"io"
	"strings"
)

// ErrNilWriter is returned by WriteTo when given a nil io.Writer.
var ErrNilWriter = errors.New("errchain: nil writer")

// Separator is emitted between a node's message and its cause.
const Separator = ": "

// Sink consumes rendered fragments. A negative return aborts rendering.
// Fragments are only valid for the duration of the call; copy to retain.
type Sink interface {
	Emit(fragment string) int
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(fragment string) int

// Emit implements Sink.
func (fn SinkFunc) Emit(fragment string) int { return fn(fragment) }

// Render feeds header, the chain of e (outermost first) and trailer to sink.
// An empty header or trailer is not emitted. A nil e renders as Empty; a nil
// sink yields -1. The result is the last status returned by sink, or the
// first negative one.
func Render(header string, e *Error, trailer string, sink Sink) int {
	if sink == nil {
		return -1
	}
	if e == nil {
		e = Empty
	}

	var rc int
	if header != "" {
		if rc = sink.Emit(header); rc < 0 {
			return rc
		}
	}
	for n := e; n != nil; n = n.cause {
		if n != e {
			if rc = sink.Emit(Separator); rc < 0 {
				return rc
			}
		}
		if rc = sink.Emit(n.msg); rc < 0 {
			return rc
		}
	}
	if trailer != "" {
		rc = sink.Emit(trailer)
	}
	return rc
}

// Fprint renders to w. It returns the number of bytes written, or -1 if w is
// nil or a write fails.
func Fprint(w io.Writer, header string, e *Error, trailer string) int {
	if w == nil {
		return -1
	}
	ws := &writerSink{w: w}
	if rc := Render(header, e, trailer, ws); rc < 0 {
		return rc
	}
	return int(ws.n)
}

// WriteTo implements io.WriterTo, writing the chain without header or trailer.
func (e *Error) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrNilWriter
	}
	ws := &writerSink{w: w}
	Render("", e, "", ws)
	return ws.n, ws.err
}

// writerSink maps write errors onto the negative-status contract and keeps
// the error for callers that want it.
type writerSink struct {
	w   io.Writer
	n   int64
	err error
}

func (s *writerSink) Emit(fragment string) int {
	n, err := io.WriteString(s.w, fragment)
	s.n += int64(n)
	if err != nil {
		s.err = err
		return -1
	}
	return n
}

type builderSink struct{ sb *strings.Builder }

func (s builderSink) Emit(fragment string) int {
	n, _ := s.sb.WriteString(fragment)
	return n
}
