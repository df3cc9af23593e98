// Package zapchain connects errchain chains to go.uber.org/zap.
//
// The core package never logs; these helpers are for the edges of an
// application that already carries a *zap.Logger.
package zapchain

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xgx-io/errchain"
)

// Chain returns a field holding every message of e as an array, outermost
// first. The messages are copied when Chain is called, so the field stays
// valid after e is destroyed. A nil e is logged as the Empty sentinel.
func Chain(key string, e *errchain.Error) zap.Field {
	if e == nil {
		e = errchain.Empty
	}
	return zap.Strings(key, errchain.Messages(e))
}

// Error returns the rendered chain under the "error" key.
func Error(e *errchain.Error) zap.Field {
	return zap.String("error", e.Error())
}

// Log writes msg at level with the rendered chain and its depth.
// A nil logger discards the entry.
func Log(logger *zap.Logger, level zapcore.Level, msg string, e *errchain.Error, fields ...zap.Field) {
	if logger == nil {
		return
	}
	if ce := logger.Check(level, msg); ce != nil {
		ce.Write(append(fields, Error(e), zap.Int("depth", errchain.Len(e)))...)
	}
}

// Sink is an errchain.Sink that assembles fragments into one log entry.
// Call Flush after Render to write it. A Sink is not safe for concurrent use.
type Sink struct {
	logger *zap.Logger
	level  zapcore.Level
	fields []zap.Field
	sb     strings.Builder
}

// NewSink returns a Sink logging at level with the given fields attached.
func NewSink(logger *zap.Logger, level zapcore.Level, fields ...zap.Field) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{logger: logger, level: level, fields: fields}
}

// Emit implements errchain.Sink.
func (s *Sink) Emit(fragment string) int {
	n, _ := s.sb.WriteString(fragment)
	return n
}

// Flush logs the buffered line, if any, and resets the buffer.
func (s *Sink) Flush() {
	if s.sb.Len() == 0 {
		return
	}
	if ce := s.logger.Check(s.level, s.sb.String()); ce != nil {
		ce.Write(s.fields...)
	}
	s.sb.Reset()
}

var _ errchain.Sink = (*Sink)(nil)
