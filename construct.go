// construct.go — constructors for chain nodes.
//
// Scope:
//   - New / NewBytes copy the message into allocator storage (owned message).
//   - Static stores the caller's string as-is (borrowed message).
//   - Newf renders with fmt, then stores the result as an owned message.
//
// Every constructor returns a non-nil *Error:
//   - any allocation failure releases what was already obtained and returns
//     OutOfMemory;
//   - absent input (a nil byte slice) returns Empty.
//
// Messages longer than MaxLen()-1 bytes are truncated silently. Truncation is
// byte-based and may split a multi-byte rune.
package errchain

import (
	"fmt"
	"unsafe"
)

// New returns a node owning a copy of s.
func (f *Factory) New(s string) *Error {
	f = f.orDefault()
	return f.owned(s[:f.clip(len(s))])
}

// NewBytes is New for a byte slice. A nil slice is absent input and yields
// Empty; an empty non-nil slice yields a node with an empty message.
func (f *Factory) NewBytes(b []byte) *Error {
	if b == nil {
		return Empty
	}
	f = f.orDefault()
	return f.owned(string(b[:f.clip(len(b))]))
}

// Static returns a node that references s without copying it. Only the node
// storage is owned.
func (f *Factory) Static(s string) *Error {
	f = f.orDefault()
	e, ok := f.node()
	if !ok {
		return OutOfMemory
	}
	e.msg = s[:f.clip(len(s))]
	return e
}

// Newf formats according to a fmt format specifier and returns a node owning
// the (possibly truncated) result.
func (f *Factory) Newf(format string, args ...any) *Error {
	f = f.orDefault()
	msg := fmt.Sprintf(format, args...)
	return f.owned(msg[:f.clip(len(msg))])
}

// node allocates the storage of a fresh detailed node.
func (f *Factory) node() (*Error, bool) {
	self, ok := f.alloc.Alloc(nodeSize)
	if !ok || len(self) < nodeSize {
		if ok {
			f.alloc.Free(self)
		}
		return nil, false
	}
	return &Error{
		kind:     KindDetailed,
		ownsSelf: true,
		self:     self,
		alloc:    f.alloc,
	}, true
}

// owned builds a node whose message is a copy of msg held in allocator
// storage. msg must already be clipped.
func (f *Factory) owned(msg string) *Error {
	e, ok := f.node()
	if !ok {
		return OutOfMemory
	}
	n := len(msg)
	buf, ok := f.alloc.Alloc(n)
	if !ok || len(buf) < n {
		if ok {
			f.alloc.Free(buf)
		}
		f.alloc.Free(e.self)
		return OutOfMemory
	}
	copy(buf, msg)
	e.buf = buf
	e.ownsMessage = true
	if n > 0 {
		// The view stays valid until Destroy returns buf to the allocator.
		e.msg = unsafe.String(unsafe.SliceData(buf), n)
	}
	return e
}

// -----------------------------------------------------------------------------
// Package-level constructors on the default factory
// -----------------------------------------------------------------------------

// New returns a node owning a copy of s, using the default factory.
func New(s string) *Error { return defaultFactory.New(s) }

// NewBytes returns a node owning a copy of b, or Empty if b is nil.
func NewBytes(b []byte) *Error { return defaultFactory.NewBytes(b) }

// Static returns a node borrowing s, using the default factory.
func Static(s string) *Error { return defaultFactory.Static(s) }

// Newf returns a node owning the formatted message, using the default factory.
func Newf(format string, args ...any) *Error { return defaultFactory.Newf(format, args...) }
