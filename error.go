// Package errchain defines a small, allocator-aware chainable error value.
// An *Error carries a message and an optional cause, plus explicit ownership
// flags recording which parts of the node were obtained from an Allocator.
//
// Design tenets:
//   - Construction never fails to return something usable: allocation
//     failure degrades to the OutOfMemory sentinel, absent input to Empty.
//   - Chains only grow by prepending a new head; nodes are immutable once built.
//   - Ownership is transferred into Wrap* and Destroy; the caller must not use
//     the passed reference afterwards.
//   - Interop: *Error implements error, Unwrap, Is and fmt.Formatter.
package errchain

import "strings"

// Error is a single node of a cause chain.
//
// The zero value is not useful; obtain nodes from a Factory or from the
// package-level constructors.
type Error struct {
	msg   string
	cause *Error
	kind  Kind

	// ownsSelf and ownsMessage record which storage must be returned to
	// alloc on Destroy. Both are false for the sentinels.
	ownsSelf    bool
	ownsMessage bool
	self        []byte
	buf         []byte
	alloc       Allocator
}

// Message returns a copy of the node's own message (without its causes).
func (e *Error) Message() string {
	if e == nil {
		return Empty.msg
	}
	return strings.Clone(e.msg)
}

// Cause returns the wrapped error, or nil at the root of a chain.
func (e *Error) Cause() *Error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Kind classifies the node. Only the sentinels report a kind other than
// KindDetailed.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindEmpty
	}
	return e.kind
}

// OwnsSelf reports whether the node's storage is released by Destroy.
func (e *Error) OwnsSelf() bool { return e != nil && e.ownsSelf }

// OwnsMessage reports whether the node's message storage is released by Destroy.
func (e *Error) OwnsMessage() bool { return e != nil && e.ownsMessage }

// Error renders the whole chain joined by Separator, e.g. "A: B: C".
func (e *Error) Error() string {
	var sb strings.Builder
	Render("", e, "", builderSink{&sb})
	return sb.String()
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}
	return e.cause
}

// Is matches sentinels by kind, so classification does not depend on
// pointer identity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil || e == nil {
		return false
	}
	return t.kind != KindDetailed && t.kind == e.kind
}

// Sentinels. They are never owned, never freed and never mutated.
var (
	// OutOfMemory is returned whenever an allocation fails.
	OutOfMemory = &Error{msg: "Out of memory", kind: KindOutOfMemory}

	// Empty is returned for absent input and used as the cause when wrapping
	// a nil error.
	Empty = &Error{msg: "<Empty>", kind: KindEmpty}
)

var _ error = (*Error)(nil)
