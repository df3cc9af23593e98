// predicates.go — classification helpers for arbitrary errors.
//
// Scope:
//   • Answer "did construction degrade?" without comparing pointers.
//   • Interop-first: use errors.Is / errors.As so an *Error buried inside
//     foreign wrappers (fmt.Errorf("%w"), errors.Join) is still found.
package errchain

import "errors"

// IsOutOfMemory reports whether err is, or wraps, the OutOfMemory sentinel.
func IsOutOfMemory(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, OutOfMemory)
}

// IsEmpty reports whether err is, or wraps, the Empty sentinel. Note that a
// chain wrapped around a nil cause ends in Empty and therefore matches.
func IsEmpty(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, Empty)
}

// IsSentinel reports whether e itself is one of the sentinels.
func IsSentinel(e *Error) bool {
	return e != nil && e.kind.IsSentinel()
}

// KindOf returns the kind of the first *Error found along err's unwrap
// graph, and false if there is none.
func KindOf(err error) (Kind, bool) {
	if err == nil {
		return 0, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	return 0, false
}
