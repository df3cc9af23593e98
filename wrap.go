// wrap.go — error context stacking.
//
// Each Wrap* call takes ownership of inner and returns a new head whose cause
// is inner. The wrapped node itself is never modified.
//
//   - If the outer node cannot be built (a sentinel came back), inner is
//     destroyed and that sentinel is returned.
//   - If inner is nil, the cause is set to Empty so "no cause" and an
//     explicitly empty cause render the same way.
package errchain

// Wrap returns a node owning a copy of s whose cause is inner.
func (f *Factory) Wrap(inner *Error, s string) *Error {
	return attach(f.New(s), inner)
}

// WrapBytes is Wrap for a byte slice. A nil b yields Empty and destroys inner.
func (f *Factory) WrapBytes(inner *Error, b []byte) *Error {
	return attach(f.NewBytes(b), inner)
}

// WrapStatic returns a node borrowing s whose cause is inner.
func (f *Factory) WrapStatic(inner *Error, s string) *Error {
	return attach(f.Static(s), inner)
}

// Wrapf returns a node owning the formatted message whose cause is inner.
func (f *Factory) Wrapf(inner *Error, format string, args ...any) *Error {
	return attach(f.Newf(format, args...), inner)
}

func attach(outer, inner *Error) *Error {
	if !outer.ownsSelf {
		// Construction degraded to a sentinel; ownership of inner was
		// already taken, so release it here.
		Destroy(inner)
		return outer
	}
	if inner == nil {
		inner = Empty
	}
	outer.cause = inner
	return outer
}

// Wrap wraps inner with a copy of s, using the default factory.
func Wrap(inner *Error, s string) *Error { return defaultFactory.Wrap(inner, s) }

// WrapBytes wraps inner with a copy of b, using the default factory.
func WrapBytes(inner *Error, b []byte) *Error { return defaultFactory.WrapBytes(inner, b) }

// WrapStatic wraps inner with a borrowed s, using the default factory.
func WrapStatic(inner *Error, s string) *Error { return defaultFactory.WrapStatic(inner, s) }

// Wrapf wraps inner with a formatted message, using the default factory.
func Wrapf(inner *Error, format string, args ...any) *Error {
	return defaultFactory.Wrapf(inner, format, args...)
}
