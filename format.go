// format.go — fmt.Formatter implementation for *Error.
//
// Behavior:
//
//   %s, %v   → the chain joined by ": " (Error()).
//   %q       → quoted Error().
//   %+v      → one line per node, outermost first:
//                kind=detailed owns_self=true owns_msg=true msg="outer"
//                cause: kind=empty owns_self=false owns_msg=false msg="<Empty>"
package errchain

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*errchain.Error=%s)", verb, e.Error())
	}
}

// formatConcise writes the chain in one line. Write errors are ignored in
// formatting paths.
func formatConcise(w io.Writer, e *Error) {
	Render("", e, "", &writerSink{w: w})
}

func formatVerbose(w io.Writer, e *Error) {
	if e == nil {
		e = Empty
	}
	Walk(e, func(n *Error) bool {
		if n != e {
			_, _ = io.WriteString(w, "\ncause: ")
		}
		_, _ = fmt.Fprintf(w, "kind=%s owns_self=%t owns_msg=%t msg=%q",
			n.kind, n.ownsSelf, n.ownsMessage, n.msg)
		return true
	})
}

var _ fmt.Formatter = (*Error)(nil)
