// unwrap.go — traversal helpers over a cause chain.
//
// Chains are singly linked and acyclic by construction (they only grow by
// prepending), so traversal needs no seen-set: a plain walk along the cause
// pointers visits every node exactly once.
//
// Traversal semantics:
//   - Walk:      outermost to innermost. Stops early if visit returns false.
//   - Root:      innermost node (the root cause), nil-safe.
//   - Len:       number of nodes, 0 for nil.
//   - Messages:  copies of every node's own message, outermost first.
package errchain

// Walk calls visit for every node of e from outermost to innermost. It stops
// as soon as visit returns false. A nil e or visit is a no-op.
func Walk(e *Error, visit func(*Error) bool) {
	if visit == nil {
		return
	}
	for n := e; n != nil; n = n.cause {
		if !visit(n) {
			return
		}
	}
}

// Root returns the innermost node of e, or nil if e is nil.
func Root(e *Error) *Error {
	var root *Error
	Walk(e, func(n *Error) bool {
		root = n
		return true
	})
	return root
}

// Len returns the number of nodes in the chain.
func Len(e *Error) int {
	n := 0
	Walk(e, func(*Error) bool {
		n++
		return true
	})
	return n
}

// Messages returns the message of every node, outermost first.
// If e is nil, it returns nil.
func Messages(e *Error) []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, 4)
	Walk(e, func(n *Error) bool {
		out = append(out, n.Message())
		return true
	})
	return out
}
