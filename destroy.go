package errchain

// Destroy releases e and its entire cause chain. It is a no-op for nil and
// for the sentinels. Each node's storage goes back to the allocator that
// produced it; a node that was already destroyed releases nothing again.
//
// The chain is walked with a loop, so depth is bounded only by memory.
func Destroy(e *Error) {
	for e != nil {
		next := e.cause
		e.release()
		e = next
	}
}

// Destroy is shorthand for Destroy(e).
func (e *Error) Destroy() { Destroy(e) }

func (e *Error) release() {
	if e.kind != KindDetailed {
		return
	}
	if e.ownsMessage {
		e.msg = ""
		e.alloc.Free(e.buf)
	}
	if e.ownsSelf {
		e.alloc.Free(e.self)
	}
	e.buf, e.self = nil, nil
	e.ownsMessage, e.ownsSelf = false, false
	e.cause = nil
}
