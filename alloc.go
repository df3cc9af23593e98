// alloc.go — storage accounting for chain nodes and owned messages.
//
// Every node built by a Factory requests nodeSize bytes for itself and, for
// owned messages, a buffer holding the message bytes. The buffers are handed
// back to the same Allocator on Destroy, so an instrumented allocator can
// verify that a chain is released exactly once.
package errchain

import "unsafe"

// Allocator supplies storage to a Factory.
//
// Alloc returns a buffer of at least size bytes, or ok=false when the
// allocation cannot be satisfied. Free receives exactly the buffer returned
// by Alloc. Implementations shared across goroutines must be safe for
// concurrent use.
type Allocator interface {
	Alloc(size int) (buf []byte, ok bool)
	Free(buf []byte)
}

// nodeSize is the storage requested for one node.
const nodeSize = int(unsafe.Sizeof(Error{}))

// HeapAllocator allocates from the Go heap and leaves release to the GC.
type HeapAllocator struct{}

// Alloc implements Allocator.
func (HeapAllocator) Alloc(size int) ([]byte, bool) {
	if size < 0 {
		return nil, false
	}
	return make([]byte, size), true
}

// Free implements Allocator.
func (HeapAllocator) Free([]byte) {}

// AllocatorFuncs adapts a pair of functions to the Allocator interface.
// A nil AllocFunc falls back to HeapAllocator; a nil FreeFunc is a no-op.
type AllocatorFuncs struct {
	AllocFunc func(size int) ([]byte, bool)
	FreeFunc  func(buf []byte)
}

// Alloc implements Allocator.
func (a AllocatorFuncs) Alloc(size int) ([]byte, bool) {
	if a.AllocFunc == nil {
		return HeapAllocator{}.Alloc(size)
	}
	return a.AllocFunc(size)
}

// Free implements Allocator.
func (a AllocatorFuncs) Free(buf []byte) {
	if a.FreeFunc != nil {
		a.FreeFunc(buf)
	}
}

var (
	_ Allocator = HeapAllocator{}
	_ Allocator = AllocatorFuncs{}
)
