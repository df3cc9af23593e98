package errchain

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAllocator tracks live buffers so tests can assert that every
// allocation is released exactly once. failAt makes the n-th Alloc call
// (1-based) fail; failAll makes every call fail.
type countingAllocator struct {
	mu          sync.Mutex
	live        map[*byte]int
	calls       int
	frees       int
	doubleFrees int
	failAt      int
	failAll     bool
}

func newCountingAllocator() *countingAllocator {
	return &countingAllocator{live: make(map[*byte]int)}
}

func (a *countingAllocator) Alloc(size int) ([]byte, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	if a.failAll || a.calls == a.failAt {
		return nil, false
	}
	// One spare byte keeps SliceData distinct for zero-length buffers.
	buf := make([]byte, size, size+1)
	a.live[unsafe.SliceData(buf)] = size
	return buf, true
}

func (a *countingAllocator) Free(buf []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frees++
	p := unsafe.SliceData(buf)
	if _, ok := a.live[p]; !ok {
		a.doubleFrees++
		return
	}
	delete(a.live, p)
}

func (a *countingAllocator) outstanding() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

func TestHeapAllocator(t *testing.T) {
	t.Parallel()
	buf, ok := HeapAllocator{}.Alloc(8)
	require.True(t, ok)
	assert.Len(t, buf, 8)

	_, ok = HeapAllocator{}.Alloc(-1)
	assert.False(t, ok, "negative sizes must fail")

	HeapAllocator{}.Free(buf) // no-op
}

func TestAllocatorFuncs(t *testing.T) {
	t.Parallel()

	t.Run("nil funcs fall back to heap", func(t *testing.T) {
		var a AllocatorFuncs
		buf, ok := a.Alloc(3)
		require.True(t, ok)
		assert.Len(t, buf, 3)
		a.Free(buf)
	})

	t.Run("funcs are called", func(t *testing.T) {
		var allocs, frees int
		a := AllocatorFuncs{
			AllocFunc: func(size int) ([]byte, bool) { allocs++; return make([]byte, size), true },
			FreeFunc:  func([]byte) { frees++ },
		}
		f := NewFactory(WithAllocator(a))
		e := f.Wrap(f.New("inner"), "outer")
		assert.Equal(t, 4, allocs, "two nodes and two messages")
		Destroy(e)
		assert.Equal(t, 4, frees)
	})
}

func TestWithAllocatorFuncs_FailingAlloc(t *testing.T) {
	t.Parallel()
	f := NewFactory(WithAllocatorFuncs(func(int) ([]byte, bool) { return nil, false }, nil))
	assert.Same(t, OutOfMemory, f.New("x"))
	assert.Same(t, OutOfMemory, f.Static("x"))
	assert.Same(t, OutOfMemory, f.Newf("%d", 1))
}

func TestFactoryOptions(t *testing.T) {
	t.Parallel()

	f := NewFactory()
	assert.Equal(t, MaxLen, f.MaxLen())
	assert.IsType(t, HeapAllocator{}, f.Allocator())

	f = NewFactory(WithMaxLen(0), WithAllocator(nil), nil)
	assert.Equal(t, MaxLen, f.MaxLen(), "invalid max len is ignored")
	assert.IsType(t, HeapAllocator{}, f.Allocator(), "nil allocator is ignored")

	var nilFactory *Factory
	assert.Equal(t, MaxLen, nilFactory.MaxLen())
	e := nilFactory.New("via nil factory")
	assert.Equal(t, "via nil factory", e.Error())
	Destroy(e)

	assert.Same(t, defaultFactory, Default())
}
