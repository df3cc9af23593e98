package errchain

// MaxLen is the default maximum message size in bytes, counting the
// terminator slot of the classic layout. Messages keep at most MaxLen-1 bytes.
const MaxLen = 1024

// Factory builds chain nodes with a fixed Allocator and message bound.
// A Factory is immutable after NewFactory returns and may be shared freely.
// A nil *Factory behaves like Default().
type Factory struct {
	alloc  Allocator
	maxLen int
}

// Option configures a Factory.
type Option func(*Factory)

// WithAllocator sets the allocator used for nodes and owned messages.
// A nil allocator is ignored.
func WithAllocator(a Allocator) Option {
	return func(f *Factory) {
		if a != nil {
			f.alloc = a
		}
	}
}

// WithAllocatorFuncs is WithAllocator for a bare alloc/free function pair.
func WithAllocatorFuncs(alloc func(size int) ([]byte, bool), free func(buf []byte)) Option {
	return WithAllocator(AllocatorFuncs{AllocFunc: alloc, FreeFunc: free})
}

// WithMaxLen sets the message bound. Values below 1 are ignored.
func WithMaxLen(n int) Option {
	return func(f *Factory) {
		if n >= 1 {
			f.maxLen = n
		}
	}
}

// NewFactory returns a Factory using HeapAllocator and MaxLen unless
// overridden by opts.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{alloc: HeapAllocator{}, maxLen: MaxLen}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

var defaultFactory = NewFactory()

// Default returns the factory behind the package-level constructors.
func Default() *Factory { return defaultFactory }

// MaxLen returns the message bound, including the terminator slot.
func (f *Factory) MaxLen() int { return f.orDefault().maxLen }

// Allocator returns the factory's allocator.
func (f *Factory) Allocator() Allocator { return f.orDefault().alloc }

func (f *Factory) orDefault() *Factory {
	if f == nil {
		return defaultFactory
	}
	return f
}

// clip returns how many of n message bytes fit under the bound.
func (f *Factory) clip(n int) int {
	return min(n, f.maxLen-1)
}
