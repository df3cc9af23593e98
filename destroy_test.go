package errchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestroy_ReleasesEveryAllocationOnce(t *testing.T) {
	t.Parallel()

	alloc := newCountingAllocator()
	f := NewFactory(WithAllocator(alloc))

	e := f.New("root")
	for i := range 10 {
		e = f.Wrapf(e, "layer %d", i)
	}
	e = f.WrapStatic(e, "static")
	require.Equal(t, 11*2+1, alloc.outstanding())

	Destroy(e)
	assert.Zero(t, alloc.outstanding())
	assert.Zero(t, alloc.doubleFrees)
	assert.Equal(t, 23, alloc.frees)
}

func TestDestroy_Twice(t *testing.T) {
	t.Parallel()

	alloc := newCountingAllocator()
	f := NewFactory(WithAllocator(alloc))
	e := f.Wrap(f.New("inner"), "outer")

	e.Destroy()
	e.Destroy()
	assert.Zero(t, alloc.doubleFrees)
	assert.Equal(t, 4, alloc.frees)
}

func TestDestroy_NilAndSentinels(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { Destroy(nil) })
	Destroy(OutOfMemory)
	Destroy(Empty)
	assert.Equal(t, "Out of memory", OutOfMemory.Message())
	assert.Equal(t, "<Empty>", Empty.Message())
	assert.Equal(t, KindEmpty, Empty.Kind())
}

func TestDestroy_ChainEndingInEmpty(t *testing.T) {
	t.Parallel()

	alloc := newCountingAllocator()
	f := NewFactory(WithAllocator(alloc))
	e := f.Wrap(f.Wrap(nil, "inner"), "outer")

	Destroy(e)
	assert.Zero(t, alloc.outstanding())
	assert.Nil(t, Empty.Cause())
}

func TestDestroy_DeepChain(t *testing.T) {
	t.Parallel()

	alloc := newCountingAllocator()
	f := NewFactory(WithAllocator(alloc))
	var e *Error
	for range 100_000 {
		e = f.WrapStatic(e, "x")
	}
	assert.NotPanics(t, func() { Destroy(e) })
	assert.Zero(t, alloc.outstanding())
}
