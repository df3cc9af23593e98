package errchain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOutOfMemory(t *testing.T) {
	t.Parallel()

	assert.False(t, IsOutOfMemory(nil))
	assert.True(t, IsOutOfMemory(OutOfMemory))
	assert.True(t, IsOutOfMemory(fmt.Errorf("ctx: %w", OutOfMemory)))
	assert.True(t, IsOutOfMemory(Wrap(OutOfMemory, "while loading")))
	assert.False(t, IsOutOfMemory(New("x")))
	assert.False(t, IsOutOfMemory(errors.New("Out of memory")), "message text alone does not match")
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.False(t, IsEmpty(nil))
	assert.True(t, IsEmpty(Empty))
	assert.True(t, IsEmpty(NewBytes(nil)))
	assert.True(t, IsEmpty(Wrap(nil, "outer")))
	assert.False(t, IsEmpty(New("")), "an empty message is not the Empty sentinel")
	assert.True(t, IsEmpty(errors.Join(errors.New("a"), Empty)))
}

func TestIsSentinel(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSentinel(OutOfMemory))
	assert.True(t, IsSentinel(Empty))
	assert.False(t, IsSentinel(New("x")))
	assert.False(t, IsSentinel(nil))
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	k, ok := KindOf(fmt.Errorf("x: %w", OutOfMemory))
	assert.True(t, ok)
	assert.Equal(t, KindOutOfMemory, k)

	k, ok = KindOf(New("x"))
	assert.True(t, ok)
	assert.Equal(t, KindDetailed, k)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	_, ok = KindOf(nil)
	assert.False(t, ok)
}
