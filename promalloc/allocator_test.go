package promalloc

import (
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgx-io/errchain"
)

func TestAllocator_ReturnsToZeroAfterDestroy(t *testing.T) {
	reg := prom.NewRegistry()
	a := New(nil, reg)
	f := errchain.NewFactory(errchain.WithAllocator(a))

	e := f.Wrapf(f.Wrap(f.New("C"), "B"), "A%d", 1)
	st := a.Stats()
	assert.Equal(t, uint64(6), st.Allocs)
	assert.Equal(t, int64(6), st.Outstanding)
	assert.Positive(t, st.OutstandingBytes)

	errchain.Destroy(e)
	st = a.Stats()
	assert.Equal(t, uint64(6), st.Frees)
	assert.Zero(t, st.Outstanding)
	assert.Zero(t, st.OutstandingBytes)
	assert.InDelta(t, 0, testutil.ToFloat64(a.outstanding), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)
}

func TestAllocator_CountsFailures(t *testing.T) {
	failing := errchain.AllocatorFuncs{AllocFunc: func(int) ([]byte, bool) { return nil, false }}
	a := New(failing, nil)
	f := errchain.NewFactory(errchain.WithAllocator(a))

	assert.Same(t, errchain.OutOfMemory, f.New("x"))
	assert.Same(t, errchain.OutOfMemory, f.Static("y"))

	st := a.Stats()
	assert.Equal(t, uint64(2), st.Failures)
	assert.Zero(t, st.Allocs)
	assert.Zero(t, st.Outstanding)
}

func TestAllocator_DuplicateRegistrationPanics(t *testing.T) {
	reg := prom.NewRegistry()
	New(nil, reg)
	assert.Panics(t, func() { New(nil, reg) })
}
