// Package promalloc decorates an errchain.Allocator with Prometheus metrics.
//
// It answers the operational questions an allocator override is usually
// installed for: how many chain buffers are live, how many bytes they hold,
// and how often construction degraded to errchain.OutOfMemory.
package promalloc

import (
	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/xgx-io/errchain"
)

// Allocator forwards to another errchain.Allocator and records metrics.
type Allocator struct {
	next errchain.Allocator

	allocs           prom.Counter
	frees            prom.Counter
	failures         prom.Counter
	outstanding      prom.Gauge
	outstandingBytes prom.Gauge
}

// Stats is a point-in-time reading of the allocator metrics.
type Stats struct {
	Allocs           uint64
	Frees            uint64
	Failures         uint64
	Outstanding      int64
	OutstandingBytes int64
}

// New wraps next (errchain.HeapAllocator if nil) and registers its metrics
// with reg. A nil reg uses a private registry.
func New(next errchain.Allocator, reg prom.Registerer) *Allocator {
	if next == nil {
		next = errchain.HeapAllocator{}
	}
	if reg == nil {
		reg = prom.NewRegistry()
	}
	a := &Allocator{
		next: next,
		allocs: prom.NewCounter(prom.CounterOpts{
			Namespace: "errchain",
			Subsystem: "alloc",
			Name:      "allocations_total",
			Help:      "Successful allocations for error nodes and messages",
		}),
		frees: prom.NewCounter(prom.CounterOpts{
			Namespace: "errchain",
			Subsystem: "alloc",
			Name:      "frees_total",
			Help:      "Buffers returned by Destroy or failed constructions",
		}),
		failures: prom.NewCounter(prom.CounterOpts{
			Namespace: "errchain",
			Subsystem: "alloc",
			Name:      "failures_total",
			Help:      "Allocations that could not be satisfied",
		}),
		outstanding: prom.NewGauge(prom.GaugeOpts{
			Namespace: "errchain",
			Subsystem: "alloc",
			Name:      "outstanding_buffers",
			Help:      "Buffers currently held by live error chains",
		}),
		outstandingBytes: prom.NewGauge(prom.GaugeOpts{
			Namespace: "errchain",
			Subsystem: "alloc",
			Name:      "outstanding_bytes",
			Help:      "Bytes currently held by live error chains",
		}),
	}
	reg.MustRegister(a.allocs, a.frees, a.failures, a.outstanding, a.outstandingBytes)
	return a
}

// Alloc implements errchain.Allocator.
func (a *Allocator) Alloc(size int) ([]byte, bool) {
	buf, ok := a.next.Alloc(size)
	if !ok {
		a.failures.Inc()
		return nil, false
	}
	a.allocs.Inc()
	a.outstanding.Inc()
	a.outstandingBytes.Add(float64(len(buf)))
	return buf, true
}

// Free implements errchain.Allocator.
func (a *Allocator) Free(buf []byte) {
	a.frees.Inc()
	a.outstanding.Dec()
	a.outstandingBytes.Sub(float64(len(buf)))
	a.next.Free(buf)
}

// Stats reads the current metric values.
func (a *Allocator) Stats() Stats {
	return Stats{
		Allocs:           uint64(read(a.allocs)),
		Frees:            uint64(read(a.frees)),
		Failures:         uint64(read(a.failures)),
		Outstanding:      int64(read(a.outstanding)),
		OutstandingBytes: int64(read(a.outstandingBytes)),
	}
}

func read(m prom.Metric) float64 {
	var pb dto.Metric
	if err := m.Write(&pb); err != nil {
		return 0
	}
	if c := pb.GetCounter(); c != nil {
		return c.GetValue()
	}
	return pb.GetGauge().GetValue()
}

var _ errchain.Allocator = (*Allocator)(nil)
