// This file wires decimalcore's Prometheus instrumentation: counters for
// which kernel a dispatch chose and a histogram of operation latency,
// exposed to internal/server's /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry bundles every metric deccalc exports, so call sites pass one
// value instead of a handful of package-level globals.
type Registry struct {
	MulDispatch *prometheus.CounterVec
	DivDispatch *prometheus.CounterVec
	OpDuration  *prometheus.HistogramVec
	NewtonSteps prometheus.Histogram
	Memory      *MemoryCollector
}

// NewRegistry builds a Registry and registers every metric with reg,
// including live runtime.MemStats gauges sampled on every /metrics scrape.
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		MulDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "deccalc",
			Name:      "multiply_dispatch_total",
			Help:      "Count of multiply operations by kernel chosen.",
		}, []string{"kernel"}),
		DivDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "deccalc",
			Name:      "divide_dispatch_total",
			Help:      "Count of divide operations by kernel chosen.",
		}, []string{"kernel"}),
		OpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "deccalc",
			Name:      "operation_duration_seconds",
			Help:      "Latency of a single decimal.Uint operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		NewtonSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "deccalc",
			Name:      "newton_reciprocal_steps",
			Help:      "Number of Newton-doubling steps the reciprocal divider ran.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10, 12, 16},
		}),
		Memory: NewMemoryCollector(),
	}
	reg.MustRegister(r.MulDispatch, r.DivDispatch, r.OpDuration, r.NewtonSteps)
	r.registerMemoryGauges(reg)
	return r
}

// registerMemoryGauges wires r.Memory's runtime.MemStats snapshot as gauges
// that sample fresh on every scrape, so /metrics always reflects current
// heap pressure without a separate collection goroutine.
func (r *Registry) registerMemoryGauges(reg prometheus.Registerer) {
	gaugeFunc := func(name, help string, read func(MemorySnapshot) float64) prometheus.GaugeFunc {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "deccalc",
			Subsystem: "memory",
			Name:      name,
			Help:      help,
		}, func() float64 { return read(r.Memory.Snapshot()) })
	}

	reg.MustRegister(
		gaugeFunc("heap_alloc_bytes", "Bytes in use by the application heap.", func(s MemorySnapshot) float64 { return float64(s.HeapAlloc) }),
		gaugeFunc("heap_sys_bytes", "Bytes obtained from the OS for the heap.", func(s MemorySnapshot) float64 { return float64(s.HeapSys) }),
		gaugeFunc("sys_bytes", "Total bytes obtained from the OS.", func(s MemorySnapshot) float64 { return float64(s.Sys) }),
		gaugeFunc("heap_objects", "Number of allocated heap objects.", func(s MemorySnapshot) float64 { return float64(s.HeapObjects) }),
		gaugeFunc("gc_pause_total_seconds", "Cumulative GC pause time in seconds.", func(s MemorySnapshot) float64 { return float64(s.PauseTotalNs) / 1e9 }),
		gaugeFunc("gc_cycles_total", "Number of completed garbage collection cycles.", func(s MemorySnapshot) float64 { return float64(s.NumGC) }),
	)
}

// KernelLabel reports which multiply/divide kernel a dispatch at the given
// operand size (in limbs) would choose, against threshold T — the same
// rule internal/decimal's mul/divModLimbs dispatch uses.
func KernelLabel(operandLimbs, threshold int) string {
	if operandLimbs <= threshold {
		return "schoolbook"
	}
	return "fft_or_newton"
}
