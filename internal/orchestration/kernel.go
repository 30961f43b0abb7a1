package orchestration

import (
	"context"

	"github.com/agbru/fibcalc/internal/decimal"
	"github.com/agbru/fibcalc/internal/progress"
)

// Kernel computes one operation (multiply or divide) over a fixed pair of
// operands via one specific implementation path, reporting its own
// coarse-grained progress (0 at start, 1 at completion — the underlying
// decimal kernels are not internally decomposable into finer steps).
type Kernel interface {
	Name() string
	Compute(ctx context.Context, progressChan chan<- progress.ProgressUpdate, idx int, a, b decimal.Uint) (decimal.Uint, error)
}

// KernelFunc adapts a plain function into a Kernel.
type KernelFunc struct {
	name string
	fn   func(a, b decimal.Uint) (decimal.Uint, error)
}

// NewKernelFunc builds a Kernel named name that calls fn.
func NewKernelFunc(name string, fn func(a, b decimal.Uint) (decimal.Uint, error)) KernelFunc {
	return KernelFunc{name: name, fn: fn}
}

func (k KernelFunc) Name() string { return k.name }

func (k KernelFunc) Compute(ctx context.Context, progressChan chan<- progress.ProgressUpdate, idx int, a, b decimal.Uint) (decimal.Uint, error) {
	send := func(v float64) {
		select {
		case progressChan <- progress.ProgressUpdate{CalculatorIndex: idx, Value: v}:
		case <-ctx.Done():
		}
	}
	send(0)
	if err := ctx.Err(); err != nil {
		return decimal.Uint{}, err
	}
	result, err := k.fn(a, b)
	send(1)
	return result, err
}

// MultiplyKernels returns the two multiply kernels being cross-checked:
// schoolbook and FFT.
func MultiplyKernels() []Kernel {
	return []Kernel{
		NewKernelFunc("schoolbook", func(a, b decimal.Uint) (decimal.Uint, error) { return a.MulViaSchoolbook(b) }),
		NewKernelFunc("fft", func(a, b decimal.Uint) (decimal.Uint, error) { return a.MulViaFFT(b) }),
	}
}

// DivideKernels returns the two divide kernels being cross-checked:
// schoolbook (Knuth Algorithm D) and Newton reciprocal iteration. Only the
// quotient is compared; the remainder follows deterministically once the
// quotient agrees.
func DivideKernels() []Kernel {
	return []Kernel{
		NewKernelFunc("schoolbook", func(a, b decimal.Uint) (decimal.Uint, error) {
			q, _, err := a.DivModViaSchoolbook(b)
			return q, err
		}),
		NewKernelFunc("newton", func(a, b decimal.Uint) (decimal.Uint, error) {
			q, _, err := a.DivModViaNewton(b)
			return q, err
		}),
	}
}
