package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/agbru/fibcalc/internal/decimal"
	"github.com/agbru/fibcalc/internal/progress"
)

// mockDeadlockKernel simulates various kernel behaviors for deadlock testing.
type mockDeadlockKernel struct {
	name     string
	behavior string // "instant", "slow", "error", "progress_flood"
	delay    time.Duration
}

func (m *mockDeadlockKernel) Name() string { return m.name }

func (m *mockDeadlockKernel) Compute(ctx context.Context, progressChan chan<- progress.ProgressUpdate, idx int, a, b decimal.Uint) (decimal.Uint, error) {
	one := decimal.FromUint64(1)
	switch m.behavior {
	case "instant":
		return one, nil
	case "slow":
		for i := 0; i < 100; i++ {
			select {
			case <-ctx.Done():
				return decimal.Uint{}, ctx.Err()
			case progressChan <- progress.ProgressUpdate{CalculatorIndex: idx, Value: float64(i) / 100.0}:
			default: // non-blocking
			}
			time.Sleep(m.delay)
		}
		return one, nil
	case "error":
		return decimal.Uint{}, fmt.Errorf("simulated error")
	case "progress_flood":
		for i := 0; i < 10000; i++ {
			select {
			case progressChan <- progress.ProgressUpdate{CalculatorIndex: idx, Value: float64(i) / 10000.0}:
			default:
			}
		}
		return one, nil
	}
	return one, nil
}

// mockProgressReporter that just drains the channel.
type mockProgressReporter struct{}

func (m *mockProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalcs int, out io.Writer) {
	defer wg.Done()
	for range progressChan {
	} // drain until closed
}

// TestOrchestrationNoDeadlock_MixedBehaviors verifies that
// ExecuteKernelComparison completes without deadlocking under various
// kernel behavior combinations.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	testCases := []struct {
		name    string
		kernels []Kernel
	}{
		{
			name: "all_instant",
			kernels: []Kernel{
				&mockDeadlockKernel{name: "c1", behavior: "instant"},
				&mockDeadlockKernel{name: "c2", behavior: "instant"},
				&mockDeadlockKernel{name: "c3", behavior: "instant"},
			},
		},
		{
			name: "mixed_instant_and_slow",
			kernels: []Kernel{
				&mockDeadlockKernel{name: "fast", behavior: "instant"},
				&mockDeadlockKernel{name: "slow", behavior: "slow", delay: time.Millisecond},
			},
		},
		{
			name: "mixed_with_errors",
			kernels: []Kernel{
				&mockDeadlockKernel{name: "ok", behavior: "instant"},
				&mockDeadlockKernel{name: "err", behavior: "error"},
			},
		},
		{
			name: "progress_flood",
			kernels: []Kernel{
				&mockDeadlockKernel{name: "flood1", behavior: "progress_flood"},
				&mockDeadlockKernel{name: "flood2", behavior: "progress_flood"},
			},
		},
		{
			name: "single_kernel",
			kernels: []Kernel{
				&mockDeadlockKernel{name: "solo", behavior: "instant"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			one := decimal.FromUint64(1)
			reporter := &mockProgressReporter{}

			done := make(chan struct{})
			go func() {
				defer close(done)
				ExecuteKernelComparison(ctx, tc.kernels, one, one, reporter, io.Discard)
			}()

			select {
			case <-done:
				// Success - no deadlock
			case <-time.After(10 * time.Second):
				t.Fatal("DEADLOCK: ExecuteKernelComparison did not complete within timeout")
			}
		})
	}
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that cancelling
// the context during execution does not cause a deadlock.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	kernels := []Kernel{
		&mockDeadlockKernel{name: "slow1", behavior: "slow", delay: 100 * time.Millisecond},
		&mockDeadlockKernel{name: "slow2", behavior: "slow", delay: 100 * time.Millisecond},
	}

	one := decimal.FromUint64(1)
	reporter := &mockProgressReporter{}

	done := make(chan struct{})
	go func() {
		defer close(done)
		ExecuteKernelComparison(ctx, kernels, one, one, reporter, io.Discard)
	}()

	// Cancel after a short delay
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
		// Success
	case <-time.After(5 * time.Second):
		t.Fatal("DEADLOCK after context cancellation")
	}
}
