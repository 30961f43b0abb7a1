package orchestration

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/agbru/fibcalc/internal/decimal"
	apperrors "github.com/agbru/fibcalc/internal/errors"
	"github.com/agbru/fibcalc/internal/progress"
)

// MockResultPresenter is a mock implementation of ComparisonPresenter for testing.
type MockResultPresenter struct{}

func (MockResultPresenter) PresentComparisonTable(results []CalculationResult, out io.Writer) {}
func (MockResultPresenter) PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer) {
}
func (MockResultPresenter) FormatDuration(d time.Duration) string { return d.String() }
func (MockResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.ExitErrorGeneric
}

// mockKernel is a mock implementation of Kernel used for testing the
// orchestration logic without invoking real arithmetic kernels.
type mockKernel struct {
	name string
	fn   func(a, b decimal.Uint) (decimal.Uint, error)
}

func (m *mockKernel) Name() string { return m.name }

func (m *mockKernel) Compute(ctx context.Context, progressChan chan<- progress.ProgressUpdate, idx int, a, b decimal.Uint) (decimal.Uint, error) {
	if progressChan != nil {
		progressChan <- progress.ProgressUpdate{CalculatorIndex: idx, Value: 1}
	}
	return m.fn(a, b)
}

// TestExecuteKernelComparison verifies that the orchestrator correctly runs
// kernels and aggregates their results.
func TestExecuteKernelComparison(t *testing.T) {
	t.Parallel()
	one := decimal.FromUint64(1)

	tests := []struct {
		name        string
		kernels     []Kernel
		expectedLen int
		expectError bool
	}{
		{
			name: "Single success",
			kernels: []Kernel{
				&mockKernel{name: "mock", fn: func(a, b decimal.Uint) (decimal.Uint, error) { return one, nil }},
			},
			expectedLen: 1,
			expectError: false,
		},
		{
			name: "Single failure",
			kernels: []Kernel{
				&mockKernel{name: "mock", fn: func(a, b decimal.Uint) (decimal.Uint, error) { return decimal.Uint{}, errors.New("mock error") }},
			},
			expectedLen: 1,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			results := ExecuteKernelComparison(context.Background(), tt.kernels, one, one, NullProgressReporter{}, &DiscardWriter{})
			if len(results) != tt.expectedLen {
				t.Errorf("expected %d results, got %d", tt.expectedLen, len(results))
			}
			if tt.expectError {
				if results[0].Err == nil {
					t.Errorf("expected error, got nil")
				}
			} else if results[0].Err != nil {
				t.Errorf("unexpected error: %v", results[0].Err)
			}
		})
	}
}

// TestAnalyzeComparisonResults verifies the logic for comparing results from
// multiple kernels. It checks for consistent results, handling of failures,
// and detection of mismatches.
func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	five := decimal.FromUint64(5)
	six := decimal.FromUint64(6)

	tests := []struct {
		name           string
		results        []CalculationResult
		expectedStatus int
	}{
		{
			name: "All success",
			results: []CalculationResult{
				{Name: "schoolbook", Result: five, Duration: time.Millisecond, Err: nil},
				{Name: "fft", Result: five, Duration: time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitSuccess,
		},
		{
			name: "Mismatch",
			results: []CalculationResult{
				{Name: "schoolbook", Result: five, Duration: time.Millisecond, Err: nil},
				{Name: "fft", Result: six, Duration: time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
		},
		{
			name: "All failure",
			results: []CalculationResult{
				{Name: "schoolbook", Duration: time.Millisecond, Err: errors.New("fail")},
				{Name: "fft", Duration: time.Millisecond, Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitErrorGeneric,
		},
		{
			name: "Mixed success/failure",
			results: []CalculationResult{
				{Name: "schoolbook", Result: five, Duration: time.Millisecond, Err: nil},
				{Name: "fft", Duration: time.Millisecond, Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status := AnalyzeComparisonResults(tt.results, PresentationOptions{}, MockResultPresenter{}, &DiscardWriter{})
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
		})
	}
}

// DiscardWriter is a helper that implements io.Writer and discards all data.
type DiscardWriter struct{}

func (d *DiscardWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}
