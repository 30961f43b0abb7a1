package cli

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/agbru/fibcalc/internal/decimal"
	"github.com/agbru/fibcalc/internal/progress"
	"github.com/agbru/fibcalc/internal/ui"
	"github.com/briandowns/spinner"
)

// MockSpinner for testing
type MockSpinner struct {
	started bool
	stopped bool
	suffix  string
}

func (m *MockSpinner) Start() {
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.suffix = suffix
}

func TestDisplayResult(t *testing.T) {
	ui.InitTheme(false)

	big, err := decimal.FromString(strings.Repeat("7", 200))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	tests := []struct {
		name      string
		result    decimal.Uint
		expr      string
		duration  time.Duration
		negative  bool
		verbose   bool
		details   bool
		showValue bool
		contains  []string
	}{
		{
			name:      "Details only",
			result:    decimal.FromUint64(12345),
			expr:      "10000 + 2345",
			duration:  time.Millisecond,
			details:   true,
			showValue: false,
			contains:  []string{"Detailed result analysis", "Calculation time", "Number of digits"},
		},
		{
			name:      "ShowValue Output",
			result:    decimal.FromUint64(12345),
			expr:      "10000 + 2345",
			duration:  time.Millisecond,
			details:   false,
			showValue: true,
			contains:  []string{"Calculated value", "10000 + 2345 =", "12,345"},
		},
		{
			name:      "Negative ShowValue Output",
			result:    decimal.FromUint64(12345),
			expr:      "2345 - 10000",
			duration:  time.Millisecond,
			negative:  true,
			details:   false,
			showValue: true,
			contains:  []string{"2345 - 10000 =", "-12,345"},
		},
		{
			name:      "Truncated Output",
			result:    big,
			expr:      "a * b",
			duration:  time.Millisecond,
			details:   false,
			showValue: true,
			contains:  []string{"(truncated)", "Tip: use"},
		},
		{
			name:      "Negative Truncated Output",
			result:    big,
			expr:      "a * -b",
			duration:  time.Millisecond,
			negative:  true,
			details:   false,
			showValue: true,
			contains:  []string{"-777", "(truncated)"},
		},
		{
			name:      "Verbose Output",
			result:    big,
			expr:      "a * b",
			duration:  time.Millisecond,
			verbose:   true,
			details:   false,
			showValue: true,
			contains:  []string{"a * b ="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayResult(tt.result, tt.expr, tt.duration, tt.negative, tt.verbose, tt.details, tt.showValue, &buf)
			output := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(output, s) {
					t.Errorf("Expected output to contain %q, but got:\n%s", s, output)
				}
			}
		})
	}
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
}

func TestColors(t *testing.T) {
	ui.InitTheme(false)

	_ = ui.ColorReset()
	_ = ui.ColorRed()
	_ = ui.ColorGreen()
	_ = ui.ColorYellow()
	_ = ui.ColorBlue()
	_ = ui.ColorMagenta()
	_ = ui.ColorCyan()
	_ = ui.ColorBold()
	_ = ui.ColorUnderline()
}

func TestDisplayProgress(t *testing.T) {
	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()

	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner {
		return mockS
	}

	var wg sync.WaitGroup
	wg.Add(1)

	progressChan := make(chan progress.ProgressUpdate)
	out := io.Discard

	go func() {
		progressChan <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
		time.Sleep(10 * time.Millisecond)
		close(progressChan)
	}()

	DisplayProgress(&wg, progressChan, 1, out)
	wg.Wait()

	if !mockS.started {
		t.Error("Spinner should have started")
	}
	if !mockS.stopped {
		t.Error("Spinner should have stopped")
	}
}

func TestDisplayProgress_ZeroCalculators(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan progress.ProgressUpdate)
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
}

func TestCLIColorProvider(t *testing.T) {
	ui.InitTheme(false)
	var c CLIColorProvider
	if c.Red() == "" && c.Yellow() == "" && c.Reset() == "" {
		t.Skip("theme produced empty codes (colors disabled in this environment)")
	}
}
