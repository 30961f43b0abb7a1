package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/agbru/fibcalc/internal/config"
	"github.com/agbru/fibcalc/internal/orchestration"
)

// TestPrintExecutionConfig tests the PrintExecutionConfig function.
func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := config.AppConfig{
		Threshold: 64,
		SIMDTier:  "auto",
		Timeout:   time.Minute,
	}

	PrintExecutionConfig(cfg, &buf)

	output := buf.String()
	if output == "" {
		t.Error("PrintExecutionConfig should produce output")
	}
	if len(output) < 50 {
		t.Errorf("PrintExecutionConfig output seems too short: %s", output)
	}
}

// TestPrintExecutionMode tests the PrintExecutionMode function.
func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()

	t.Run("Single kernel mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		kernels := orchestration.MultiplyKernels()[:1]

		PrintExecutionMode(kernels, &buf)

		output := buf.String()
		if output == "" {
			t.Error("PrintExecutionMode should produce output")
		}
	})

	t.Run("Multiple kernels mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		kernels := orchestration.MultiplyKernels()

		PrintExecutionMode(kernels, &buf)

		output := buf.String()
		if output == "" {
			t.Error("PrintExecutionMode should produce output for multiple kernels")
		}
	})
}
