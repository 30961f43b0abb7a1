package calibration

import (
	"testing"
	"time"

	"github.com/agbru/fibcalc/internal/config"
)

func TestRunPicksLowestDuration(t *testing.T) {
	// Benchmark stub: pretend threshold 64 is fastest.
	bench := func(threshold int) time.Duration {
		if threshold == 64 {
			return time.Microsecond
		}
		return time.Duration(threshold) * time.Millisecond
	}

	best, results := Run(bench)

	if best != 64 {
		t.Fatalf("best = %d, want 64", best)
	}
	if len(results) != len(candidateThresholds()) {
		t.Fatalf("got %d results, want %d", len(results), len(candidateThresholds()))
	}
}

func TestApplyToSetsThreshold(t *testing.T) {
	cfg := ApplyTo(config.AppConfig{}, func(threshold int) time.Duration {
		return time.Duration(threshold) * time.Microsecond
	})
	if cfg.Threshold != candidateThresholds()[0] {
		t.Fatalf("Threshold = %d, want the fastest (lowest) candidate %d", cfg.Threshold, candidateThresholds()[0])
	}
}
