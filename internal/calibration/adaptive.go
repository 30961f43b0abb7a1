// This file implements threshold calibration: benchmarking decimal.Uint's
// multiply at a range of crossover thresholds on representative operand
// sizes and picking the one with the best observed wall-clock time.

package calibration

import (
	"time"

	"github.com/agbru/fibcalc/internal/config"
)

// candidateThresholds returns the fixed list of crossover thresholds Run
// benchmarks; the list does not depend on core count.
func candidateThresholds() []int {
	return []int{16, 32, 48, 64, 96, 128, 192, 256}
}

// result is one benchmarked threshold's outcome.
type result struct {
	Threshold int
	Duration  time.Duration
}

// Run benchmarks multiply at a representative large operand size across
// candidateThresholds and returns the threshold with the lowest duration,
// along with the full result table for diagnostics (internal/app prints it
// through PrintResults under --calibrate).
func Run(benchmarkMul func(threshold int) time.Duration) (best int, results []result) {
	results = make([]result, 0, len(candidateThresholds()))
	bestDuration := time.Duration(1<<63 - 1)
	for _, t := range candidateThresholds() {
		d := benchmarkMul(t)
		results = append(results, result{Threshold: t, Duration: d})
		if d < bestDuration {
			bestDuration = d
			best = t
		}
	}
	return best, results
}

// ApplyTo runs calibration and writes the winning threshold into cfg, in
// place of config.ApplyAdaptiveThreshold's hardware heuristic. The
// --calibrate path in internal/app calls Run directly, not ApplyTo.
func ApplyTo(cfg config.AppConfig, benchmarkMul func(threshold int) time.Duration) config.AppConfig {
	best, _ := Run(benchmarkMul)
	cfg.Threshold = best
	return cfg
}
