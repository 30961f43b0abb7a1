package config

import "runtime"

// Threshold resolution chain (highest priority first):
//  1. CLI flags (--threshold)
//  2. Environment variables (DECCALC_THRESHOLD)
//  3. Cached calibration profile (AppConfig.CalibrationProfile)
//  4. Adaptive hardware estimation (this file)
//  5. The static default in decimal.DefaultThreshold

// ApplyAdaptiveThreshold fills cfg.Threshold with a hardware-based estimate
// when it is still at its zero default, preserving any user-specified
// override from flags, environment, or a calibration profile applied
// earlier in the chain.
func ApplyAdaptiveThreshold(cfg AppConfig) AppConfig {
	if cfg.Threshold == 0 {
		cfg.Threshold = EstimateOptimalThreshold()
	}
	return cfg
}

// EstimateOptimalThreshold provides a heuristic estimate of the schoolbook
// versus Big-Multiply/Newton-divider crossover point without running
// calibration benchmarks, based on core count (a proxy for cache size and
// available parallel headroom in the FFT engine).
func EstimateOptimalThreshold() int {
	switch numCPU := runtime.NumCPU(); {
	case numCPU <= 2:
		return 96 // fewer cores: schoolbook's cache-friendliness wins longer
	case numCPU <= 8:
		return 64 // the spec's default T
	default:
		return 48 // more cores: FFT's parallel headroom pays off sooner
	}
}
