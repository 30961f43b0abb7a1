package decimal

import "sync/atomic"

// validityChecks is the runtime form of spec.md §6's compile-time
// "validity-check-enable" switch: Go has no preprocessor, so the switch is a
// package-level flag internal/config flips once at process start rather
// than a build tag. Defaults to enabled, matching a debug build of the
// source design.
var validityChecks atomic.Bool

func init() {
	validityChecks.Store(true)
}

// SetValidityChecks turns Uint's precondition assertions (Sub requiring
// a >= b, Div/Mod requiring a nonzero divisor and in-range operands) on or
// off for the whole process. internal/app's Run calls this once with the
// resolved config; it is not meant to be toggled mid-computation.
func SetValidityChecks(enabled bool) {
	validityChecks.Store(enabled)
}

// ValidityChecksEnabled reports the current setting.
func ValidityChecksEnabled() bool {
	return validityChecks.Load()
}

// activeThreshold is the runtime crossover threshold Mul and DivMod
// dispatch on, seeded from DefaultThreshold. internal/app sets it via
// SetThreshold at process start from the resolved config, and once per
// candidate threshold during a --calibrate run.
var activeThreshold atomic.Int32

func init() {
	activeThreshold.Store(int32(DefaultThreshold))
}

// SetThreshold overrides the schoolbook/FFT (and schoolbook/Newton)
// crossover threshold for the whole process. A non-positive value is
// ignored, leaving the previous threshold in place.
func SetThreshold(t int) {
	if t > 0 {
		activeThreshold.Store(int32(t))
	}
}

// Threshold returns the threshold currently used by Mul and DivMod.
func Threshold() int {
	return int(activeThreshold.Load())
}
