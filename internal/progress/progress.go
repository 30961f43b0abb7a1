// Package progress defines the update type that flows from a running
// kernel comparison or batch worker to whatever is displaying it (the CLI's
// spinner and progress bar), keeping that wire format
// independent of both ends.
package progress

// ProgressUpdate reports one worker's fractional progress (0.0..1.0)
// toward completion. CalculatorIndex names the slot this update belongs to
// (a kernel-comparison leg or a batch worker), matching the index scheme
// format.ProgressState tracks.
type ProgressUpdate struct {
	CalculatorIndex int
	Value           float64
}
