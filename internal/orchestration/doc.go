// Package orchestration runs a decimal operation through more than one
// kernel concurrently (schoolbook vs FFT multiply, schoolbook vs Newton
// divide) and compares the results, so a consistency fault between kernels
// surfaces as a reported mismatch instead of a silently wrong answer. It
// decouples business logic from presentation via the ProgressReporter and
// ResultPresenter interfaces.
package orchestration
