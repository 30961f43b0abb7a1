// Package decfft implements the FFT Engine of spec.md §4.3: a complex
// split-radix/Cooley-Tukey convolution used by internal/decimal's Big
// Multiply dispatch above the schoolbook crossover threshold.
//
// The package is architecturally grounded on the teacher's internal/bigfft
// (thread-local sync.Pool workspace arenas keyed by size class, a combined
// "state" struct bundling one convolution's scratch buffers, strict
// acquire/release pairing) but not algorithmically: bigfft convolves binary
// math/big limbs via a Fermat-number NTT reached through go:linkname into
// math/big's internals, which has no decimal analogue. decfft instead
// performs the double-precision complex FFT spec.md §4.3 itself describes,
// over decimal limbs split into smaller mini-limbs so convolution
// coefficients stay exactly representable in a float64 mantissa.
package decfft
