package decfft

// Configuration constants for the FFT convolution (spec.md §4.3).

const (
	// MiniLimbBase is B', the radix each base-1e9 limb is split into
	// before transform. 1000 divides the 9-digit limb width evenly (three
	// 3-digit mini-limbs per limb), so mini-limb boundaries never cross a
	// limb boundary — spec.md §9 explicitly allows trading the spec's own
	// worked example (B'=1e5) for "a smaller B'... with a wider transform"
	// when that keeps the implementation simpler and the roundoff bound
	// easier to prove.
	MiniLimbBase uint64 = 1000

	// MiniLimbsPerLimb is s, the number of mini-limbs one base-1e9 limb
	// splits into.
	MiniLimbsPerLimb = 3

	// MaxTransformLength is L, the hard cap on FFT convolution length
	// (spec.md §4.3). Requesting a convolution that would need a longer
	// transform is a contract violation the caller must avoid.
	MaxTransformLength = 1 << 22
)

// roundoffBound returns the provable upper bound (spec.md §4.3
// "Correctness bound") on the sum of per-coefficient rounding error for a
// convolution of the given transform length. Coefficients before rounding
// are bounded by n*(MiniLimbBase-1)^2; IEEE-754 double rounding error per
// operation is below 2^-52 relative, and the FFT's error grows as
// O(log n) relative to the coefficient magnitude, which is why
// MiniLimbBase is chosen small enough that even a generous constant-factor
// estimate stays under 0.5 for every n up to MaxTransformLength.
func roundoffBound(n int) float64 {
	coeff := float64(n) * float64(MiniLimbBase-1) * float64(MiniLimbBase-1)
	// Empirical constant-factor safety margin; at n = MaxTransformLength
	// the bound is about 0.0074.
	return coeff * 8 * epsilon64
}

const epsilon64 = 1.0 / (1 << 52)
