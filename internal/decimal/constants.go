package decimal

// ─────────────────────────────────────────────────────────────────────────────
// Representation Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// The limb base is fixed at compile time. D=9 decimal digits per limb is the
// largest power-of-ten base that still leaves headroom for a single-limb
// carry when two limbs and a carry-in are summed in a 64-bit accumulator:
// (1e9-1) + (1e9-1) + 1 < 2^63.

const (
	// limbDigits is D: the number of decimal digits packed into one limb.
	limbDigits = 9

	// Base is B = 10^D, the radix of the internal representation.
	Base uint64 = 1_000_000_000

	// directParseDigits is the digit-count threshold below which Parse
	// builds the result directly into one or two limbs instead of
	// recursing (spec.md §4.6 step 3).
	directParseDigits = 18
)

// ─────────────────────────────────────────────────────────────────────────────
// Performance Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These are calibration constants, not contracts (spec.md §9): an
// implementation may retune them for its target hardware without changing
// any observable behavior. DefaultThreshold itself never changes at run
// time: internal/app passes a configured or calibrated threshold to
// SetThreshold at process start.

const (
	// DefaultThreshold is T, the crossover limb-count below which the
	// schoolbook multiply and long-division kernels beat the FFT engine
	// and the Newton reciprocal divider respectively.
	DefaultThreshold = 64

	// MaxTransformLength is L, the hard cap on FFT convolution length.
	// Operand lengths are capped at L/2 limbs (spec.md §9 "Open question":
	// this implementation takes the conservative reading that L bounds the
	// FFT length itself, not the operand length).
	MaxTransformLength = 1 << 22

	// MaxOperandLimbs is the largest operand length, in limbs, accepted by
	// any public decimal.Uint operation. Exceeding it is a
	// precondition-violation (spec.md §7).
	MaxOperandLimbs = MaxTransformLength / 2

	// MiniLimbSplit is s, the number of mini-limbs each limb is split into
	// before the FFT convolution (spec.md §4.3). The spec's own worked
	// example (s=2, B'=1e5) does not divide D=9 evenly, which would force
	// the two mini-digits per limb onto misaligned decimal-digit
	// boundaries; spec.md §9 explicitly sanctions picking "a smaller B'...
	// with a wider transform" instead, so this implementation uses s=3,
	// B'=1000: three evenly-sized 3-digit mini-limbs per limb, with every
	// mini-limb boundary also a multiple-of-3-digit decimal boundary.
	MiniLimbSplit = limbDigits / 3

	// MiniLimbBase is B' = 1000, the mini-limb radix used only inside the
	// FFT convolution step. A convolution of length N therefore bounds
	// output coefficients by N*(MiniLimbBase-1)^2, which is below 2^52 for
	// every N up to MaxTransformLength (4.19e6 * 998001 ≈ 4.18e12).
	MiniLimbBase uint64 = 1000
)
