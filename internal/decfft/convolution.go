package decfft

import (
	"math"

	"github.com/agbru/fibcalc/internal/logging"
)

var log = logging.NewDefaultLogger()

// Convolve multiplies two base-1e9 limb vectors (little-endian, canonical
// or not — callers need not normalize first) via the FFT Engine of
// spec.md §4.3, returning the product's limbs, little-endian, possibly
// with zero top limbs that the caller normalizes away (decfft
// leaves that to internal/decimal's Big Multiply dispatch, per the
// division of labor in spec.md's component overview).
//
// Convolve panics if the required transform length would exceed
// MaxTransformLength; callers (internal/decimal's mul dispatch) are
// expected to keep operands within MaxOperandLimbs so this never happens
// in practice.
func Convolve(x, y []uint32) []uint32 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}

	cx := splitMiniLimbs(x)
	cy := splitMiniLimbs(y)

	resultMiniLimbs := len(cx) + len(cy) - 1
	n := nextPow2(resultMiniLimbs)
	if n > MaxTransformLength {
		panic("decfft: convolution length exceeds MaxTransformLength")
	}

	table := twiddles(n)

	fx := acquireComplex(n)
	defer releaseComplex(fx)
	fy := acquireComplex(n)
	defer releaseComplex(fy)

	for i, c := range cx {
		fx[i] = complex(float64(c), 0)
	}
	for i, c := range cy {
		fy[i] = complex(float64(c), 0)
	}

	transform(fx, table, false)
	transform(fy, table, false)
	for i := range fx {
		fx[i] *= fy[i]
	}
	transform(fx, table, true)

	// One guard mini-limb above resultMiniLimbs absorbs the final carry:
	// two numbers of len(cx) and len(cy) mini-digits have a product of at
	// most len(cx)+len(cy) = resultMiniLimbs+1 mini-digits.
	rounded := acquireUint64(resultMiniLimbs + 1)
	defer releaseUint64(rounded)
	maxErr := 0.0
	for i := 0; i < resultMiniLimbs; i++ {
		v := real(fx[i])
		r := math.Round(v)
		if e := math.Abs(v - r); e > maxErr {
			maxErr = e
		}
		if r < 0 {
			r = 0
		}
		rounded[i] = uint64(r)
	}
	rounded[resultMiniLimbs] = 0

	if bound := roundoffBound(n); maxErr > bound {
		log.Debug("fft roundoff exceeded proven bound",
			logging.Float64("maxErr", maxErr),
			logging.Float64("bound", bound),
			logging.Int("transformLength", n))
	}

	carryPropagate(rounded)
	return packMiniLimbs(rounded)
}

// splitMiniLimbs expands a little-endian base-1e9 limb vector into a
// little-endian base-MiniLimbBase mini-limb coefficient array, three
// mini-limbs per limb, low-to-high (spec.md §4.3 step 1).
func splitMiniLimbs(limbs []uint32) []uint64 {
	out := make([]uint64, 0, len(limbs)*MiniLimbsPerLimb)
	for _, l := range limbs {
		v := uint64(l)
		for k := 0; k < MiniLimbsPerLimb; k++ {
			out = append(out, v%MiniLimbBase)
			v /= MiniLimbBase
		}
	}
	return out
}

// carryPropagate normalizes a mini-limb coefficient array in place so
// every entry is < MiniLimbBase, propagating overflow upward
// (spec.md §4.3 step 6). c must carry one guard slot above the highest
// coefficient that can hold nonzero convolution output, or the final
// carry has nowhere to go.
func carryPropagate(c []uint64) {
	var carry uint64
	for i := range c {
		v := c[i] + carry
		c[i] = v % MiniLimbBase
		carry = v / MiniLimbBase
	}
	if carry != 0 {
		panic("decfft: carry propagation overflowed guard limb")
	}
}

// packMiniLimbs regroups a carry-clean base-MiniLimbBase mini-limb array
// back into base-1e9 limbs, three mini-limbs per limb (spec.md §4.3 step
// 7). The mini-limb count need not be a multiple of MiniLimbsPerLimb; the
// final partial group is zero-padded.
func packMiniLimbs(c []uint64) []uint32 {
	nLimbs := (len(c) + MiniLimbsPerLimb - 1) / MiniLimbsPerLimb
	out := make([]uint32, nLimbs)
	for i := 0; i < nLimbs; i++ {
		var limb uint64
		mul := uint64(1)
		for k := 0; k < MiniLimbsPerLimb; k++ {
			idx := i*MiniLimbsPerLimb + k
			if idx < len(c) {
				limb += c[idx] * mul
			}
			mul *= MiniLimbBase
		}
		out[i] = uint32(limb)
	}
	return out
}
