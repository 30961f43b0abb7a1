package decimal

import "github.com/agbru/fibcalc/internal/decfft"

// mul implements spec.md §4.4 Big Multiply: a deterministic, symmetric
// dispatch between the schoolbook kernel and the FFT engine keyed on the
// smaller operand's limb count.
func mul(x, y vector, threshold int) vector {
	if x.isZero() || y.isZero() {
		return nil
	}
	small := len(x)
	if len(y) < small {
		small = len(y)
	}
	if small <= threshold {
		return schoolbookMul(x, y)
	}
	return fftMul(x, y)
}

// fftMul multiplies via the FFT engine (spec.md §4.3), converting to and
// from the package-private []uint32 limb view internal/decfft operates on.
func fftMul(x, y vector) vector {
	out := decfft.Convolve([]uint32(x), []uint32(y))
	return vector(out).normalize()
}
