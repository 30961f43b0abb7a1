package decimal

import "github.com/agbru/fibcalc/internal/decerrors"

// This file exposes the two multiply kernels and the two divide paths
// individually, bypassing mul/divModLimbs's threshold dispatch. Both
// internal/orchestration's kernel-consistency comparison and this
// package's own property tests rely on being able to force a specific
// kernel rather than whichever one the threshold would pick, since the
// point of the comparison is to prove the kernels agree regardless of
// operand size.

// MulViaSchoolbook multiplies using the schoolbook kernel unconditionally,
// regardless of operand size.
func (u Uint) MulViaSchoolbook(other Uint) (Uint, error) {
	if err := checkOperandSize(u.v, other.v); err != nil {
		return Uint{}, err
	}
	return Uint{v: schoolbookMul(u.v, other.v)}, nil
}

// MulViaFFT multiplies using the FFT convolution kernel unconditionally,
// regardless of operand size.
func (u Uint) MulViaFFT(other Uint) (Uint, error) {
	if err := checkOperandSize(u.v, other.v); err != nil {
		return Uint{}, err
	}
	return Uint{v: fftMul(u.v, other.v)}, nil
}

// DivModViaSchoolbook divides using Knuth Algorithm D unconditionally,
// regardless of divisor size.
func (u Uint) DivModViaSchoolbook(other Uint) (q, r Uint, err error) {
	if err := checkOperandSize(u.v, other.v); err != nil {
		return Uint{}, Uint{}, err
	}
	if other.IsZero() {
		return Uint{}, Uint{}, decerrors.PreconditionViolationError{Op: "DivModViaSchoolbook", Reason: "division by zero"}
	}
	qv, rv := schoolbookDivMod(u.v, other.v)
	return Uint{v: qv}, Uint{v: rv}, nil
}

// DivModViaNewton divides using the Newton reciprocal iteration
// unconditionally, regardless of divisor size. It duplicates
// divModLimbs's Newton branch rather than calling it, since divModLimbs
// always routes small divisors to schoolbookDivMod and this method exists
// specifically to force the Newton path for comparison.
func (u Uint) DivModViaNewton(other Uint) (q, r Uint, err error) {
	if err := checkOperandSize(u.v, other.v); err != nil {
		return Uint{}, Uint{}, err
	}
	if other.IsZero() {
		return Uint{}, Uint{}, decerrors.PreconditionViolationError{Op: "DivModViaNewton", Reason: "division by zero"}
	}
	if cmp(u.v, other.v) < 0 {
		return Uint{}, Uint{v: u.v.clone().normalize()}, nil
	}

	n := len(other.v)
	p := len(u.v) - n + 2
	if p < 1 {
		p = 1
	}
	R := reciprocal(other.v, p)
	aR := mul(u.v, R, DefaultThreshold)
	q0 := shiftLimbRight(aR, n+p)
	qb := mul(q0, other.v, DefaultThreshold)

	for cmp(qb, u.v) > 0 {
		q0 = subVV(q0, vector{1})
		qb = subVV(qb, other.v)
	}
	r0 := subVV(u.v, qb)
	for cmp(r0, other.v) >= 0 {
		r0 = subVV(r0, other.v)
		q0 = addVV(q0, vector{1})
	}

	return Uint{v: q0.normalize()}, Uint{v: r0.normalize()}, nil
}

// KernelLabel reports which kernel mul(a, b, threshold) would actually
// dispatch to, for metrics and diagnostic display.
func KernelLabel(a, b Uint, threshold int) string {
	small := len(a.v)
	if len(b.v) < small {
		small = len(b.v)
	}
	if small <= threshold {
		return "schoolbook"
	}
	return "fft"
}
