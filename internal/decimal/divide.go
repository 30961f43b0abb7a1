package decimal

// This file implements spec.md §4.5's Reciprocal Divider: a Newton
// iteration that computes a fixed-point approximation of Base^k/b and
// reduces division to a handful of Big Multiply calls plus a bounded
// multiply-correct-round loop, so division above the crossover threshold
// T costs O(mul(n)) instead of schoolbookDivMod's O(n*m).
//
// Scale bookkeeping deviates from spec.md §4.5 step 3's schematic
// "B^(|a|+1)" divisor in one respect: this implementation maintains the
// invariant "R approximates floor(Base^(n+h)/b)" for n=len(b) and a
// precision h that doubles toward p=len(a)-len(b)+2, and divides the
// a·R product by Base^(n+p) rather than Base^(len(a)+1). The two land
// within one limb of each other; since the correction loop in step 5 is
// exact and unconditional (it is a plain multiply-and-compare, not an
// approximation), the choice of scale only affects how many correction
// iterations run, never correctness.

// divModLimbs computes (q, r) such that a = q*b + r and 0 <= r < b, for
// canonical a, b with b != 0 (spec.md §4.5).
func divModLimbs(a, b vector) (q, r vector) {
	n := len(b)
	if n <= Threshold() {
		return schoolbookDivMod(a, b)
	}
	if cmp(a, b) < 0 {
		return nil, a.clone().normalize()
	}

	p := len(a) - n + 2
	if p < 1 {
		p = 1
	}

	R := reciprocal(b, p)

	// q0 = floor(a*R / Base^(n+p)), r0 = a - q0*b (spec.md §4.5 steps 3-4).
	aR := mul(a, R, DefaultThreshold)
	q0 := shiftLimbRight(aR, n+p)
	qb := mul(q0, b, DefaultThreshold)

	for cmp(qb, a) > 0 {
		q0 = subVV(q0, vector{1})
		qb = subVV(qb, b)
	}
	r0 := subVV(a, qb)
	for cmp(r0, b) >= 0 {
		r0 = subVV(r0, b)
		q0 = addVV(q0, vector{1})
	}

	return q0.normalize(), r0.normalize()
}

// reciprocal computes floor(Base^(n+p) / b) for n=len(b), via Newton
// iteration doubling the valid mini-precision h from a cheap seed derived
// from only b's top few limbs up to h=p (spec.md §4.5 step 2).
func reciprocal(b vector, p int) vector {
	n := len(b)

	seedLimbs := 4
	if seedLimbs > n {
		seedLimbs = n
	}
	bTop := topLimbs(b, seedLimbs)
	// X_h0 = floor(Base^(2*h0) / bTop) approximates floor(Base^(n+h0)/b):
	// bTop holds b's leading h0 digits, so b ≈ bTop * Base^(n-h0) and
	// Base^(2*h0)/bTop ≈ Base^(n+h0)/b.
	h := seedLimbs
	seedDividend := shiftLimbLeft(vector{1}, 2*h)
	X, _ := schoolbookDivMod(seedDividend, bTop)

	for h < p {
		hNew := 2 * h
		if hNew > p {
			hNew = p
		}
		X = newtonStep(b, n, X, h, hNew)
		h = hNew
	}
	return X
}

// newtonStep refines X, a reciprocal approximation valid to h digits
// (X ≈ floor(Base^(n+h)/b)), into an approximation valid to hNew digits
// (h <= hNew <= 2h): X_new = floor(X*(2*Base^(n+h) - b*X) / Base^(n+2h-hNew)).
func newtonStep(b vector, n int, X vector, h, hNew int) vector {
	twoScaled := shiftLimbLeft(vector{2}, n+h)
	bX := mul(b, X, DefaultThreshold)
	inner := subVV(twoScaled, bX)
	prod := mul(X, inner, DefaultThreshold)
	shift := n + 2*h - hNew
	if shift < 0 {
		shift = 0
	}
	return shiftLimbRight(prod, shift)
}

// topLimbs returns the k most significant limbs of x as a standalone
// vector (x shifted right by len(x)-k limbs), used to build the Newton
// reciprocal's seed from only a small prefix of a potentially huge
// divisor.
func topLimbs(x vector, k int) vector {
	if k >= len(x) {
		return x.clone()
	}
	return shiftLimbRight(x, len(x)-k)
}
