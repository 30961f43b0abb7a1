package decimal

// This file implements spec.md §4.2 Basic Kernels: compare, add, subtract,
// limb shift, and scalar multiply. All inputs are assumed canonical; every
// result is normalized before it is returned, restoring invariant I2.

// cmp compares two canonical vectors, returning -1, 0, or +1 exactly like
// bytes.Compare / strings.Compare (spec.md §4.2 Compare).
func cmp(x, y vector) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addVV adds x and y limb-by-limb into a freshly sized result vector. The
// scalar loop below is the reference the SIMD note in spec.md §4.2 allows a
// wider implementation to diverge from internally, provided it reproduces
// this result bit-for-bit.
func addVV(x, y vector) vector {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(vector, len(x)+1)
	var carry uint64
	i := 0
	for ; i < len(y); i++ {
		s := uint64(x[i]) + uint64(y[i]) + carry
		if s >= Base {
			s -= Base
			carry = 1
		} else {
			carry = 0
		}
		z[i] = limb(s)
	}
	for ; i < len(x); i++ {
		s := uint64(x[i]) + carry
		if s >= Base {
			s -= Base
			carry = 1
		} else {
			carry = 0
		}
		z[i] = limb(s)
	}
	z[len(x)] = limb(carry)
	return z.normalize()
}

// subVV computes x-y for canonical x >= y (spec.md §4.2 Subtract). Calling
// it with x < y is a precondition violation: the borrow that should cancel
// at the top limb instead escapes silently. borrowedSubVV below also
// reports that escape. With validity checks enabled the façade's Sub
// compares the operands first and calls subVV; with them disabled it calls
// borrowedSubVV and discards the report.
func subVV(x, y vector) vector {
	z := make(vector, len(x))
	var borrow uint64
	i := 0
	for ; i < len(y); i++ {
		xi, yi := uint64(x[i]), uint64(y[i])
		if xi < yi+borrow {
			z[i] = limb(xi + Base - yi - borrow)
			borrow = 1
		} else {
			z[i] = limb(xi - yi - borrow)
			borrow = 0
		}
	}
	for ; i < len(x); i++ {
		xi := uint64(x[i])
		if xi < borrow {
			z[i] = limb(xi + Base - borrow)
			borrow = 1
		} else {
			z[i] = limb(xi - borrow)
			borrow = 0
		}
	}
	// borrow != 0 here means x < y: the caller violated the precondition.
	return z.normalize()
}

// borrowedSubVV is subVV instrumented to additionally report whether the
// precondition x >= y held (spec.md §4.2, §7 precondition-violation). The
// façade's Sub calls it only when validity checks are disabled.
func borrowedSubVV(x, y vector) (vector, bool) {
	z := make(vector, len(x))
	var borrow uint64
	i := 0
	for ; i < len(y); i++ {
		xi, yi := uint64(x[i]), uint64(y[i])
		if xi < yi+borrow {
			z[i] = limb(xi + Base - yi - borrow)
			borrow = 1
		} else {
			z[i] = limb(xi - yi - borrow)
			borrow = 0
		}
	}
	for ; i < len(x); i++ {
		xi := uint64(x[i])
		if xi < borrow {
			z[i] = limb(xi + Base - borrow)
			borrow = 1
		} else {
			z[i] = limb(xi - borrow)
			borrow = 0
		}
	}
	return z.normalize(), borrow == 0
}

// shiftLimbLeft prepends k zero limbs, i.e. multiplies x by Base^k
// (spec.md §4.2 ShiftLimbLeft). O(n+k).
func shiftLimbLeft(x vector, k int) vector {
	if x.isZero() || k == 0 {
		return x
	}
	z := make(vector, len(x)+k)
	copy(z[k:], x)
	return z
}

// shiftLimbRight drops the low k limbs, i.e. computes floor(x / Base^k).
// Not named directly in spec.md's kernel list, but required by the
// reciprocal divider (§4.5 step 3) and by Decimal I/O's divide step (§4.6).
func shiftLimbRight(x vector, k int) vector {
	if k >= len(x) {
		return nil
	}
	z := make(vector, len(x)-k)
	copy(z, x[k:])
	return z.normalize()
}

// scalarMul multiplies x by a single limb-sized scalar s (spec.md §4.2
// ScalarMul), 0 <= s < Base.
func scalarMul(x vector, s uint64) vector {
	if s == 0 || x.isZero() {
		return nil
	}
	z := make(vector, len(x)+1)
	var carry uint64
	for i, xi := range x {
		acc := uint64(xi)*s + carry
		z[i] = limb(acc % Base)
		carry = acc / Base
	}
	z[len(x)] = limb(carry)
	return z.normalize()
}

// scalarMulWide multiplies x by a scalar s of arbitrary 64-bit magnitude,
// unlike scalarMul's 0 <= s < Base precondition. Only FromFloat64's binary
// mantissa scaling needs this; every other caller stays within scalarMul's
// contract.
func scalarMulWide(x vector, s uint64) vector {
	if s == 0 || x.isZero() {
		return nil
	}
	z := make(vector, len(x)+2)
	var carry uint64
	i := 0
	for ; i < len(x); i++ {
		acc := uint64(x[i])*s + carry
		z[i] = limb(acc % Base)
		carry = acc / Base
	}
	for ; carry > 0; i++ {
		z[i] = limb(carry % Base)
		carry /= Base
	}
	return z[:i].normalize()
}
