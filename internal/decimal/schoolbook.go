package decimal

// This file implements spec.md §4.2's schoolbook multiply and long
// division, the O(nm) kernels used below the crossover threshold T and as
// the base case the FFT engine and reciprocal divider eventually bottom
// out on.

// schoolbookMul computes x*y in O(len(x)*len(y)), the classical
// grade-school algorithm (spec.md §4.2 SchoolbookMul).
func schoolbookMul(x, y vector) vector {
	if x.isZero() || y.isZero() {
		return nil
	}
	z := make(vector, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		xv := uint64(xi)
		for j, yj := range y {
			acc := xv*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = limb(acc % Base)
			carry = acc / Base
		}
		k := i + len(y)
		for carry != 0 {
			acc := uint64(z[k]) + carry
			z[k] = limb(acc % Base)
			carry = acc / Base
			k++
		}
	}
	return z.normalize()
}

// schoolbookDivMod performs classical long division of a by b, returning
// the quotient and remainder (spec.md §4.2 SchoolbookDivMod). It must agree
// digit-for-digit with the reciprocal divider on every overlapping input.
//
// The algorithm normalizes b so its leading limb uses at least half of
// Base's range (Knuth's Algorithm D normalization), estimates each
// quotient limb from the top two normalized dividend limbs and the top
// normalized divisor limb, then corrects the estimate down by at most two
// with a trial multiply-and-subtract.
func schoolbookDivMod(a, b vector) (q, r vector) {
	if len(b) == 1 {
		qq, rr := divModByLimb(a, uint64(b[0]))
		return qq, fromUint64(rr)
	}
	if cmp(a, b) < 0 {
		return nil, a.clone().normalize()
	}

	// Normalize by a base-Base factor d = floor(Base/(b_top+1)) so the
	// divisor's leading limb is at least Base/2. Unlike binary bignum
	// libraries, this stays in the natural radix of the representation
	// instead of requiring a separate bit-shift kernel.
	d := Base / (uint64(b[len(b)-1]) + 1)
	bn := scalarMul(b, d)
	bn = bn.resize(len(b))
	an := scalarMul(a, d)

	n := len(bn)
	m := len(an) - n
	if m < 0 {
		m = 0
	}
	an = an.resize(m + n + 1)
	qd := make(vector, m+1)

	btop := uint64(bn[n-1])
	bsec := uint64(0)
	if n >= 2 {
		bsec = uint64(bn[n-2])
	}

	for j := m; j >= 0; j-- {
		num := uint64(an[j+n])*Base + uint64(an[j+n-1])
		qhat := num / btop
		rhat := num % btop
		if qhat >= Base {
			qhat = Base - 1
			rhat = num - qhat*btop
		}
		for n >= 2 && qhat*bsec > rhat*Base+uint64(an[j+n-2]) {
			qhat--
			rhat += btop
			if rhat >= Base {
				break
			}
		}

		if subMulAt(an, j, bn, qhat) {
			qhat--
			addAt(an, j, bn)
		}
		qd[j] = limb(qhat)
	}

	q = qd.normalize()
	rNorm := an.resize(n).normalize()
	r, _ = divModByLimb(rNorm, d)
	return q, r.normalize()
}

// divModByLimb divides x by a single-limb-or-wider scalar d (used both for
// the n==1 divisor fast path and for the binary renormalization shifts).
func divModByLimb(x vector, d uint64) (q vector, r uint64) {
	if d == 0 {
		panic("decimal: division by zero")
	}
	q = make(vector, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		acc := r*Base + uint64(x[i])
		q[i] = limb(acc / d)
		r = acc % d
	}
	return q.normalize(), r
}

// subMulAt subtracts qhat*bn from an starting at limb offset j, in place.
// Returns true if the subtraction would have gone negative (the quotient
// digit estimate qhat was one too high).
func subMulAt(an vector, j int, bn vector, qhat uint64) bool {
	var borrow uint64
	var carry uint64
	for i, bi := range bn {
		prod := qhat*uint64(bi) + carry
		carry = prod / Base
		plo := prod % Base

		cur := uint64(an[j+i])
		if cur < plo+borrow {
			an[j+i] = limb(cur + Base - plo - borrow)
			borrow = 1
		} else {
			an[j+i] = limb(cur - plo - borrow)
			borrow = 0
		}
	}
	idx := j + len(bn)
	cur := uint64(an[idx])
	if cur < carry+borrow {
		an[idx] = limb(cur + Base - carry - borrow)
		return true
	}
	an[idx] = limb(cur - carry - borrow)
	return false
}

// addAt adds bn back into an at limb offset j, undoing one step of
// subMulAt's over-subtraction when the quotient digit estimate was too
// high by exactly one.
func addAt(an vector, j int, bn vector) {
	var carry uint64
	for i, bi := range bn {
		s := uint64(an[j+i]) + uint64(bi) + carry
		if s >= Base {
			s -= Base
			carry = 1
		} else {
			carry = 0
		}
		an[j+i] = limb(s)
	}
	idx := j + len(bn)
	s := uint64(an[idx]) + carry
	an[idx] = limb(s % Base)
}
