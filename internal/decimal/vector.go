package decimal

import "math/bits"

// limb is a single base-Base digit of the internal representation.
type limb = uint32

// vector is the Digit Vector of spec.md §3: a little-endian (least
// significant limb first) slice of base-Base limbs. The canonical form has
// no trailing zero limb — vector(nil) and vector{} both represent zero, and
// every kernel renormalizes its result before returning.
//
// A vector is conceptually owned by exactly one Uint; callers never alias
// the backing array of a vector they intend to keep mutating independently
// of another.
type vector []limb

// normalize strips trailing zero limbs, restoring invariant I2. It is
// called at the end of every kernel before the result is handed back to a
// caller.
func (v vector) normalize() vector {
	n := len(v)
	for n > 0 && v[n-1] == 0 {
		n--
	}
	return v[:n]
}

// reserve returns a vector with capacity for at least n limbs, copying v's
// existing limbs into the front of the returned slice. Growth is geometric
// (growCap doubles the current capacity), satisfying spec.md §4.1's
// amortized-linear-growth requirement.
func (v vector) reserve(n int) vector {
	if cap(v) >= n {
		return v
	}
	grown := make(vector, len(v), growCap(cap(v), n))
	copy(grown, v)
	return grown
}

// growCap picks a new capacity at least as large as need, growing
// geometrically (factor 2) off the current capacity rather than just
// allocating exactly need limbs.
func growCap(have, need int) int {
	c := have * 2
	if c < need {
		c = need
	}
	if c < 4 {
		c = 4
	}
	return c
}

// resize returns a vector of exactly n limbs: v truncated, or v extended
// with zero limbs, reusing capacity when available.
func (v vector) resize(n int) vector {
	if n <= len(v) {
		return v[:n]
	}
	v = v.reserve(n)
	grown := v[:n]
	for i := len(v); i < n; i++ {
		grown[i] = 0
	}
	return grown
}

// clone returns an independently owned copy of v.
func (v vector) clone() vector {
	if len(v) == 0 {
		return nil
	}
	c := make(vector, len(v))
	copy(c, v)
	return c
}

// isZero reports whether v is the canonical representation of zero.
func (v vector) isZero() bool { return len(v) == 0 }

// swap exchanges the backing storage of *a and *b in place — the vector
// analogue of move assignment; after swap the donor of whichever side held
// the larger value is left holding the other side's (possibly zero) value.
func swap(a, b *vector) {
	*a, *b = *b, *a
}

// fromUint64 builds a canonical vector from a native unsigned 64-bit value
// by repeated divmod by Base (spec.md §4.7).
func fromUint64(x uint64) vector {
	if x == 0 {
		return nil
	}
	var v vector
	for x > 0 {
		v = append(v, limb(x%Base))
		x /= Base
	}
	return v.normalize()
}

// toUint64 reduces v modulo 2^64 when it does not fit, and reports whether
// the reduction was lossless — the "exact when in range, explicit
// narrowing otherwise" conversion rule of spec.md §6.
func (v vector) toUint64() (result uint64, ok bool) {
	if len(v) == 0 {
		return 0, true
	}
	ok = true
	// mul is Base^i mod 2^64; mulOverflow records that Base^i itself is
	// >= 2^64, so any nonzero limb from there on makes the value too large.
	mul := uint64(1)
	mulOverflow := false
	for _, l := range v {
		hi, lo := bits.Mul64(uint64(l), mul)
		sum, carry := bits.Add64(result, lo, 0)
		if hi != 0 || carry != 0 || (mulOverflow && l != 0) {
			ok = false
		}
		result = sum
		hi, mul = bits.Mul64(mul, Base)
		if hi != 0 {
			mulOverflow = true
		}
	}
	return result, ok
}
