package decimal

import "github.com/agbru/fibcalc/internal/decerrors"

// This file supplements spec.md §4.7's single "to fixed-width numeric
// types" conversion with the narrower integer widths a Go façade is
// expected to offer (uint8/16/32 and int64; there are no int8/16/32
// conversions), all built on toUint64's modular reduction.

// ToUint32 reduces u modulo 2^32, reporting whether the reduction was
// lossless.
func (u Uint) ToUint32() (uint32, bool) {
	v, ok := u.v.toUint64()
	return uint32(v), ok && v <= 0xFFFFFFFF
}

// ToUint16 reduces u modulo 2^16, reporting whether the reduction was
// lossless.
func (u Uint) ToUint16() (uint16, bool) {
	v, ok := u.v.toUint64()
	return uint16(v), ok && v <= 0xFFFF
}

// ToUint8 reduces u modulo 2^8, reporting whether the reduction was
// lossless.
func (u Uint) ToUint8() (uint8, bool) {
	v, ok := u.v.toUint64()
	return uint8(v), ok && v <= 0xFF
}

// ToInt64 converts u to an int64, reporting whether u fits within
// [0, math.MaxInt64]. Unlike the To*Uint* conversions this never wraps:
// out-of-range values report ok=false with an unspecified result, matching
// spec.md §6's "explicit narrowing" contract at the signed/unsigned
// boundary rather than silently reinterpreting the top bit.
func (u Uint) ToInt64() (int64, bool) {
	v, ok := u.v.toUint64()
	if !ok || v > 1<<63-1 {
		return 0, false
	}
	return int64(v), true
}

// MustToUint64 is ToUint64 for call sites that have already established the
// value is in range and want a ConversionRangeError instead of a silent
// bool on the rare occasions that assumption is wrong.
func (u Uint) MustToUint64() (uint64, error) {
	v, ok := u.v.toUint64()
	if !ok {
		return 0, decerrors.ConversionRangeError{Target: "uint64"}
	}
	return v, nil
}
