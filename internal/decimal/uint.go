package decimal

import (
	"math"

	"github.com/agbru/fibcalc/internal/decerrors"
)

// Uint is the Unsigned Integer Façade of spec.md §4.7: the public value type
// bundling a Digit Vector with operation semantics. The zero value of Uint
// is the integer zero.
type Uint struct {
	v vector
}

// Zero returns the integer 0. Equivalent to the zero value of Uint.
func Zero() Uint { return Uint{} }

// FromUint64 constructs a Uint from a native unsigned integer (spec.md
// §4.7 "unsigned integral v").
func FromUint64(x uint64) Uint { return Uint{v: fromUint64(x)} }

// FromInt64 constructs a Uint from a native signed integer known to be
// non-negative. If validity checks are enabled and x < 0, it returns a
// ConversionRangeError; the signed collaborator (internal/bigsigned) is the
// intended caller for negative values.
func FromInt64(x int64) (Uint, error) {
	if x < 0 {
		if ValidityChecksEnabled() {
			return Uint{}, decerrors.ConversionRangeError{Target: "decimal.Uint"}
		}
		x = -x
	}
	return Uint{v: fromUint64(uint64(x))}, nil
}

// FromFloat64 constructs a Uint from a non-negative float64 by taking
// floor(v), extracting the IEEE-754 mantissa and exponent and scaling into
// base B (spec.md §6 "From floating-point v ≥ 0: floor(v)").
func FromFloat64(x float64) (Uint, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		if ValidityChecksEnabled() {
			return Uint{}, decerrors.ConversionRangeError{Target: "decimal.Uint"}
		}
		return Uint{}, nil
	}
	x = math.Floor(x)
	if x == 0 {
		return Uint{}, nil
	}
	frac, exp := math.Frexp(x) // x == frac * 2^exp, 0.5 <= frac < 1
	mantissa := uint64(frac * (1 << 53))
	shift := exp - 53

	result := fromUint64(mantissa)
	if shift > 0 {
		result = scalarMulPow2(result, shift)
	} else if shift < 0 {
		result = shiftRightPow2(result, -shift)
	}
	return Uint{v: result}, nil
}

// FromString parses a decimal string into a Uint (spec.md §4.6 Parse, via
// spec.md §4.7's "decimal string" constructor). Leading zeros are accepted
// and skipped; a malformed string reports an InvalidArgumentError.
func FromString(s string) (Uint, error) {
	if !isDigitString(s) {
		return Uint{}, decerrors.InvalidArgumentError{Input: s}
	}
	return Uint{v: parseDigits(s)}, nil
}

// Compare implements spec.md §4.7's lexicographic comparison, returning
// -1, 0, or +1.
func (u Uint) Compare(other Uint) int { return cmp(u.v, other.v) }

// Equal reports whether u and other represent the same value.
func (u Uint) Equal(other Uint) bool { return u.Compare(other) == 0 }

// IsZero reports spec.md §4.7's boolean truthiness inverse: length == 0.
func (u Uint) IsZero() bool { return u.v.isZero() }

// Add returns u + other.
func (u Uint) Add(other Uint) Uint { return Uint{v: addVV(u.v, other.v)} }

// Sub returns u - other. Precondition: u >= other (spec.md §4.2 Subtract,
// §4.7). When validity checks are enabled, a violation returns the zero
// value and a PreconditionViolationError instead of a silently wrapped
// result.
func (u Uint) Sub(other Uint) (Uint, error) {
	if ValidityChecksEnabled() {
		if cmp(u.v, other.v) < 0 {
			return Uint{}, decerrors.PreconditionViolationError{Op: "Sub", Reason: "a < b"}
		}
		return Uint{v: subVV(u.v, other.v)}, nil
	}
	z, _ := borrowedSubVV(u.v, other.v)
	return Uint{v: z}, nil
}

// Mul returns u * other, dispatching to SchoolbookMul or the FFT engine by
// operand size (spec.md §4.2, §4.3).
func (u Uint) Mul(other Uint) (Uint, error) {
	if ValidityChecksEnabled() {
		if err := checkOperandSize(u.v, other.v); err != nil {
			return Uint{}, err
		}
	}
	return Uint{v: mul(u.v, other.v, Threshold())}, nil
}

// DivMod returns (u/other, u mod other), dispatching to SchoolbookDivMod or
// the Newton reciprocal divider by operand size (spec.md §4.5, §8 P7).
// Precondition: other != 0.
func (u Uint) DivMod(other Uint) (q, r Uint, err error) {
	if other.v.isZero() {
		if ValidityChecksEnabled() {
			return Uint{}, Uint{}, decerrors.PreconditionViolationError{Op: "DivMod", Reason: "division by zero"}
		}
		return Uint{}, Uint{}, nil
	}
	if ValidityChecksEnabled() {
		if err := checkOperandSize(u.v, other.v); err != nil {
			return Uint{}, Uint{}, err
		}
	}
	qv, rv := divModLimbs(u.v, other.v)
	return Uint{v: qv}, Uint{v: rv}, nil
}

// Div returns u / other; see DivMod.
func (u Uint) Div(other Uint) (Uint, error) {
	q, _, err := u.DivMod(other)
	return q, err
}

// Mod returns u mod other; see DivMod.
func (u Uint) Mod(other Uint) (Uint, error) {
	_, r, err := u.DivMod(other)
	return r, err
}

// Inc returns u + 1 (spec.md §4.7 pre/post increment; Go values are
// immutable, so both forms reduce to this).
func (u Uint) Inc() Uint { return Uint{v: addVV(u.v, vector{1})} }

// Dec returns u - 1. Precondition: u != 0.
func (u Uint) Dec() (Uint, error) { return u.Sub(FromUint64(1)) }

// checkOperandSize enforces spec.md §9's conservative reading of the Open
// Question on L: every public operand is capped at MaxOperandLimbs.
func checkOperandSize(a, b vector) error {
	if len(a) > MaxOperandLimbs || len(b) > MaxOperandLimbs {
		return decerrors.PreconditionViolationError{Op: "operand size", Reason: "length exceeds MaxOperandLimbs"}
	}
	return nil
}

// ToUint64 converts u to a native unsigned integer via modular reduction,
// reporting whether the conversion was lossless (spec.md §6 "To
// fixed-width: reduce modulo the target type's range; explicit narrowing").
func (u Uint) ToUint64() (uint64, bool) { return u.v.toUint64() }

// String renders u via Emit (spec.md §4.6).
func (u Uint) String() string { return emitDigits(u.v) }

// Move transfers ownership of other's representation into a new Uint,
// leaving other canonically zero (spec.md §4.7 "Move-from leaves the source
// canonically zero", §8 P10). Go has no destructive-read value semantics, so
// the caller must discard other themselves; Move exists for call sites that
// want to make that discipline explicit and avoid an extra clone.
func Move(other *Uint) Uint {
	var z vector
	swap(&other.v, &z)
	return Uint{v: z}
}

// scalarMulPow2 multiplies v by 2^shift, shift >= 0, used only by
// FromFloat64's mantissa scaling.
func scalarMulPow2(v vector, shift int) vector {
	for shift >= 32 {
		v = scalarMulWide(v, 1<<32)
		shift -= 32
	}
	if shift > 0 {
		v = scalarMulWide(v, 1<<uint(shift))
	}
	return v
}

// shiftRightPow2 divides v by 2^shift, shift >= 0, discarding the fraction
// (floor), used only by FromFloat64's mantissa scaling.
func shiftRightPow2(v vector, shift int) vector {
	for shift >= 32 && !v.isZero() {
		v, _ = divModByLimb(v, 1<<32)
		shift -= 32
	}
	if shift > 0 && !v.isZero() {
		v, _ = divModByLimb(v, 1<<uint(shift))
	}
	return v
}
