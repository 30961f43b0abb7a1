package bigsigned

import (
	"strings"

	"github.com/agbru/fibcalc/internal/decerrors"
	"github.com/agbru/fibcalc/internal/decimal"
)

// Int is a signed arbitrary-precision integer: a sign bit plus a
// decimal.Uint magnitude. Zero always has positive sign; no negative zero
// is ever observable (spec.md §3 "Signed Integer").
type Int struct {
	neg bool
	mag decimal.Uint
}

// Zero returns the integer 0.
func Zero() Int { return Int{} }

// FromInt64 constructs an Int from a native signed integer, exact for
// every value (spec.md §6 "From signed fixed-width v: exact when v >= 0;
// otherwise ... stores |v| with negative sign").
func FromInt64(x int64) Int {
	if x < 0 {
		// -x overflows for x == math.MinInt64; uint64(-x) in two's
		// complement still yields the correct magnitude.
		return Int{neg: true, mag: decimal.FromUint64(uint64(-x))}.normalizeZero()
	}
	return Int{mag: decimal.FromUint64(uint64(x))}
}

// FromUint64 constructs a non-negative Int from a native unsigned integer.
func FromUint64(x uint64) Int { return Int{mag: decimal.FromUint64(x)} }

// FromString parses an optionally-signed decimal string: an optional
// leading '+' or '-' followed by digits accepted by decimal.FromString
// (spec.md §4.6 step 1, §6 "Signed: optional leading '-'").
func FromString(s string) (Int, error) {
	if s == "" {
		return Int{}, decerrors.InvalidArgumentError{Input: s}
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	mag, err := decimal.FromString(s)
	if err != nil {
		return Int{}, err
	}
	return Int{neg: neg, mag: mag}.normalizeZero(), nil
}

// normalizeZero clears the sign bit when the magnitude is zero, enforcing
// "no negative zero is ever observable".
func (x Int) normalizeZero() Int {
	if x.mag.IsZero() {
		x.neg = false
	}
	return x
}

// IsNegative reports whether x < 0.
func (x Int) IsNegative() bool { return x.neg }

// Abs returns the unsigned magnitude of x.
func (x Int) Abs() decimal.Uint { return x.mag }

// Neg returns -x.
func (x Int) Neg() Int { return Int{neg: !x.neg, mag: x.mag}.normalizeZero() }

// Compare returns -1, 0, or +1 as x is less than, equal to, or greater than
// other.
func (x Int) Compare(other Int) int {
	switch {
	case x.neg && !other.neg:
		return -1
	case !x.neg && other.neg:
		return 1
	case !x.neg:
		return x.mag.Compare(other.mag)
	default: // both negative: larger magnitude sorts first (more negative)
		return -x.mag.Compare(other.mag)
	}
}

// Equal reports whether x and other represent the same value.
func (x Int) Equal(other Int) bool { return x.Compare(other) == 0 }

// Add returns x + other, delegating magnitude arithmetic to decimal.Uint
// and resolving the sign the way a schoolbook addition-of-signed-numbers
// table would: same sign adds magnitudes, opposite sign subtracts the
// smaller from the larger and takes the larger's sign.
func (x Int) Add(other Int) Int {
	if x.neg == other.neg {
		return Int{neg: x.neg, mag: x.mag.Add(other.mag)}.normalizeZero()
	}
	switch x.mag.Compare(other.mag) {
	case 0:
		return Int{}
	case 1:
		mag, _ := x.mag.Sub(other.mag)
		return Int{neg: x.neg, mag: mag}.normalizeZero()
	default:
		mag, _ := other.mag.Sub(x.mag)
		return Int{neg: other.neg, mag: mag}.normalizeZero()
	}
}

// Sub returns x - other.
func (x Int) Sub(other Int) Int { return x.Add(other.Neg()) }

// Mul returns x * other.
func (x Int) Mul(other Int) (Int, error) {
	mag, err := x.mag.Mul(other.mag)
	if err != nil {
		return Int{}, err
	}
	return Int{neg: x.neg != other.neg, mag: mag}.normalizeZero(), nil
}

// DivMod returns (x/other, x mod other) using C-style truncated division:
// the quotient truncates toward zero and the remainder's sign follows the
// dividend (spec.md §8 S7: "(-7)/2 == -3", "(-7) mod 2 == -1",
// "7/(-2) == -3", "7 mod (-2) == 1").
func (x Int) DivMod(other Int) (q, r Int, err error) {
	qmag, rmag, err := x.mag.DivMod(other.mag)
	if err != nil {
		return Int{}, Int{}, err
	}
	q = Int{neg: x.neg != other.neg, mag: qmag}.normalizeZero()
	r = Int{neg: x.neg, mag: rmag}.normalizeZero()
	return q, r, nil
}

// Div returns x / other; see DivMod.
func (x Int) Div(other Int) (Int, error) {
	q, _, err := x.DivMod(other)
	return q, err
}

// Mod returns x mod other; see DivMod.
func (x Int) Mod(other Int) (Int, error) {
	_, r, err := x.DivMod(other)
	return r, err
}

// String renders x via decimal.Uint.String, with a leading '-' for
// negative values and no sign for zero (spec.md §6).
func (x Int) String() string {
	if !x.neg {
		return x.mag.String()
	}
	var b strings.Builder
	b.WriteByte('-')
	b.WriteString(x.mag.String())
	return b.String()
}
