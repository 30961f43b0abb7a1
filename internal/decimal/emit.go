package decimal

import (
	"strconv"
	"strings"
	"sync"
)

// emitBufferPool holds the "reusable text-emission buffer" of spec.md §3's
// thread-local workspace model. Go has no portable analogue of the
// original's const-char*-into-a-thread-local-arena view (spec.md §9
// "Emission pointer aliasing" anticipates exactly this and recommends
// returning an owned string instead), so emitDigits always returns a fresh
// string. Only the Builder value itself is pooled: Reset drops its backing
// array, so each call allocates a new one.
var emitBufferPool = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

// emitDigits implements spec.md §4.6's Emit: the dual of parseBalanced,
// splitting v by dividing by a power of ten chosen to balance the two
// halves' digit counts and concatenating the recursively emitted pieces,
// zero-padding the low half to the exact split width.
func emitDigits(v vector) string {
	if v.isZero() {
		return "0"
	}
	b := emitBufferPool.Get().(*strings.Builder)
	b.Reset()
	defer emitBufferPool.Put(b)
	writeDigits(b, v)
	return b.String()
}

func writeDigits(b *strings.Builder, v vector) {
	if len(v) <= 2 {
		writeSmall(b, v)
		return
	}

	// Split width: roughly half of v's decimal digit count. limbDigits*len(v)
	// is an overestimate of the true digit count by at most limbDigits-1, but
	// it only steers where the split falls, not correctness — low is always
	// strictly less than 10^m, so it never needs more than m digits.
	m := (limbDigits * len(v)) / 2
	if m < 1 {
		m = 1
	}

	hi, lo := divModLimbs(v, pow10(m))
	if hi.isZero() {
		// m overshot the true digit count of v; lo alone already holds
		// every significant digit, so it takes the leading position.
		writeDigits(b, lo)
		return
	}
	writeDigits(b, hi)
	writePadded(b, lo, m)
}

// writeSmall formats v, known to hold at most two limbs, with no leading
// zeros on the top limb and full 9-digit zero padding on the low limb
// (spec.md §4.6 step 1).
func writeSmall(b *strings.Builder, v vector) {
	switch len(v) {
	case 0:
		b.WriteByte('0')
	case 1:
		b.WriteString(strconv.FormatUint(uint64(v[0]), 10))
	case 2:
		b.WriteString(strconv.FormatUint(uint64(v[1]), 10))
		writePadded9(b, uint64(v[0]))
	}
}

// writePadded emits v's digits left-padded with zeros to exactly width
// characters. v is guaranteed (by the division that produced it) to need no
// more than width digits.
func writePadded(b *strings.Builder, v vector, width int) {
	var sub strings.Builder
	writeDigits(&sub, v)
	s := sub.String()
	if s == "0" {
		s = ""
	}
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

// writePadded9 zero-pads a single limb's value to exactly limbDigits
// characters.
func writePadded9(b *strings.Builder, v uint64) {
	s := strconv.FormatUint(v, 10)
	for i := len(s); i < limbDigits; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
