package decimal

import "sync"

// pow10Cache memoizes powers of ten used by Parse and Emit to scale between
// a recursive call's high half and its digit-count-aligned low half,
// grounded on internal/decfft's twiddle cache: a map keyed by exponent,
// guarded by a single RWMutex, grown on demand rather than precomputed.
var pow10Cache = struct {
	mu sync.RWMutex
	m  map[int]vector
}{m: map[int]vector{0: vector{1}}}

// pow10 returns 10^e as a vector, computed by repeated squaring through
// Big Multiply (spec.md §4.6 allows "a precomputed thread-local table or
// repeated squaring"; this combines both).
func pow10(e int) vector {
	if v, ok := lookupPow10(e); ok {
		return v
	}
	half := pow10(e / 2)
	sq := mul(half, half, DefaultThreshold)
	if sq == nil {
		sq = vector{1}
	}
	var result vector
	if e%2 == 1 {
		result = scalarMul(sq, 10)
	} else {
		result = sq
	}
	storePow10(e, result)
	return result
}

func lookupPow10(e int) (vector, bool) {
	pow10Cache.mu.RLock()
	defer pow10Cache.mu.RUnlock()
	v, ok := pow10Cache.m[e]
	return v, ok
}

func storePow10(e int, v vector) {
	pow10Cache.mu.Lock()
	defer pow10Cache.mu.Unlock()
	pow10Cache.m[e] = v
}
