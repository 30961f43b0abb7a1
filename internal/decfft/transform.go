package decfft

// transform performs an iterative, in-place radix-2 Cooley-Tukey FFT on a,
// whose length must be a power of two. table must be the forward twiddle
// table for len(a) (see twiddles). When invert is true, a conjugated
// twiddle is used and the result is scaled by 1/len(a), producing the
// inverse transform (spec.md §4.3 "Transform").
func transform(a []complex128, table []complex128, invert bool) {
	n := len(a)
	bitReversePermute(a)

	for length := 2; length <= n; length <<= 1 {
		step := n / length
		half := length / 2
		for i := 0; i < n; i += length {
			for j := 0; j < half; j++ {
				w := table[j*step]
				if invert {
					w = complexConj(w)
				}
				u := a[i+j]
				v := a[i+j+half] * w
				a[i+j] = u + v
				a[i+j+half] = u - v
			}
		}
	}

	if invert {
		scale := complex(1/float64(n), 0)
		for i := range a {
			a[i] *= scale
		}
	}
}

func complexConj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}

// bitReversePermute reorders a in place into bit-reversed index order, the
// standard precondition for the iterative butterfly loop above.
func bitReversePermute(a []complex128) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}

// nextPow2 returns the smallest power of two >= n, n >= 1.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
