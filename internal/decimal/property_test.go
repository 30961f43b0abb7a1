package decimal

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestMul_KernelsAgree_PropertyBased cross-checks the schoolbook and FFT
// multiply kernels against each other across a low dispatch threshold, the
// same way the schoolbook/FFT comparison runs in production when operand
// sizes straddle the crossover point.
func TestMul_KernelsAgree_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("schoolbook and FFT multiply agree regardless of dispatch threshold", prop.ForAll(
		func(a, b uint64) bool {
			x := FromUint64(a)
			y := FromUint64(b)

			SetThreshold(1)
			viaFFT, err := x.Mul(y)
			if err != nil {
				t.Logf("Mul error at threshold 1: %v", err)
				return false
			}

			SetThreshold(DefaultThreshold)
			viaSchoolbook, err := x.Mul(y)
			if err != nil {
				t.Logf("Mul error at default threshold: %v", err)
				return false
			}

			return viaFFT.Equal(viaSchoolbook)
		},
		gen.UInt64Range(0, 1<<40),
		gen.UInt64Range(0, 1<<40),
	))

	properties.TestingRun(t)
}

// TestDivMod_Inverse_PropertyBased verifies that (a/b)*b + (a mod b) == a,
// the defining invariant of DivMod, for random non-zero divisors.
func TestDivMod_Inverse_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("a == (a/b)*b + (a mod b)", prop.ForAll(
		func(a, b uint64) bool {
			if b == 0 {
				b = 1
			}
			x := FromUint64(a)
			y := FromUint64(b)

			q, r, err := x.DivMod(y)
			if err != nil {
				t.Logf("DivMod error: %v", err)
				return false
			}

			prod, err := q.Mul(y)
			if err != nil {
				t.Logf("Mul error: %v", err)
				return false
			}
			reconstructed := prod.Add(r)
			return reconstructed.Equal(x)
		},
		gen.UInt64Range(0, 1<<50),
		gen.UInt64Range(1, 1<<30),
	))

	properties.TestingRun(t)
}
