package orchestration

import "testing"

func TestResolveKernels(t *testing.T) {
	t.Parallel()

	t.Run("multiply returns schoolbook and fft", func(t *testing.T) {
		t.Parallel()
		kernels, err := ResolveKernels("multiply")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(kernels) != 2 {
			t.Fatalf("expected 2 kernels, got %d", len(kernels))
		}
		if kernels[0].Name() == "" || kernels[1].Name() == "" {
			t.Error("kernel names should not be empty")
		}
	})

	t.Run("divide returns schoolbook and newton", func(t *testing.T) {
		t.Parallel()
		kernels, err := ResolveKernels("divide")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(kernels) != 2 {
			t.Fatalf("expected 2 kernels, got %d", len(kernels))
		}
	})

	t.Run("unknown operation errors", func(t *testing.T) {
		t.Parallel()
		if _, err := ResolveKernels("frobnicate"); err == nil {
			t.Error("expected an error for an unknown operation")
		}
	})
}
