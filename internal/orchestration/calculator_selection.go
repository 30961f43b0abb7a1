package orchestration

import "fmt"

// ResolveKernels returns the set of kernels to cross-check for op
// ("multiply" or "divide").
func ResolveKernels(op string) ([]Kernel, error) {
	switch op {
	case "multiply":
		return MultiplyKernels(), nil
	case "divide":
		return DivideKernels(), nil
	default:
		return nil, fmt.Errorf("orchestration: unknown operation %q (want multiply or divide)", op)
	}
}
