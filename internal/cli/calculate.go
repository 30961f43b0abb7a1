package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/fibcalc/internal/config"
	"github.com/agbru/fibcalc/internal/orchestration"
	"github.com/agbru/fibcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user: the dispatch threshold, SIMD tier, and environment details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Timeout: %s%s%s. SIMD tier: %s%s%s.\n",
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset(), ui.ColorCyan(), cfg.SIMDTier, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Schoolbook/FFT-Newton dispatch threshold: %s%d%s limbs.\n",
		ui.ColorCyan(), cfg.Threshold, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single kernel vs
// cross-check comparison) for the kernels about to run.
//
// Parameters:
//   - kernels: The kernels that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(kernels []orchestration.Kernel, out io.Writer) {
	var modeDesc string
	if len(kernels) > 1 {
		names := make([]string, len(kernels))
		for i, k := range kernels {
			names[i] = k.Name()
		}
		modeDesc = fmt.Sprintf("Cross-checking kernels: %s%v%s", ui.ColorGreen(), names, ui.ColorReset())
	} else {
		modeDesc = fmt.Sprintf("Single kernel: %s%s%s", ui.ColorGreen(), kernels[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
