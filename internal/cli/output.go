// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatExecutionDuration].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fibcalc/internal/decimal"
	"github.com/agbru/fibcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full result value.
	Verbose bool
	// ShowValue enables the calculated value display when true (disabled by default).
	ShowValue bool
}

// WriteResultToFile writes a calculation result to a file.
//
// Parameters:
//   - result: The calculated value.
//   - expr: The expression that was evaluated.
//   - duration: The calculation duration.
//   - kernel: The name of the winning kernel.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(result decimal.Uint, expr string, duration time.Duration, kernel string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# deccalc Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Kernel: %s\n", kernel)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Expression: %s\n", expr)
	fmt.Fprintf(file, "# Digits: %d\n", len(result.String()))
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "%s =\n%s\n", expr, result.String())

	return nil
}

// FormatQuietResult formats a result for quiet mode output.
// Returns a single-line result suitable for scripting.
func FormatQuietResult(result decimal.Uint, expr string, duration time.Duration) string {
	return result.String()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, result decimal.Uint, expr string, duration time.Duration) {
	fmt.Fprintln(out, FormatQuietResult(result, expr, duration))
}

// DisplayResultWithConfig displays a result with the given output configuration.
// This is a unified function that handles all output modes.
func DisplayResultWithConfig(out io.Writer, result decimal.Uint, expr string, duration time.Duration, kernel string, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result, expr, duration)
	} else {
		DisplayResult(result, expr, duration, false, config.Verbose, true, config.ShowValue, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, expr, duration, kernel, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}

// DisplayResult renders a calculation result: the execution stats always,
// a detailed digit/duration breakdown when details is set, and the value
// itself (truncated past TruncationLimit digits unless verbose) when
// showValue is set. negative prefixes the printed value with "-"; result
// itself is always an unsigned magnitude (decimal.Uint has no sign bit —
// internal/bigsigned carries sign and resolves it before calling this).
func DisplayResult(result decimal.Uint, expr string, duration time.Duration, negative, verbose, details, showValue bool, out io.Writer) {
	resultStr := result.String()
	numDigits := len(resultStr)
	sign := ""
	if negative && resultStr != "0" {
		sign = "-"
	}

	if details {
		fmt.Fprintf(out, "\n%sDetailed result analysis:%s\n", ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(out, "  Calculation time: %s%s%s\n", ui.ColorGreen(), FormatExecutionDuration(duration), ui.ColorReset())
		fmt.Fprintf(out, "  Number of digits: %s%s%s\n", ui.ColorCyan(), FormatNumberString(fmt.Sprintf("%d", numDigits)), ui.ColorReset())
	}

	if !showValue {
		return
	}

	fmt.Fprintf(out, "\n%sCalculated value:%s\n", ui.ColorBold(), ui.ColorReset())
	if verbose || numDigits <= TruncationLimit {
		fmt.Fprintf(out, "  %s =\n  %s%s%s%s\n", expr, ui.ColorGreen(), sign, FormatNumberString(resultStr), ui.ColorReset())
		return
	}

	fmt.Fprintf(out, "  %s = %s%s%s...%s%s (truncated)\n",
		expr, ui.ColorGreen(), sign, resultStr[:DisplayEdges], resultStr[numDigits-DisplayEdges:], ui.ColorReset())
	fmt.Fprintf(out, "  Tip: use %s--verbose%s to print the full value.\n", ui.ColorYellow(), ui.ColorReset())
}
