// Package cli provides the REPL (Read-Eval-Print Loop) functionality
// for interactive decimal expression evaluation.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/fibcalc/internal/orchestration"
	"github.com/agbru/fibcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Timeout is the maximum duration for each expression.
	Timeout time.Duration
	// Verbose disables value truncation in result display.
	Verbose bool
}

// REPL represents an interactive decimal expression evaluation session.
type REPL struct {
	config REPLConfig
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads expressions and evaluates them until the user
// exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"dec> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sDecimal Calculator - Interactive Mode%s                %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<a> + <b>%s     - Add two decimal integers\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<a> - <b>%s     - Subtract (signed; a may be less than b)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<a> * <b>%s     - Multiply, cross-checking schoolbook against FFT\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<a> / <b>%s     - Divide, cross-checking schoolbook against Newton\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<a> %% <b>%s     - Remainder\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scmp <a> <b>%s   - Compare two decimal integers\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sverbose%s       - Toggle full (untruncated) value display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s  - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command or expression.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return true
	}
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "help", "h", "?":
		r.printHelp()
	case "verbose":
		r.cmdVerbose()
	case "status", "st":
		r.cmdStatus()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.evaluate(input)
	}

	return true
}

// evaluate parses and runs a single expression, displaying its result (or
// comparison table, for multiply/divide) through the CLI presenter.
func (r *REPL) evaluate(expr string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	opts := orchestration.PresentationOptions{
		Verbose:   r.config.Verbose,
		Details:   true,
		ShowValue: true,
	}
	RunExpression(ctx, expr, opts, CLIResultPresenter{}, CLIProgressReporter{}, r.out)
	fmt.Fprintln(r.out)
}

// cmdVerbose toggles full-value display mode.
func (r *REPL) cmdVerbose() {
	r.config.Verbose = !r.config.Verbose
	status := "disabled"
	if r.config.Verbose {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Verbose display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:  %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	verboseStatus := "no"
	if r.config.Verbose {
		verboseStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Verbose:  %s%s%s\n", ui.ColorCyan(), verboseStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}
