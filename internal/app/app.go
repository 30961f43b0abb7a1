package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/agbru/fibcalc/internal/calibration"
	"github.com/agbru/fibcalc/internal/cli"
	"github.com/agbru/fibcalc/internal/config"
	"github.com/agbru/fibcalc/internal/decimal"
	apperrors "github.com/agbru/fibcalc/internal/errors"
	"github.com/agbru/fibcalc/internal/logging"
	"github.com/agbru/fibcalc/internal/metrics"
	"github.com/agbru/fibcalc/internal/orchestration"
	"github.com/agbru/fibcalc/internal/parallel"
	"github.com/agbru/fibcalc/internal/server"
	"github.com/agbru/fibcalc/internal/ui"
)

// Version defaults to "dev"; nothing in this module sets or reads it, so it
// can be overridden only by the linker (-ldflags -X).
var Version = "dev"

// simdTiers lists the SIMD fallback tiers deccalc reports and accepts via
// --simd-tier; kept here rather than in internal/config since it is a CLI
// presentation concern (shell completion, flag validation), not a runtime
// setting the decimal kernels themselves branch on.
var simdTiers = []string{"auto", "avx2", "sse2", "scalar"}

// Application represents the deccalc application instance.
type Application struct {
	Config       config.AppConfig
	ErrWriter    io.Writer
	PromRegistry *prometheus.Registry
	Metrics      *metrics.Registry
	Logger       logging.Logger
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "deccalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, exprArgs, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	if len(exprArgs) > 0 && cfg.Expr == "" {
		cfg.Expr = strings.Join(exprArgs, " ")
	}

	if profile, err := calibration.LoadProfile(cfg.CalibrationProfile); err == nil && profile != nil && cfg.Threshold == 0 && profile.CPUCount == runtime.NumCPU() {
		cfg.Threshold = profile.Threshold
	}
	cfg = config.ApplyAdaptiveThreshold(cfg)

	reg := prometheus.NewRegistry()

	return &Application{
		Config:       cfg,
		ErrWriter:    errWriter,
		PromRegistry: reg,
		Metrics:      metrics.NewRegistry(reg),
		Logger:       logging.NewDefaultLogger(),
	}, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(false)

	decimal.SetValidityChecks(a.Config.ValidityChecks)
	decimal.SetThreshold(a.Config.Threshold)

	if a.Config.Calibrate {
		return a.runCalibration(out)
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.ServerAddr != "" {
		srv := server.New(a.Config.ServerAddr, a.PromRegistry, a.Logger)
		go func() {
			if err := srv.Run(ctx); err != nil {
				a.Logger.Error("metrics server exited", err)
			}
		}()
	}

	switch {
	case a.Config.TUI:
		return a.runTUI(out)
	case a.Config.Expr != "":
		return a.runSingleExpr(ctx, a.Config.Expr, out)
	case a.Config.BatchFile != "":
		return a.runBatch(ctx, out)
	default:
		return a.runREPL(out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, simdTiers); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runCalibration runs the threshold calibration search, prints the result
// table, and caches the winning threshold to disk.
func (a *Application) runCalibration(out io.Writer) int {
	benchmark := func(threshold int) time.Duration {
		decimal.SetThreshold(threshold)
		x := randomOperand(threshold * 8)
		y := randomOperand(threshold * 8)
		start := time.Now()
		_, _ = x.Mul(y)
		return time.Since(start)
	}

	best, results := calibration.Run(benchmark)
	decimal.SetThreshold(best)
	calibration.PrintResults(out, results, best)

	profile := calibration.CaptureProfile(runtime.NumCPU(), best, time.Now())
	if err := calibration.SaveProfile(a.Config.CalibrationProfile, profile); err != nil {
		fmt.Fprintf(a.ErrWriter, "Warning: failed to save calibration profile: %v\n", err)
	}
	return apperrors.ExitSuccess
}

// randomOperand builds a deterministic pseudo-large operand of roughly
// limbCount limbs for calibration benchmarking.
func randomOperand(limbCount int) decimal.Uint {
	digits := limbCount * 9
	if digits < 1 {
		digits = 1
	}
	b := make([]byte, digits)
	for i := range b {
		b[i] = byte('1' + (i % 9))
	}
	u, _ := decimal.FromString(string(b))
	return u
}

// runTUI falls back to the REPL. deccalc has no interactive dashboard; the
// teacher's bubbletea dashboard was built entirely around per-calculator
// Fibonacci progress bars and was removed rather than left unwired (see
// DESIGN.md).
func (a *Application) runTUI(out io.Writer) int {
	fmt.Fprintln(a.ErrWriter, "deccalc: --tui has no dashboard in the decimal calculator; falling back to the REPL")
	return a.runREPL(out)
}

// runSingleExpr evaluates a.Config.Expr once with full presentation.
func (a *Application) runSingleExpr(ctx context.Context, expr string, out io.Writer) int {
	cli.PrintExecutionConfig(a.Config, out)
	opts := orchestration.PresentationOptions{
		Verbose:   a.Config.Verbose,
		Details:   true,
		ShowValue: true,
	}
	return cli.RunExpression(ctx, expr, opts, cli.CLIResultPresenter{}, cli.CLIProgressReporter{}, out)
}

// runBatch evaluates every expression in a.Config.BatchFile concurrently
// and prints each result (or error) on its own line, in input order.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	exprs, err := readBatchFile(a.Config.BatchFile)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error reading batch file: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	workers := a.Config.Parallel
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := parallel.EvalBatch(ctx, exprs, workers, cli.EvalExpr)

	exitCode := apperrors.ExitSuccess
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%s%d: %v%s\n", ui.ColorRed(), r.Index+1, r.Err, ui.ColorReset())
			exitCode = apperrors.ExitErrorGeneric
			continue
		}
		fmt.Fprintln(out, r.Output)
	}
	return exitCode
}

// readBatchFile reads exprs, one per non-empty, non-comment line, from path.
func readBatchFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var exprs []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := stripComment(scanner.Text())
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		exprs = append(exprs, line)
	}
	return exprs, scanner.Err()
}

// stripComment removes a trailing "# comment" from a batch file line.
func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// runREPL starts the interactive read-eval-print loop.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{Timeout: a.Config.Timeout, Verbose: a.Config.Verbose})
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
