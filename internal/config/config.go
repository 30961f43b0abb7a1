// Package config resolves deccalc's runtime configuration: the
// decimal.Uint dispatch thresholds, the validity-check switch, and the
// batch/REPL/TUI/server settings cmd/deccalc exposes, through the
// resolution chain CLI flags > environment variables > calibration profile
// > adaptive hardware estimate > static defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// EnvPrefix namespaces every environment variable config reads.
const EnvPrefix = "DECCALC_"

// AppConfig holds deccalc's fully resolved configuration.
type AppConfig struct {
	// Expr is a single expression passed via -e/--expr for one-shot
	// evaluation, bypassing the REPL and batch file.
	Expr string
	// Completion, when non-empty, names the shell ("bash", "zsh", "fish",
	// "powershell") to generate a completion script for; Run exits after
	// printing it.
	Completion string
	// Threshold overrides decimal.DefaultThreshold (T), the crossover limb
	// count below which schoolbook kernels beat the FFT engine and Newton
	// divider. Zero means "let calibration or the static default decide".
	Threshold int

	// ValidityChecks mirrors spec.md §6's "validity-check-enable" switch.
	ValidityChecks bool

	// SIMDTier names one of decimal's SIMD fallback tiers ("avx2", "sse2",
	// "scalar", "auto"). It is reported in the execution summary only; no
	// kernel branches on it, so it changes neither which code runs nor the
	// answer.
	SIMDTier string

	// Calibrate runs internal/calibration's threshold search at startup
	// instead of using a cached profile or the adaptive estimate.
	Calibrate bool
	// CalibrationProfile is the path calibration results are cached to and
	// loaded from.
	CalibrationProfile string

	// BatchFile, when non-empty, is a path of newline-delimited expressions
	// to evaluate instead of reading stdin.
	BatchFile string
	// Parallel is the number of worker goroutines internal/parallel uses
	// for batch evaluation; 0 means runtime.GOMAXPROCS(0).
	Parallel int

	// TUI requests the interactive dashboard instead of batch/REPL mode;
	// deccalc has none (see internal/app.Application.runTUI), so this
	// currently just falls back to the REPL with a notice.
	TUI bool
	// Verbose enables structured debug logging.
	Verbose bool

	// ServerAddr, when non-empty, starts internal/server's HTTP listener
	// exposing /metrics and /healthz alongside batch/REPL/TUI evaluation.
	ServerAddr string

	// Timeout bounds a single expression's evaluation.
	Timeout time.Duration
}

// Default returns the static, hardware-independent baseline configuration.
func Default() AppConfig {
	return AppConfig{
		ValidityChecks:     true,
		SIMDTier:           "auto",
		CalibrationProfile: defaultCalibrationProfilePath,
		Timeout:            30 * time.Second,
	}
}

const defaultCalibrationProfilePath = ".deccalc_calibration.json"

// ParseConfig parses CLI flags for programName out of args (normally
// os.Args[1:]), layers them over Default(), applies environment overrides
// for flags left unset, and returns the resolved config plus any
// non-flag arguments (expressions for batch evaluation).
//
// ParseConfig returns flag.ErrHelp when -h/--help was requested; callers
// should treat that as a successful early exit, not a failure.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, []string, error) {
	cfg := Default()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var version bool
	fs.StringVar(&cfg.Expr, "expr", cfg.Expr, "decimal expression to evaluate")
	fs.StringVar(&cfg.Expr, "e", cfg.Expr, "decimal expression to evaluate (shorthand)")
	fs.StringVar(&cfg.BatchFile, "batch", cfg.BatchFile, "batch file of expressions, one per line")
	fs.StringVar(&cfg.BatchFile, "b", cfg.BatchFile, "batch file of expressions (shorthand)")
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "schoolbook/FFT dispatch threshold in limbs")
	fs.BoolVar(&cfg.ValidityChecks, "validity-checks", cfg.ValidityChecks, "enable runtime invariant validity checks")
	fs.StringVar(&cfg.SIMDTier, "simd-tier", cfg.SIMDTier, "kernel SIMD tier to select (avx2, sse2, scalar, auto)")
	fs.BoolVar(&cfg.Calibrate, "calibrate", cfg.Calibrate, "run threshold calibration and exit")
	fs.StringVar(&cfg.CalibrationProfile, "calibration-profile", cfg.CalibrationProfile, "calibration profile file")
	fs.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "number of parallel batch workers")
	fs.IntVar(&cfg.Parallel, "p", cfg.Parallel, "number of parallel batch workers (shorthand)")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "launch interactive dashboard")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose structured logging")
	fs.StringVar(&cfg.ServerAddr, "listen", cfg.ServerAddr, "HTTP server listen address (metrics/healthz)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum execution time")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "generate completion script (bash, zsh, fish, powershell)")
	fs.BoolVar(&version, "version", false, "show version information")
	fs.BoolVar(&version, "V", false, "show version information (shorthand)")

	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	if version {
		fmt.Fprintln(errWriter, "deccalc (arbitrary-precision decimal integer calculator)")
		return cfg, nil, flag.ErrHelp
	}

	ApplyEnvOverrides(&cfg, fs)
	return cfg, fs.Args(), nil
}
