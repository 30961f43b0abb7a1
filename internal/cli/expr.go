// Expression parsing and evaluation: "<a> <op> <b>" and "cmp <a> <b>",
// the two forms batch mode, -e, and the REPL all accept. Operands are
// signed (internal/bigsigned) so "-7 + 3" and "cmp -7 3" parse and
// evaluate with C-style truncating division/modulo semantics.

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/fibcalc/internal/bigsigned"
	apperrors "github.com/agbru/fibcalc/internal/errors"
	"github.com/agbru/fibcalc/internal/orchestration"
)

// ParsedExpr is a decoded expression ready for evaluation.
type ParsedExpr struct {
	Op   string // "+", "-", "*", "/", "%", "cmp"
	A, B bigsigned.Int
}

// ParseExpression decodes "<a> <op> <b>" or "cmp <a> <b>" into a ParsedExpr.
func ParseExpression(expr string) (ParsedExpr, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return ParsedExpr{}, fmt.Errorf("expression %q: want \"<a> <op> <b>\" or \"cmp <a> <b>\"", expr)
	}

	var op, araw, braw string
	if fields[0] == "cmp" {
		op, araw, braw = "cmp", fields[1], fields[2]
	} else {
		araw, op, braw = fields[0], fields[1], fields[2]
	}

	switch op {
	case "+", "-", "*", "/", "%", "cmp":
	default:
		return ParsedExpr{}, fmt.Errorf("expression %q: unsupported operator %q", expr, op)
	}

	a, err := bigsigned.FromString(araw)
	if err != nil {
		return ParsedExpr{}, fmt.Errorf("expression %q: operand %q: %w", expr, araw, err)
	}
	b, err := bigsigned.FromString(braw)
	if err != nil {
		return ParsedExpr{}, fmt.Errorf("expression %q: operand %q: %w", expr, braw, err)
	}
	return ParsedExpr{Op: op, A: a, B: b}, nil
}

// kernelsForExpr resolves the kernels that cross-check p's magnitude. Only
// "*" and "/" reach here: addition, subtraction, and modulo have exactly
// one implementation each and are evaluated directly against p.A/p.B's
// signed bigsigned.Int values (see evalDirect), so there is nothing to
// cross-check and no reason to force them through decimal.Uint's unsigned
// Kernel machinery.
func kernelsForExpr(p ParsedExpr) ([]orchestration.Kernel, error) {
	switch p.Op {
	case "*":
		return orchestration.ResolveKernels("multiply")
	case "/":
		return orchestration.ResolveKernels("divide")
	default:
		return nil, fmt.Errorf("kernelsForExpr: unsupported operator %q", p.Op)
	}
}

// resultSign reports the sign of a.Op b for "*" or "/": the product and
// the truncated quotient are both negative exactly when the operands'
// signs differ.
func resultSign(p ParsedExpr) bool {
	return p.A.IsNegative() != p.B.IsNegative()
}

// evalDirect evaluates "+", "-", or "%" via bigsigned.Int directly,
// without going through the unsigned Kernel machinery.
func evalDirect(p ParsedExpr) (bigsigned.Int, error) {
	switch p.Op {
	case "+":
		return p.A.Add(p.B), nil
	case "-":
		return p.A.Sub(p.B), nil
	case "%":
		return p.A.Mod(p.B)
	default:
		return bigsigned.Int{}, fmt.Errorf("evalDirect: unsupported operator %q", p.Op)
	}
}

// compareSymbol renders a Compare result as "<", "=", or ">".
func compareSymbol(c int) string {
	switch {
	case c < 0:
		return "<"
	case c > 0:
		return ">"
	default:
		return "="
	}
}

// EvalExpr evaluates a single expression and returns its scripting-friendly
// result string. It matches internal/parallel.EvalBatch's eval func shape,
// so it plugs directly into batch mode; the REPL and -e use RunExpression
// instead for the colorized, tabular presentation.
func EvalExpr(ctx context.Context, expr string) (string, error) {
	p, err := ParseExpression(expr)
	if err != nil {
		return "", err
	}

	switch p.Op {
	case "cmp":
		return compareSymbol(p.A.Compare(p.B)), nil
	case "+", "-", "%":
		r, err := evalDirect(p)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}

	kernels, err := kernelsForExpr(p)
	if err != nil {
		return "", err
	}
	results := orchestration.ExecuteKernelComparison(ctx, kernels, p.A.Abs(), p.B.Abs(), orchestration.NullProgressReporter{}, io.Discard)

	var first *orchestration.CalculationResult
	var firstErr error
	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		if first == nil {
			first = &results[i]
			continue
		}
		if results[i].Result.Compare(first.Result) != 0 {
			return "", fmt.Errorf("kernel mismatch on %q: %s=%s, %s=%s", expr, first.Name, first.Result, results[i].Name, results[i].Result)
		}
	}
	if first == nil {
		if firstErr != nil {
			return "", firstErr
		}
		return "", fmt.Errorf("no kernel produced a result for %q", expr)
	}

	magStr := first.Result.String()
	if resultSign(p) && magStr != "0" {
		magStr = "-" + magStr
	}
	return magStr, nil
}

// RunExpression evaluates expr with full progress reporting and presents
// the result (or the comparison table, for multiply/divide) through
// presenter. It returns an apperrors exit code.
func RunExpression(ctx context.Context, expr string, opts orchestration.PresentationOptions, presenter orchestration.ComparisonPresenter, progressReporter orchestration.ProgressReporter, out io.Writer) int {
	p, err := ParseExpression(expr)
	if err != nil {
		return presenter.HandleError(err, 0, out)
	}
	opts.Expr = expr

	switch p.Op {
	case "cmp":
		fmt.Fprintf(out, "%s %s %s\n", p.A, compareSymbol(p.A.Compare(p.B)), p.B)
		return apperrors.ExitSuccess
	case "+", "-", "%":
		start := time.Now()
		r, err := evalDirect(p)
		if err != nil {
			return presenter.HandleError(err, time.Since(start), out)
		}
		presenter.PresentResult(orchestration.CalculationResult{
			Name:     p.Op,
			Result:   r.Abs(),
			Negative: r.IsNegative(),
			Duration: time.Since(start),
		}, opts, out)
		return apperrors.ExitSuccess
	}

	kernels, err := kernelsForExpr(p)
	if err != nil {
		return presenter.HandleError(err, 0, out)
	}
	results := orchestration.ExecuteKernelComparison(ctx, kernels, p.A.Abs(), p.B.Abs(), progressReporter, out)
	neg := resultSign(p)
	for i := range results {
		results[i].Negative = neg
	}
	return orchestration.AnalyzeComparisonResults(results, opts, presenter, out)
}
