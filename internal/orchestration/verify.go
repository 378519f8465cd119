package orchestration

import (
	"context"
	"fmt"

	"github.com/agbru/boothcalc/internal/booth"
	"github.com/agbru/boothcalc/internal/config"
	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/twoscomp"
)

// MaxReportedFailures bounds VerificationReport.Failures; FailureCount
// still counts every failing pair.
const MaxReportedFailures = 16

// Failure is one operand pair whose product disagreed with a*b.
type Failure struct {
	Multiplicand int64
	Multiplier   int64
	Want         int64
	Got          int64
	// Err is set when the calculator returned an error instead of a product.
	Err error
}

func (f Failure) String() string {
	if f.Err != nil {
		return fmt.Sprintf("%d × %d: %v", f.Multiplicand, f.Multiplier, f.Err)
	}
	return fmt.Sprintf("%d × %d = %d, got %d", f.Multiplicand, f.Multiplier, f.Want, f.Got)
}

// VerificationReport summarizes an exhaustive run.
type VerificationReport struct {
	Algorithm    string
	Width        int
	Checked      uint64
	FailureCount uint64
	Failures     []Failure
}

// Passed reports whether every checked pair produced a*b.
func (r VerificationReport) Passed() bool { return r.FailureCount == 0 }

// VerifyExhaustive multiplies every pair of width-bit operands with calc and
// compares the product and its 2N-bit encoding to native multiplication. width must not exceed
// config.MaxExhaustiveWidth. Progress is reported once per multiplicand.
// Cancellation of ctx stops the run between multiplicands and returns the
// partial report with ctx's error.
func VerifyExhaustive(ctx context.Context, calc booth.Calculator, width int, reporter ProgressReporter) (VerificationReport, error) {
	if width > config.MaxExhaustiveWidth {
		return VerificationReport{}, apperrors.NewConfigError(
			"exhaustive verification supports widths up to %d, got %d", config.MaxExhaustiveWidth, width)
	}
	lo, hi, err := twoscomp.Range(width)
	if err != nil {
		return VerificationReport{}, err
	}
	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	span := uint64(hi - lo + 1)
	report := VerificationReport{Algorithm: calc.Name(), Width: width}
	reporter.Start(span * span)
	defer reporter.Finish()

	for a := lo; a <= hi; a++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		for b := lo; b <= hi; b++ {
			res, err := calc.Multiply(a, b, width, nil)
			report.Checked++
			if err == nil && res.Product == a*b {
				if bits, encErr := twoscomp.Encode(a*b, 2*width); encErr == nil && bits == res.Bits {
					continue
				}
			}
			report.FailureCount++
			if len(report.Failures) < MaxReportedFailures {
				report.Failures = append(report.Failures, Failure{
					Multiplicand: a, Multiplier: b, Want: a * b, Got: res.Product, Err: err,
				})
			}
		}
		reporter.Update(report.Checked)
	}
	return report, nil
}
