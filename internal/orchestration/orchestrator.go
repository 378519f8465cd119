package orchestration

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/agbru/boothcalc/internal/booth"
	apperrors "github.com/agbru/boothcalc/internal/errors"
)

// Request is a single multiplication to run on every selected calculator.
type Request struct {
	Multiplicand int64
	Multiplier   int64
	Width        int
	// Trace records each calculator's iteration events in its result.
	Trace bool
	// Observer, if set, receives the events of every run in addition to
	// the trace recorder.
	Observer booth.Observer
}

// ExecuteMultiplications runs req on each calculator in order and collects
// one result per calculator. Runs are independent: a failing calculator does
// not stop the others.
func ExecuteMultiplications(calculators []booth.Calculator, req Request) []MultiplicationResult {
	results := make([]MultiplicationResult, len(calculators))
	for i, calc := range calculators {
		var rec *booth.Recorder
		obs := req.Observer
		if req.Trace {
			rec = booth.NewRecorder()
			obs = booth.Observers(req.Observer, rec)
		}

		startTime := time.Now()
		res, err := calc.Multiply(req.Multiplicand, req.Multiplier, req.Width, obs)
		results[i] = MultiplicationResult{
			Name: calc.Name(), Result: res, Duration: time.Since(startTime), Err: err,
		}
		if rec != nil && err == nil {
			results[i].Events = rec.Events()
		}
	}
	return results
}

// AnalyzeComparisonResults processes the results from multiple algorithms and
// generates a summary report.
//
// Successful results are ordered by accumulator operations, fewest first, and
// must agree on both the decimal product and the product bits. Failures sort
// last. The first successful result is presented in full.
//
// Returns an exit code: success, the first error's code when every
// calculator failed, or ExitErrorMismatch on disagreement.
func AnalyzeComparisonResults(results []MultiplicationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Result.Stats.Operations() < results[j].Result.Stats.Operations()
	})

	var firstValidResult *MultiplicationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the multiplication.\n")
		return errHandler.HandleError(firstError, out)
	}

	for _, res := range results {
		if res.Err == nil && (res.Result.Product != firstValidResult.Result.Product || res.Result.Bits != firstValidResult.Result.Bits) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s returned %d, %s returned %d.\n",
				firstValidResult.Name, firstValidResult.Result.Product, res.Name, res.Result.Product)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
