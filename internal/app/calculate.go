package app

import (
	"context"
	"io"
	"time"

	"github.com/agbru/boothcalc/internal/cli"
	"github.com/agbru/boothcalc/internal/config"
	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/logging"
	"github.com/agbru/boothcalc/internal/orchestration"
)

// runCalculate multiplies the configured operands with the selected
// algorithms and prints the result.
func (a *Application) runCalculate(out io.Writer) int {
	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config, a.Factory)
	if len(calculatorsToRun) == 0 {
		return apperrors.HandleError(apperrors.NewConfigError("unknown algorithm %q", a.Config.Algo),
			a.ErrWriter, cli.CLIColorProvider{})
	}

	req := orchestration.Request{
		Multiplicand: a.Config.Multiplicand,
		Multiplier:   a.Config.Multiplier,
		Width:        a.Config.Width,
		Trace:        a.Config.Trace,
		Observer:     a.observer(),
	}
	log := a.logger()
	log.Debug("multiplication requested",
		logging.String("algo", a.Config.Algo),
		logging.Int64("multiplicand", req.Multiplicand),
		logging.Int64("multiplier", req.Multiplier),
		logging.Int("width", req.Width),
	)
	results := orchestration.ExecuteMultiplications(calculatorsToRun, req)
	for _, res := range results {
		if res.Err != nil {
			log.Error("multiplication failed", res.Err, logging.String("algorithm", res.Name))
			continue
		}
		log.Debug("multiplication finished",
			logging.String("algorithm", res.Name),
			logging.Int64("product", res.Result.Product),
			logging.Int("operations", res.Result.Stats.Operations()),
			logging.Float64("microseconds", float64(res.Duration.Nanoseconds())/1e3),
		)
	}

	if a.Config.Quiet {
		return a.presentQuiet(results, out)
	}

	presenter := cli.CLIResultPresenter{}
	opts := orchestration.PresentationOptions{
		Multiplicand: a.Config.Multiplicand,
		Multiplier:   a.Config.Multiplier,
		Width:        a.Config.Width,
		Verbose:      a.Config.Verbose,
		Trace:        a.Config.Trace,
	}
	if a.Config.Algo == config.AlgoAll {
		return orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, out)
	}

	res := results[0]
	if res.Err != nil {
		return apperrors.HandleError(res.Err, a.ErrWriter, cli.CLIColorProvider{})
	}
	presenter.PresentResult(res, opts, out)
	return apperrors.ExitSuccess
}

// presentQuiet prints "<product> <bits>" for the first result. Errors and
// disagreements between algorithms still set the exit code.
func (a *Application) presentQuiet(results []orchestration.MultiplicationResult, out io.Writer) int {
	for _, res := range results {
		if res.Err != nil {
			return apperrors.HandleError(res.Err, a.ErrWriter, cli.CLIColorProvider{})
		}
	}
	first := results[0].Result
	for _, res := range results[1:] {
		if res.Result.Product != first.Product || res.Result.Bits != first.Bits {
			return apperrors.ExitErrorMismatch
		}
	}
	cli.DisplayQuietResult(out, first)
	return apperrors.ExitSuccess
}

// runExhaustive checks every operand pair at the configured width with each
// selected algorithm.
func (a *Application) runExhaustive(ctx context.Context, out io.Writer) int {
	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config, a.Factory)
	log := a.logger()

	exitCode := apperrors.ExitSuccess
	for _, calc := range calculatorsToRun {
		var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
		if !a.Config.Quiet {
			reporter = cli.NewCLIProgressReporter(out)
		}

		start := time.Now()
		report, err := orchestration.VerifyExhaustive(ctx, calc, a.Config.Width, reporter)
		if err != nil {
			log.Error("exhaustive verification stopped", err,
				logging.String("algorithm", calc.Name()), logging.Uint64("checked", report.Checked))
			return apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
		}
		log.Debug("exhaustive verification finished",
			logging.String("algorithm", report.Algorithm),
			logging.Int("width", report.Width),
			logging.Uint64("checked", report.Checked),
			logging.Uint64("failures", report.FailureCount),
			logging.Float64("seconds", time.Since(start).Seconds()),
		)
		cli.DisplayVerification(report, out)
		if !report.Passed() {
			exitCode = apperrors.ExitErrorMismatch
		}
	}
	return exitCode
}
