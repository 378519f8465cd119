package orchestration

import (
	"io"
	"time"

	"github.com/agbru/boothcalc/internal/booth"
)

// MultiplicationResult encapsulates the outcome of one calculator run.
// It serves as the shared domain type between orchestration and presentation layers.
type MultiplicationResult struct {
	// Name is the registry key of the calculator (e.g. "booth").
	Name string
	// Result holds the product, final registers and operation counts.
	// It is the zero value if an error occurred.
	Result booth.Result
	// Events is the iteration trace, recorded only when requested.
	Events []booth.Event
	// Duration is the time taken to complete the multiplication.
	Duration time.Duration
	// Err contains any error that occurred during the multiplication.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Multiplicand int64
	Multiplier   int64
	Width        int
	Verbose      bool
	Trace        bool
}

// ProgressReporter displays the progress of a long-running verification.
// This interface decouples the orchestration layer from the presentation layer.
type ProgressReporter interface {
	// Start is called once before any work with the total number of checks.
	Start(total uint64)
	// Update reports the number of checks done so far.
	Update(done uint64)
	// Finish is called once when the run ends, successfully or not.
	Finish()
}

// NullProgressReporter discards progress. Useful for quiet mode or testing.
type NullProgressReporter struct{}

// Start does nothing.
func (NullProgressReporter) Start(uint64) {}

// Update does nothing.
func (NullProgressReporter) Update(uint64) {}

// Finish does nothing.
func (NullProgressReporter) Finish() {}

// ResultPresenter defines the interface for presenting multiplication results.
// This interface decouples the orchestration layer from presentation concerns.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-algorithm summary table.
	PresentComparisonTable(results []MultiplicationResult, out io.Writer)

	// PresentResult displays one product, and its trace when opts.Trace is set.
	PresentResult(result MultiplicationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles multiplication errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}
