package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/format"
	"github.com/agbru/boothcalc/internal/orchestration"
	"github.com/agbru/boothcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner whose suffix shows a progress bar and an ETA.
type CLIProgressReporter struct {
	out io.Writer

	mu      sync.Mutex
	spinner Spinner
	tracker *format.ProgressWithETA
}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = (*CLIProgressReporter)(nil)

// NewCLIProgressReporter returns a reporter that draws on out.
func NewCLIProgressReporter(out io.Writer) *CLIProgressReporter {
	return &CLIProgressReporter{out: out}
}

// Start creates and starts the spinner for total checks.
func (r *CLIProgressReporter) Start(total uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tracker = format.NewProgressWithETA(total)
	r.spinner = newSpinner(spinner.WithWriter(r.out))
	r.spinner.UpdateSuffix(" " + format.FormatProgressBarWithETA(0, 0, ProgressBarWidth))
	r.spinner.Start()
}

// Update refreshes the bar and the estimate.
func (r *CLIProgressReporter) Update(done uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner == nil {
		return
	}
	frac, eta := r.tracker.Update(done)
	r.spinner.UpdateSuffix(" " + format.FormatProgressBarWithETA(frac, eta, ProgressBarWidth))
}

// Finish stops the spinner and prints the final bar on its own line.
func (r *CLIProgressReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.spinner == nil {
		return
	}
	r.spinner.Stop()
	r.spinner = nil
	fmt.Fprintf(r.out, "%s\n", format.FormatProgressBarWithETA(r.tracker.Fraction(), 0, ProgressBarWidth))
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable renders one row per algorithm with its product,
// operation counts, duration and status.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.MultiplicationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	fmt.Fprintln(out, RenderComparisonTable(results))
}

// RenderComparisonTable returns the comparison table as a string.
func RenderComparisonTable(results []orchestration.MultiplicationResult) string {
	theme := ui.GetCurrentTUITheme()
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			rows = append(rows, []string{res.Name, "-", "-", "-", "-", fmt.Sprintf("❌ Failure (%v)", res.Err)})
			continue
		}
		s := res.Result.Stats
		rows = append(rows, []string{
			res.Name,
			strconv.FormatInt(res.Result.Product, 10),
			strconv.Itoa(s.Additions),
			strconv.Itoa(s.Subtractions),
			format.FormatExecutionDuration(res.Duration),
			"✅ Success",
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Algorithm", "Product", "Adds", "Subs", "Duration", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 5 && row >= 0 && row < len(results) {
				if results[row].Err != nil {
					return cell.Foreground(theme.Error)
				}
				return cell.Foreground(theme.Success)
			}
			return cell
		})
	return t.String()
}

// PresentResult displays the final multiplication result.
func (CLIResultPresenter) PresentResult(result orchestration.MultiplicationResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts, out)
}

// HandleError handles multiplication errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	return apperrors.HandleError(err, out, CLIColorProvider{})
}
