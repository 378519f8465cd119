// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayTrace].
//
//   - Format* and Render* functions return a string without performing I/O.
//     Examples: [FormatQuietResult], [RenderTraceTable].

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/boothcalc/internal/booth"
	"github.com/agbru/boothcalc/internal/format"
	"github.com/agbru/boothcalc/internal/orchestration"
	"github.com/agbru/boothcalc/internal/twoscomp"
	"github.com/agbru/boothcalc/internal/ui"
)

// FormatQuietResult returns the one-line quiet output: "<decimal> <bits>".
func FormatQuietResult(res booth.Result) string {
	return fmt.Sprintf("%d %s", res.Product, res.Bits)
}

// DisplayQuietResult writes FormatQuietResult followed by a newline.
func DisplayQuietResult(out io.Writer, res booth.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResult prints the product in decimal and binary. With opts.Trace
// the iteration table precedes it; with opts.Verbose the operand encodings,
// the Booth recoding of the multiplier and the operation counts follow.
func DisplayResult(result orchestration.MultiplicationResult, opts orchestration.PresentationOptions, out io.Writer) {
	res := result.Result
	if opts.Trace && len(result.Events) > 0 {
		DisplayTrace(res.Initial, result.Events, out)
	}

	fmt.Fprintf(out, "\n%sResult (%s, %d-bit registers):%s\n", ui.ColorBold(), result.Name, res.Width, ui.ColorReset())
	fmt.Fprintf(out, "  %s%d × %d%s = %s%d%s\n",
		ui.ColorMagenta(), opts.Multiplicand, opts.Multiplier, ui.ColorReset(),
		ui.ColorGreen(), res.Product, ui.ColorReset())
	fmt.Fprintf(out, "  Binary: %s%s%s\n", ui.ColorCyan(), res.Bits, ui.ColorReset())
	fmt.Fprintf(out, "  P | Q:  %s\n", format.FormatProduct(res.Bits))

	if !opts.Verbose {
		return
	}
	fmt.Fprintf(out, "\n%sDetails:%s\n", ui.ColorBold(), ui.ColorReset())
	if m, err := twoscomp.Encode(opts.Multiplicand, res.Width); err == nil {
		fmt.Fprintf(out, "  Multiplicand M:  %s\n", m)
	}
	fmt.Fprintf(out, "  Multiplier Q:    %s\n", res.Initial.Q)
	if digits, err := booth.Recode(opts.Multiplier, res.Width); err == nil {
		fmt.Fprintf(out, "  Booth digits:    %s\n", booth.FormatDigits(digits))
	}
	fmt.Fprintf(out, "  Operations:      %s%d%s (%d additions, %d subtractions, %d shifts)\n",
		ui.ColorYellow(), res.Stats.Operations(), ui.ColorReset(),
		res.Stats.Additions, res.Stats.Subtractions, res.Stats.Shifts)
	fmt.Fprintf(out, "  Duration:        %s\n", format.FormatExecutionDuration(result.Duration))
}

// DisplayTrace prints the initial registers followed by the iteration table.
func DisplayTrace(initial booth.State, events []booth.Event, out io.Writer) {
	fmt.Fprintf(out, "\n%sInitial state:%s %s\n", ui.ColorBold(), ui.ColorReset(), initial)
	fmt.Fprintln(out, RenderTraceTable(events))
	for _, ev := range events {
		if ev.Overflow {
			fmt.Fprintf(out, "%s* P ± M overflowed %d bits; the shift keeps the sign of the true sum.%s\n",
				ui.ColorYellow(), ev.BeforeShift.Width(), ui.ColorReset())
			break
		}
	}
}

// RenderTraceTable renders one row per iteration: the inspected pair, the
// accumulator operation, P after the operation and the registers after the
// arithmetic shift.
func RenderTraceTable(events []booth.Event) string {
	theme := ui.GetCurrentTUITheme()
	header := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)

	rows := make([][]string, 0, len(events))
	ops := make([]booth.Op, 0, len(events))
	for _, ev := range events {
		op := ev.Op.String()
		if ev.Overflow {
			op += " *"
		}
		rows = append(rows, []string{
			strconv.Itoa(ev.Iteration),
			ev.Pair,
			op,
			ev.BeforeShift.P,
			ev.AfterShift.P,
			ev.AfterShift.Q,
			string(ev.AfterShift.Q1),
		})
		ops = append(ops, ev.Op)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("#", "Q₀Q₋₁", "Operation", "P (op)", "P", "Q", "Q₋₁").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 2 && row >= 0 && row < len(ops) {
				switch ops[row] {
				case booth.OpAdd:
					return cell.Foreground(theme.Add)
				case booth.OpSub:
					return cell.Foreground(theme.Sub)
				}
				return cell.Foreground(theme.Dim)
			}
			return cell
		})
	return t.String()
}

// DisplayVerification prints the outcome of an exhaustive run.
func DisplayVerification(report orchestration.VerificationReport, out io.Writer) {
	checked := format.FormatNumberString(strconv.FormatUint(report.Checked, 10))
	if report.Passed() {
		fmt.Fprintf(out, "%s✅ %s: all %s products correct at %d bits.%s\n",
			ui.ColorGreen(), report.Algorithm, checked, report.Width, ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s❌ %s: %d of %s products wrong at %d bits.%s\n",
		ui.ColorRed(), report.Algorithm, report.FailureCount, checked, report.Width, ui.ColorReset())
	for _, f := range report.Failures {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if shown := uint64(len(report.Failures)); report.FailureCount > shown {
		fmt.Fprintf(out, "  ... and %d more\n", report.FailureCount-shown)
	}
}
