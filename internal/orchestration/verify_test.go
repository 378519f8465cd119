package orchestration

import (
	"context"
	"errors"
	"testing"

	"github.com/agbru/boothcalc/internal/booth"
	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/twoscomp"
)

// exact returns a correct Result for a × b at width.
func exact(a, b int64, width int) booth.Result {
	bits, _ := twoscomp.Encode(a*b, 2*width)
	return booth.Result{Product: a * b, Bits: bits, Width: width}
}

type recordingReporter struct {
	total   uint64
	updates []uint64
	started bool
	done    bool
}

func (r *recordingReporter) Start(total uint64) { r.total, r.started = total, true }
func (r *recordingReporter) Update(done uint64) { r.updates = append(r.updates, done) }
func (r *recordingReporter) Finish()            { r.done = true }

func TestVerifyExhaustive(t *testing.T) {
	t.Parallel()
	for _, calc := range booth.NewDefaultFactory().GetAll() {
		calc := calc
		t.Run(calc.Name(), func(t *testing.T) {
			t.Parallel()
			rep := &recordingReporter{}
			report, err := VerifyExhaustive(context.Background(), calc, 5, rep)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !report.Passed() {
				t.Fatalf("%d failures, first: %v", report.FailureCount, report.Failures[0])
			}
			if report.Checked != 1024 {
				t.Errorf("Checked = %d, want 1024", report.Checked)
			}
			if !rep.started || !rep.done || rep.total != 1024 {
				t.Errorf("reporter lifecycle: %+v", rep)
			}
			if len(rep.updates) != 32 || rep.updates[31] != 1024 {
				t.Errorf("expected 32 updates ending at 1024, got %v", rep.updates)
			}
		})
	}
}

func TestVerifyExhaustiveWidthOne(t *testing.T) {
	t.Parallel()
	report, err := VerifyExhaustive(context.Background(), booth.BoothCalculator{}, 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Checked != 4 || !report.Passed() {
		t.Errorf("report = %+v, want 4 passing checks", report)
	}
}

func TestVerifyExhaustiveReportsFailures(t *testing.T) {
	t.Parallel()
	offByOne := named("broken", func(a, b int64, width int, _ booth.Observer) (booth.Result, error) {
		res := exact(a, b, width)
		if a == 1 {
			res.Product++
		}
		return res, nil
	})
	report, err := VerifyExhaustive(context.Background(), offByOne, 6, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.FailureCount != 64 {
		t.Errorf("FailureCount = %d, want 64", report.FailureCount)
	}
	if len(report.Failures) != MaxReportedFailures {
		t.Errorf("len(Failures) = %d, want %d", len(report.Failures), MaxReportedFailures)
	}
	f := report.Failures[0]
	if f.Multiplicand != 1 || f.Got != f.Want+1 {
		t.Errorf("first failure = %+v", f)
	}
}

func TestVerifyExhaustiveChecksBits(t *testing.T) {
	t.Parallel()
	badBits := named("bad-bits", func(a, b int64, width int, _ booth.Observer) (booth.Result, error) {
		res := exact(a, b, width)
		if a == -1 && b == -1 {
			res.Bits = "000000000000"
		}
		return res, nil
	})
	report, err := VerifyExhaustive(context.Background(), badBits, 6, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.FailureCount != 1 {
		t.Fatalf("FailureCount = %d, want 1", report.FailureCount)
	}
	if f := report.Failures[0]; f.Multiplicand != -1 || f.Multiplier != -1 {
		t.Errorf("failure = %+v, want -1 × -1", f)
	}
}

func TestVerifyExhaustiveErrors(t *testing.T) {
	t.Parallel()
	if _, err := VerifyExhaustive(context.Background(), booth.BoothCalculator{}, 13, nil); !apperrors.IsConfigError(err) {
		t.Errorf("width 13: expected ConfigError, got %v", err)
	}
	if _, err := VerifyExhaustive(context.Background(), booth.BoothCalculator{}, 0, nil); !apperrors.IsConfigError(err) {
		t.Errorf("width 0: expected ConfigError, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := VerifyExhaustive(ctx, booth.BoothCalculator{}, 4, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if report.Checked != 0 {
		t.Errorf("Checked = %d after cancel, want 0", report.Checked)
	}
}
