package orchestration

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/agbru/boothcalc/internal/booth"
	apperrors "github.com/agbru/boothcalc/internal/errors"
)

// MockResultPresenter records what it was asked to present.
type MockResultPresenter struct {
	tableRows int
	presented *MultiplicationResult
}

func (m *MockResultPresenter) PresentComparisonTable(results []MultiplicationResult, out io.Writer) {
	m.tableRows = len(results)
}

func (m *MockResultPresenter) PresentResult(result MultiplicationResult, opts PresentationOptions, out io.Writer) {
	m.presented = &result
}

type mockErrorHandler struct{}

func (mockErrorHandler) HandleError(err error, out io.Writer) int {
	return apperrors.ExitCodeFor(err)
}

// MockCalculator is a booth.Calculator with injectable behaviour.
type MockCalculator struct {
	NameFunc     func() string
	MultiplyFunc func(a, b int64, width int, obs booth.Observer) (booth.Result, error)
}

// Name returns the mocked name of the calculator.
func (m *MockCalculator) Name() string {
	if m.NameFunc != nil {
		return m.NameFunc()
	}
	return "mock"
}

func (m *MockCalculator) Description() string { return "mock calculator" }

// Multiply invokes MultiplyFunc, defaulting to native multiplication.
func (m *MockCalculator) Multiply(a, b int64, width int, obs booth.Observer) (booth.Result, error) {
	if m.MultiplyFunc != nil {
		return m.MultiplyFunc(a, b, width, obs)
	}
	return booth.Result{Product: a * b, Width: width}, nil
}

func named(name string, fn func(a, b int64, width int, obs booth.Observer) (booth.Result, error)) *MockCalculator {
	return &MockCalculator{NameFunc: func() string { return name }, MultiplyFunc: fn}
}

func TestExecuteMultiplications(t *testing.T) {
	t.Parallel()
	calcs := []booth.Calculator{booth.BoothCalculator{}, booth.ShiftAddCalculator{}}

	t.Run("products", func(t *testing.T) {
		t.Parallel()
		results := ExecuteMultiplications(calcs, Request{Multiplicand: -3, Multiplier: 4, Width: 6})
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		for _, r := range results {
			if r.Err != nil {
				t.Fatalf("%s: unexpected error %v", r.Name, r.Err)
			}
			if r.Result.Product != -12 || r.Result.Bits != "111111110100" {
				t.Errorf("%s: got %d %s, want -12 111111110100", r.Name, r.Result.Product, r.Result.Bits)
			}
			if r.Events != nil {
				t.Errorf("%s: events recorded without Trace", r.Name)
			}
		}
	})

	t.Run("trace", func(t *testing.T) {
		t.Parallel()
		var seen int
		obs := booth.ObserverFunc(func(booth.Event) { seen++ })
		results := ExecuteMultiplications(calcs[:1], Request{Multiplicand: 3, Multiplier: -4, Width: 6, Trace: true, Observer: obs})
		if got := len(results[0].Events); got != 6 {
			t.Errorf("expected 6 trace events, got %d", got)
		}
		if seen != 6 {
			t.Errorf("extra observer saw %d events, want 6", seen)
		}
	})

	t.Run("failure does not stop others", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		mixed := []booth.Calculator{
			named("bad", func(int64, int64, int, booth.Observer) (booth.Result, error) { return booth.Result{}, boom }),
			booth.BoothCalculator{},
		}
		results := ExecuteMultiplications(mixed, Request{Multiplicand: 2, Multiplier: 3, Width: 4})
		if !errors.Is(results[0].Err, boom) {
			t.Errorf("first result error = %v, want boom", results[0].Err)
		}
		if results[1].Err != nil || results[1].Result.Product != 6 {
			t.Errorf("second result = %+v, want product 6", results[1])
		}
	})

	t.Run("range error", func(t *testing.T) {
		t.Parallel()
		results := ExecuteMultiplications(calcs[:1], Request{Multiplicand: 32, Multiplier: 1, Width: 6})
		if !apperrors.IsRangeError(results[0].Err) {
			t.Errorf("expected RangeError, got %v", results[0].Err)
		}
	})
}

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	opts := PresentationOptions{Multiplicand: 5, Multiplier: 30, Width: 6}

	t.Run("consistent", func(t *testing.T) {
		t.Parallel()
		results := ExecuteMultiplications([]booth.Calculator{booth.ShiftAddCalculator{}, booth.BoothCalculator{}},
			Request{Multiplicand: 5, Multiplier: 30, Width: 6})
		p := &MockResultPresenter{}
		var buf bytes.Buffer
		code := AnalyzeComparisonResults(results, opts, p, mockErrorHandler{}, &buf)
		if code != apperrors.ExitSuccess {
			t.Fatalf("exit code = %d, want %d", code, apperrors.ExitSuccess)
		}
		if p.tableRows != 2 {
			t.Errorf("table rows = %d, want 2", p.tableRows)
		}
		// Booth needs 2 updates for 30 against 4 for shift-add, so it sorts first.
		if p.presented == nil || p.presented.Name != "booth" {
			t.Errorf("presented %+v, want booth first", p.presented)
		}
		if !strings.Contains(buf.String(), "Success") {
			t.Errorf("missing success status: %q", buf.String())
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		t.Parallel()
		results := []MultiplicationResult{
			{Name: "a", Result: booth.Result{Product: 6, Bits: "00000110"}},
			{Name: "b", Result: booth.Result{Product: 7, Bits: "00000111"}},
		}
		var buf bytes.Buffer
		code := AnalyzeComparisonResults(results, opts, &MockResultPresenter{}, mockErrorHandler{}, &buf)
		if code != apperrors.ExitErrorMismatch {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorMismatch)
		}
		if !strings.Contains(buf.String(), "CRITICAL") {
			t.Errorf("missing mismatch status: %q", buf.String())
		}
	})

	t.Run("all failed", func(t *testing.T) {
		t.Parallel()
		rangeErr := apperrors.RangeError{Value: 40, Width: 6, Min: -32, Max: 31}
		results := []MultiplicationResult{
			{Name: "a", Err: rangeErr},
			{Name: "b", Err: rangeErr},
		}
		var buf bytes.Buffer
		code := AnalyzeComparisonResults(results, opts, &MockResultPresenter{}, mockErrorHandler{}, &buf)
		if code != apperrors.ExitErrorConfig {
			t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
		}
	})

	t.Run("failures sort last", func(t *testing.T) {
		t.Parallel()
		results := []MultiplicationResult{
			{Name: "bad", Err: errors.New("boom")},
			{Name: "good", Result: booth.Result{Product: 1, Bits: "0001"}},
		}
		p := &MockResultPresenter{}
		code := AnalyzeComparisonResults(results, opts, p, mockErrorHandler{}, io.Discard)
		if code != apperrors.ExitSuccess {
			t.Errorf("exit code = %d, want success", code)
		}
		if results[0].Name != "good" {
			t.Errorf("results[0] = %s, want good", results[0].Name)
		}
	})
}
