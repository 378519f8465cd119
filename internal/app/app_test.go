package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	apperrors "github.com/agbru/boothcalc/internal/errors"
)

// Run mutates the global theme and log level, so these tests are serial.

func runApp(t *testing.T, input string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	application, err := New(append([]string{"boothcalc", "--no-color"}, args...), &errOut, WithInput(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("New(%v): %v", args, err)
	}
	code = application.Run(context.Background(), &out)
	return code, out.String(), errOut.String()
}

func TestRunSingle(t *testing.T) {
	code, out, _ := runApp(t, "", "-a", "-3", "-b", "4")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"-3 × 4 = -12", "Binary: 111111110100", "booth, 6-bit registers"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunQuiet(t *testing.T) {
	code, out, _ := runApp(t, "", "-q", "3", "-4")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if out != "-12 111111110100\n" {
		t.Errorf("quiet output = %q, want %q", out, "-12 111111110100\n")
	}
}

func TestRunTrace(t *testing.T) {
	code, out, _ := runApp(t, "", "-t", "3", "-4")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"Initial state:", "P = 000000, Q = 111100, Q-1 = 0", "P = P - M"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	code, _, errOut := runApp(t, "", "-v", "-3", "4")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{
		`"component":"booth"`,
		`"message":"booth iteration"`,
		`"component":"boothcalc"`,
		`"message":"multiplication finished"`,
		`"product":-12`,
	} {
		if !strings.Contains(errOut, want) {
			t.Errorf("verbose log missing %s:\n%s", want, errOut)
		}
	}

	_, _, errOut = runApp(t, "", "-3", "4")
	if errOut != "" {
		t.Errorf("non-verbose run should not log, got %q", errOut)
	}
}

func TestRunCompareAll(t *testing.T) {
	code, out, _ := runApp(t, "", "--algo", "all", "5", "30")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"Comparison Summary", "shift-add", "Global Status: Success", "5 × 30 = 150"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunRangeError(t *testing.T) {
	code, _, errOut := runApp(t, "", "-w", "4", "20", "1")
	if code != apperrors.ExitErrorConfig {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if !strings.Contains(errOut, "Range error") {
		t.Errorf("stderr should describe the range error, got %q", errOut)
	}
}

func TestRunPromptsForOperands(t *testing.T) {
	code, out, _ := runApp(t, "3\n-4\n")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"Multiplicand: ", "Multiplier: ", "3 × -4 = -12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPromptsOnlyForMissingOperand(t *testing.T) {
	code, out, _ := runApp(t, "-4\n", "-a", "3")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if strings.Contains(out, "Multiplicand: ") {
		t.Errorf("-a was given; the multiplicand should not be asked for:\n%s", out)
	}
	for _, want := range []string{"Multiplier: ", "3 × -4 = -12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPromptRejectsBadInput(t *testing.T) {
	code, _, errOut := runApp(t, "three\n")
	if code != apperrors.ExitErrorConfig {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorConfig)
	}
	if errOut == "" {
		t.Error("expected an error message on stderr")
	}
}

func TestRunREPL(t *testing.T) {
	code, out, _ := runApp(t, "mul 2 3\nexit\n", "-i")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "2 × 3 = 6") {
		t.Errorf("REPL output missing product:\n%s", out)
	}
}

func TestRunExhaustive(t *testing.T) {
	code, out, _ := runApp(t, "", "--exhaustive", "-q", "-w", "3", "--algo", "all")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, want := range []string{"booth: all 64 products correct at 3 bits", "shift-add: all 64 products correct at 3 bits"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCompletion(t *testing.T) {
	code, out, _ := runApp(t, "", "--completion", "bash")
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out, "complete") || !strings.Contains(out, "shift-add") {
		t.Errorf("bash completion looks wrong:\n%s", out)
	}
}

func TestNewConfigError(t *testing.T) {
	var errOut bytes.Buffer
	_, err := New([]string{"boothcalc", "-w", "0"}, &errOut)
	if !apperrors.IsConfigError(err) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestIsHelpError(t *testing.T) {
	var errOut bytes.Buffer
	_, err := New([]string{"boothcalc", "--help"}, &errOut)
	if !IsHelpError(err) {
		t.Fatalf("expected help error, got %v", err)
	}
	if IsHelpError(apperrors.NewConfigError("x")) {
		t.Error("a ConfigError is not a help error")
	}
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"-w", "4", "-V"}, true},
		{[]string{"-v"}, false},
		{[]string{"--", "--version"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.HasPrefix(buf.String(), "boothcalc "+Version) {
		t.Errorf("version banner = %q", buf.String())
	}
}
