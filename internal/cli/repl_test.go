package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/boothcalc/internal/booth"
)

func runREPL(t *testing.T, cfg REPLConfig, script string) string {
	t.Helper()
	r := NewREPL(booth.NewDefaultFactory(), cfg)
	var out bytes.Buffer
	r.SetInput(strings.NewReader(script))
	r.SetOutput(&out)
	r.Start()
	return out.String()
}

func TestREPLCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		script   string
		contains []string
	}{
		{"mul", "mul -3 4\nexit\n", []string{"-3 × 4 = -12", "Goodbye!"}},
		{"bare operands", "3 -4\nquit\n", []string{"3 × -4 = -12", "111111110100"}},
		{"range error", "mul 32 1\n", []string{"Range error", "Hint:"}},
		{"width", "width 8\nmul 100 -27\n", []string{"Width set to 8 bits (operands in [-128, 127])", "= -2700"}},
		{"bad width", "width 40\n", []string{"Invalid width: 40"}},
		{"algo", "algo shift-add\nstatus\n", []string{"Algorithm changed to: shift-add", "Algorithm:  shift-add"}},
		{"unknown algo", "algo wallace\n", []string{"Unknown algorithm: wallace", "booth, shift-add"}},
		{"trace", "trace\nmul 3 -4\n", []string{"Iteration trace: on", "Initial state:", "P = P - M"}},
		{"encode", "encode -5\n", []string{"-5 = 111011 (6 bits)"}},
		{"encode out of range", "encode 32\n", []string{"Range error"}},
		{"decode", "decode 111011\n", []string{"111011 = -5"}},
		{"decode bad", "decode 10a\n", []string{"Format error"}},
		{"compare", "compare 5 30\n", []string{"Comparison Summary", "shift-add", "All valid results are consistent"}},
		{"usage", "mul 1\n", []string{"Usage: mul <a> <b>"}},
		{"unknown", "frobnicate\n", []string{"Unknown command: frobnicate"}},
		{"eof", "", []string{"Goodbye!"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := runREPL(t, REPLConfig{DefaultAlgo: "booth", Width: 6}, tt.script)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestNewREPLDefaults(t *testing.T) {
	t.Parallel()
	r := NewREPL(booth.NewDefaultFactory(), REPLConfig{DefaultAlgo: "all"})
	if r.currentAlgo != "booth" {
		t.Errorf("currentAlgo = %q, want booth", r.currentAlgo)
	}
	if r.config.Width != 6 {
		t.Errorf("Width = %d, want 6", r.config.Width)
	}
}

func TestREPLExitStopsProcessing(t *testing.T) {
	t.Parallel()
	out := runREPL(t, REPLConfig{}, "exit\nmul 1 1\n")
	if strings.Contains(out, "1 × 1") {
		t.Errorf("commands after exit were processed:\n%s", out)
	}
}
