package booth

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/agbru/boothcalc/internal/errors"
)

func TestMultiply_KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		multiplicand int64
		multiplier   int64
		width        int
		wantProduct  int64
		wantBits     string
	}{
		{"negative times positive", -3, 4, 6, -12, "111111110100"},
		{"negative times negative", -3, -4, 6, 12, "000000001100"},
		{"positive times negative", 3, -4, 6, -12, "111111110100"},
		{"min multiplicand", -32, 1, 6, -32, "111111100000"},
		{"min multiplier", 1, -32, 6, -32, "111111100000"},
		{"min squared", -32, -32, 6, 1024, "010000000000"},
		{"max squared", 31, 31, 6, 961, "001111000001"},
		{"width one", -1, -1, 1, 1, "01"},
		{"width four", 7, -5, 4, -35, "11011101"},
		{"zero multiplier", 17, 0, 6, 0, "000000000000"},
		{"zero multiplicand", 0, -17, 6, 0, "000000000000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			product, bits, err := Multiply(tt.multiplicand, tt.multiplier, tt.width)
			if err != nil {
				t.Fatalf("Multiply(%d, %d, %d) error: %v", tt.multiplicand, tt.multiplier, tt.width, err)
			}
			if product != tt.wantProduct {
				t.Errorf("product = %d, want %d", product, tt.wantProduct)
			}
			if bits != tt.wantBits {
				t.Errorf("bits = %q, want %q", bits, tt.wantBits)
			}
			if len(bits) != 2*tt.width {
				t.Errorf("len(bits) = %d, want %d", len(bits), 2*tt.width)
			}
		})
	}
}

// TestMultiply_Exhaustive checks every operand pair for small widths,
// including the degenerate width of one bit.
func TestMultiply_Exhaustive(t *testing.T) {
	t.Parallel()
	for width := 1; width <= 7; width++ {
		width := width
		t.Run(fmt.Sprintf("N=%d", width), func(t *testing.T) {
			t.Parallel()
			lo, hi := -(int64(1) << (width - 1)), int64(1)<<(width-1)-1
			for a := lo; a <= hi; a++ {
				for b := lo; b <= hi; b++ {
					got, _, err := Multiply(a, b, width)
					if err != nil {
						t.Fatalf("Multiply(%d, %d, %d) error: %v", a, b, width, err)
					}
					if got != a*b {
						t.Fatalf("Multiply(%d, %d, %d) = %d, want %d", a, b, width, got, a*b)
					}
				}
			}
		})
	}
}

func TestMultiply_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		multiplicand int64
		multiplier   int64
		width        int
		check        func(error) bool
		operand      string
	}{
		{"zero width", 1, 1, 0, apperrors.IsConfigError, ""},
		{"negative width", 1, 1, -3, apperrors.IsConfigError, ""},
		{"width too large", 1, 1, MaxWidth + 1, apperrors.IsConfigError, ""},
		{"multiplicand out of range", 32, 1, 6, apperrors.IsRangeError, "multiplicand"},
		{"multiplier out of range", 1, -33, 6, apperrors.IsRangeError, "multiplier"},
		{"width one positive", 1, 0, 1, apperrors.IsRangeError, "multiplicand"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := Multiply(tt.multiplicand, tt.multiplier, tt.width)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error kind: %v", err)
			}
			if tt.operand != "" {
				var re apperrors.RangeError
				if !errors.As(err, &re) {
					t.Fatalf("expected RangeError in chain: %v", err)
				}
				if got := err.Error(); len(got) < len(tt.operand) || got[:len(tt.operand)] != tt.operand {
					t.Errorf("error %q should name the %s", got, tt.operand)
				}
			}
		})
	}
}

func TestMultiplyObserved_Trace(t *testing.T) {
	t.Parallel()
	rec := NewRecorder()
	res, err := MultiplyObserved(3, -4, 6, rec)
	if err != nil {
		t.Fatalf("MultiplyObserved error: %v", err)
	}

	want := []struct {
		pair   string
		op     Op
		before State
		after  State
	}{
		{"00", OpNone, State{"000000", "111100", '0'}, State{"000000", "011110", '0'}},
		{"00", OpNone, State{"000000", "011110", '0'}, State{"000000", "001111", '0'}},
		{"10", OpSub, State{"111101", "001111", '0'}, State{"111110", "100111", '1'}},
		{"11", OpNone, State{"111110", "100111", '1'}, State{"111111", "010011", '1'}},
		{"11", OpNone, State{"111111", "010011", '1'}, State{"111111", "101001", '1'}},
		{"11", OpNone, State{"111111", "101001", '1'}, State{"111111", "110100", '1'}},
	}

	events := rec.Events()
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	for i, w := range want {
		ev := events[i]
		if ev.Iteration != i+1 {
			t.Errorf("event %d: Iteration = %d", i, ev.Iteration)
		}
		if ev.Pair != w.pair || ev.Op != w.op {
			t.Errorf("event %d: pair/op = %s/%v, want %s/%v", i, ev.Pair, ev.Op, w.pair, w.op)
		}
		if ev.BeforeShift != w.before {
			t.Errorf("event %d: before = %v, want %v", i, ev.BeforeShift, w.before)
		}
		if ev.AfterShift != w.after {
			t.Errorf("event %d: after = %v, want %v", i, ev.AfterShift, w.after)
		}
	}

	if res.Initial != (State{"000000", "111100", '0'}) {
		t.Errorf("Initial = %v", res.Initial)
	}
	if res.Final != events[len(events)-1].AfterShift {
		t.Errorf("Final = %v, want last AfterShift", res.Final)
	}
	if res.Stats != (Stats{Additions: 0, Subtractions: 1, Shifts: 6}) {
		t.Errorf("Stats = %+v", res.Stats)
	}
}

func TestMultiplyObserved_OverflowCorrectedShift(t *testing.T) {
	t.Parallel()
	rec := NewRecorder()
	res, err := MultiplyObserved(-32, 1, 6, rec)
	if err != nil {
		t.Fatalf("MultiplyObserved error: %v", err)
	}
	first := rec.Events()[0]
	if !first.Overflow {
		t.Error("0 - (-32) should overflow a 6-bit accumulator")
	}
	if first.BeforeShift.P != "100000" {
		t.Errorf("wrapped P = %s, want 100000", first.BeforeShift.P)
	}
	if first.AfterShift.P != "010000" {
		t.Errorf("shifted P = %s, want 010000 (true sign shifted in)", first.AfterShift.P)
	}
	if res.Product != -32 {
		t.Errorf("Product = %d, want -32", res.Product)
	}
}

func TestMultiply_NilObserverIsPure(t *testing.T) {
	t.Parallel()
	a, aBits, err := Multiply(-7, 9, 5)
	if err != nil {
		t.Fatal(err)
	}
	b, bBits, err := Multiply(-7, 9, 5)
	if err != nil {
		t.Fatal(err)
	}
	if a != b || aBits != bBits {
		t.Errorf("repeated calls differ: %d/%s vs %d/%s", a, aBits, b, bBits)
	}
}
