package booth

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/twoscomp"
)

// MaxWidth is the widest operand field supported by the multiplier. The
// 2N-bit product must decode into an int64.
const MaxWidth = 32

// State is one snapshot of the multiplier registers.
type State struct {
	// P is the N-bit accumulator.
	P string
	// Q is the N-bit multiplier register.
	Q string
	// Q1 is the guard bit Q₋₁, '0' or '1'.
	Q1 byte
}

// NewState returns the initial state for multiplier at the given width:
// P = 0, Q = multiplier, Q₋₁ = 0.
func NewState(multiplier int64, width int) (State, error) {
	if err := checkWidth(width); err != nil {
		return State{}, err
	}
	q, err := twoscomp.Encode(multiplier, width)
	if err != nil {
		return State{}, apperrors.WrapError(err, "multiplier")
	}
	return State{P: strings.Repeat("0", width), Q: q, Q1: '0'}, nil
}

// Width returns N, the width of the P and Q registers.
func (s State) Width() int { return len(s.Q) }

// Pair returns the two bits inspected by the next iteration: the least
// significant bit of Q followed by Q₋₁.
func (s State) Pair() string {
	return string([]byte{s.Q[len(s.Q)-1], s.Q1})
}

// Register returns the combined 2N+1-bit register P‖Q‖Q₋₁.
func (s State) Register() string {
	return s.P + s.Q + string(s.Q1)
}

// ProductBits returns P‖Q, the 2N-bit product once all iterations are done.
func (s State) ProductBits() string {
	return s.P + s.Q
}

// String renders the state the way the trace prints it.
func (s State) String() string {
	return fmt.Sprintf("P = %s, Q = %s, Q-1 = %c", s.P, s.Q, s.Q1)
}

// Validate checks that the state is well formed: P and Q share a supported
// width, every character is a bit and Q₋₁ is a single bit.
func (s State) Validate() error {
	if err := checkWidth(len(s.Q)); err != nil {
		return err
	}
	if len(s.P) != len(s.Q) {
		return apperrors.FormatError{Input: s.P, Reason: fmt.Sprintf("accumulator has %d bits, register has %d", len(s.P), len(s.Q))}
	}
	if _, err := twoscomp.Unsigned(s.P); err != nil {
		return err
	}
	if _, err := twoscomp.Unsigned(s.Q); err != nil {
		return err
	}
	if s.Q1 != '0' && s.Q1 != '1' {
		return apperrors.FormatError{Input: string(s.Q1), Reason: "guard bit must be '0' or '1'"}
	}
	return nil
}

// shiftRight performs the arithmetic right shift of P‖Q‖Q₋₁. The bit shifted
// in at the top is sign, which callers set to the sign of the accumulator's
// true (unwrapped) value so that an overflowing add or subtract still shifts
// in the right sign.
func shiftRight(s State, sign byte) State {
	n := len(s.Q)
	total := s.Register()
	shifted := string(sign) + total[:len(total)-1]
	return State{P: shifted[:n], Q: shifted[n : 2*n], Q1: shifted[2*n]}
}

// accumulate adds delta to P. It returns the new state with P wrapped to N
// bits, the sign bit of the unwrapped sum and whether the sum overflowed N
// bits.
func accumulate(s State, delta int64) (State, byte, bool) {
	n := len(s.P)
	p, _ := twoscomp.Decode(s.P)
	sum := p + delta
	wrapped, _ := twoscomp.Wrap(sum, n)
	sign := byte('0')
	if sum < 0 {
		sign = '1'
	}
	s.P = wrapped
	return s, sign, !twoscomp.Fits(sum, n)
}

func checkWidth(width int) error {
	if width <= 0 {
		return apperrors.NewConfigError("bit-width must be positive, got %d", width)
	}
	if width > MaxWidth {
		return apperrors.NewConfigError("bit-width %d exceeds the multiplier maximum of %d", width, MaxWidth)
	}
	return nil
}
