package booth

import (
	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/twoscomp"
)

// Op is the accumulator action taken during one iteration.
type Op int

const (
	// OpNone leaves P unchanged (pair "00" or "11").
	OpNone Op = iota
	// OpAdd adds the multiplicand to P (pair "01", end of a run of ones).
	OpAdd
	// OpSub subtracts the multiplicand from P (pair "10", start of a run of ones).
	OpSub
)

// String returns the trace label of the operation.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "P = P + M"
	case OpSub:
		return "P = P - M"
	default:
		return "no operation"
	}
}

// Event describes one iteration: the inspected pair, the action taken, and
// the registers just before and just after the arithmetic shift.
type Event struct {
	// Iteration is 1-based.
	Iteration int
	// Pair is (LSB of Q, Q₋₁) as inspected at the start of the iteration.
	Pair string
	// Op is the accumulator action selected by Pair.
	Op Op
	// Overflow is set when P ± M did not fit in N bits before the shift.
	Overflow bool
	// BeforeShift holds the registers after the add/subtract.
	BeforeShift State
	// AfterShift holds the registers after the arithmetic shift.
	AfterShift State
}

// Step performs one Booth iteration on s and returns the next state together
// with the event describing it. s is not modified. The multiplicand must fit
// in s.Width() bits.
func Step(s State, multiplicand int64) (State, Event, error) {
	if err := s.Validate(); err != nil {
		return State{}, Event{}, err
	}
	if _, err := twoscomp.Encode(multiplicand, s.Width()); err != nil {
		return State{}, Event{}, apperrors.WrapError(err, "multiplicand")
	}
	next, ev := advance(s, multiplicand)
	return next, ev, nil
}

// advance is the transition function shared by Step and Multiply. It assumes
// s is valid.
func advance(s State, multiplicand int64) (State, Event) {
	ev := Event{Pair: s.Pair()}
	before := s
	sign := s.P[0]
	switch ev.Pair {
	case "01":
		ev.Op = OpAdd
		before, sign, ev.Overflow = accumulate(s, multiplicand)
	case "10":
		ev.Op = OpSub
		before, sign, ev.Overflow = accumulate(s, -multiplicand)
	}
	ev.BeforeShift = before
	ev.AfterShift = shiftRight(before, sign)
	return ev.AfterShift, ev
}
