package booth

import (
	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/twoscomp"
)

// Stats counts the register operations performed by one multiplication.
type Stats struct {
	Additions    int
	Subtractions int
	Shifts       int
}

// Operations returns the number of accumulator updates (additions plus
// subtractions).
func (s Stats) Operations() int { return s.Additions + s.Subtractions }

// Result is the outcome of one multiplication.
type Result struct {
	// Product is the decimal product, Decode(Bits).
	Product int64
	// Bits is P‖Q, exactly 2*Width characters.
	Bits string
	// Width is the operand width N.
	Width int
	// Initial is the register state before the first iteration.
	Initial State
	// Final is the register state after the last iteration.
	Final State
	// Stats counts the operations performed.
	Stats Stats
}

// Multiply multiplies multiplicand by multiplier with Booth's algorithm over
// width-bit registers and returns the decimal product and its 2N-bit
// two's-complement representation.
//
// Both operands must fit in width bits (apperrors.RangeError otherwise) and
// width must be in [1, MaxWidth] (apperrors.ConfigError otherwise). The call
// is pure.
func Multiply(multiplicand, multiplier int64, width int) (int64, string, error) {
	res, err := MultiplyObserved(multiplicand, multiplier, width, nil)
	if err != nil {
		return 0, "", err
	}
	return res.Product, res.Bits, nil
}

// MultiplyObserved is Multiply with a full Result and an optional observer
// that receives one Event per iteration. A nil observer disables tracing.
func MultiplyObserved(multiplicand, multiplier int64, width int, obs Observer) (Result, error) {
	initial, err := prepare(multiplicand, multiplier, width)
	if err != nil {
		return Result{}, err
	}

	res := Result{Width: width, Initial: initial}
	s := initial
	for count := width; count > 0; count-- {
		var ev Event
		s, ev = advance(s, multiplicand)
		ev.Iteration = width - count + 1
		res.Stats.record(ev.Op)
		if obs != nil {
			obs.OnStep(ev)
		}
	}
	return finish(res, s)
}

// prepare validates both operands and builds the initial state.
func prepare(multiplicand, multiplier int64, width int) (State, error) {
	if err := checkWidth(width); err != nil {
		return State{}, err
	}
	if _, err := twoscomp.Encode(multiplicand, width); err != nil {
		return State{}, apperrors.WrapError(err, "multiplicand")
	}
	return NewState(multiplier, width)
}

func finish(res Result, s State) (Result, error) {
	product, err := twoscomp.Decode(s.ProductBits())
	if err != nil {
		return Result{}, err
	}
	res.Product = product
	res.Bits = s.ProductBits()
	res.Final = s
	return res, nil
}

func (s *Stats) record(op Op) {
	switch op {
	case OpAdd:
		s.Additions++
	case OpSub:
		s.Subtractions++
	}
	s.Shifts++
}
