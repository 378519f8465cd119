package booth

// shiftAddStep is one iteration of plain signed shift-and-add over the same
// registers: add M when the LSB of Q is set, except on the last iteration
// where the bit is the sign bit (weight -2^(N-1)) and M is subtracted.
// The guard bit only collects the bit shifted out of Q.
func shiftAddStep(s State, multiplicand int64, last bool) (State, Event) {
	ev := Event{Pair: s.Pair()}
	before := s
	sign := s.P[0]
	if s.Q[len(s.Q)-1] == '1' {
		if last {
			ev.Op = OpSub
			before, sign, ev.Overflow = accumulate(s, -multiplicand)
		} else {
			ev.Op = OpAdd
			before, sign, ev.Overflow = accumulate(s, multiplicand)
		}
	}
	ev.BeforeShift = before
	ev.AfterShift = shiftRight(before, sign)
	return ev.AfterShift, ev
}

// MultiplyShiftAdd multiplies with the naive shift-and-add method on the
// same register model as Booth's algorithm. It exists as a baseline for
// operation counts; the product is identical.
func MultiplyShiftAdd(multiplicand, multiplier int64, width int, obs Observer) (Result, error) {
	initial, err := prepare(multiplicand, multiplier, width)
	if err != nil {
		return Result{}, err
	}

	res := Result{Width: width, Initial: initial}
	s := initial
	for i := 1; i <= width; i++ {
		var ev Event
		s, ev = shiftAddStep(s, multiplicand, i == width)
		ev.Iteration = i
		res.Stats.record(ev.Op)
		if obs != nil {
			obs.OnStep(ev)
		}
	}
	return finish(res, s)
}
