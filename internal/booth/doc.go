// Package booth implements Booth's multiplication algorithm over fixed-width
// two's-complement registers.
//
// The algorithm state is the triple (P, Q, Q₋₁): an N-bit accumulator, the
// N-bit multiplier register and a guard bit. Each of the N iterations
// inspects the pair (LSB of Q, Q₋₁), adds or subtracts the multiplicand to
// P on a "01" or "10" boundary, then arithmetically shifts P‖Q‖Q₋₁ right by
// one. After N iterations P‖Q holds the 2N-bit product.
//
// Iterations are expressed as a pure function, Step, over immutable State
// values. Tracing is opt-in through an Observer; Multiply itself has no side
// effects.
package booth
