package booth

import (
	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/twoscomp"
)

// Recode returns the radix-2 Booth digits of multiplier, least significant
// first. Digit i is q(i-1) - q(i) with q(-1) = 0, so every digit is -1, 0
// or +1 and the sum of digit(i)·2^i equals multiplier.
//
// A -1 digit marks the start of a run of ones (pair "10", subtract) and a +1
// digit marks its end (pair "01", add); the number of non-zero digits is the
// number of accumulator updates Multiply performs.
func Recode(multiplier int64, width int) ([]int8, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	bits, err := twoscomp.Encode(multiplier, width)
	if err != nil {
		return nil, apperrors.WrapError(err, "multiplier")
	}

	digits := make([]int8, width)
	prev := int8(0)
	for i := 0; i < width; i++ {
		cur := int8(bits[width-1-i] - '0')
		digits[i] = prev - cur
		prev = cur
	}
	return digits, nil
}

// FormatDigits renders Booth digits most significant first using '+', '-'
// and '0'.
func FormatDigits(digits []int8) string {
	out := make([]byte, len(digits))
	for i, d := range digits {
		c := byte('0')
		switch d {
		case 1:
			c = '+'
		case -1:
			c = '-'
		}
		out[len(digits)-1-i] = c
	}
	return string(out)
}
