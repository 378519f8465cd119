package twoscomp

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/boothcalc/internal/errors"
)

// MaxWidth is the widest field the codec can represent with int64 values.
const MaxWidth = 64

// Range returns the smallest and largest signed values representable in
// width bits: [-2^(width-1), 2^(width-1)-1].
func Range(width int) (lo, hi int64, err error) {
	if err := checkWidth(width); err != nil {
		return 0, 0, err
	}
	hi = int64(uint64(1)<<(width-1) - 1)
	lo = -hi - 1
	return lo, hi, nil
}

// Fits reports whether value is representable in width bits. It returns
// false for unsupported widths.
func Fits(value int64, width int) bool {
	lo, hi, err := Range(width)
	return err == nil && value >= lo && value <= hi
}

// Encode renders value as a width-bit two's-complement string.
//
// The caller must keep value within Range(width); out-of-range values are
// rejected with an apperrors.RangeError rather than silently wrapped. A
// width outside [1, MaxWidth] yields an apperrors.ConfigError.
func Encode(value int64, width int) (string, error) {
	lo, hi, err := Range(width)
	if err != nil {
		return "", err
	}
	if value < lo || value > hi {
		return "", apperrors.RangeError{Value: value, Width: width, Min: lo, Max: hi}
	}
	return render(residue(value, width), width), nil
}

// Wrap renders value modulo 2^width, discarding any overflow. This is the
// behaviour of a fixed-width hardware register and is what the multiplier
// uses when it updates its accumulator.
func Wrap(value int64, width int) (string, error) {
	if err := checkWidth(width); err != nil {
		return "", err
	}
	return render(residue(value, width), width), nil
}

// Decode interprets bits as a two's-complement number whose width is
// len(bits). Empty strings, strings longer than MaxWidth and strings with
// characters other than '0' and '1' yield an apperrors.FormatError.
func Decode(bits string) (int64, error) {
	u, err := parseUnsigned(bits)
	if err != nil {
		return 0, err
	}
	return signExtend(u, len(bits)), nil
}

// Unsigned interprets bits as a plain binary number. It shares Decode's
// validation rules.
func Unsigned(bits string) (uint64, error) {
	return parseUnsigned(bits)
}

// residue is value mod 2^width: negative values become value + 2^width.
func residue(value int64, width int) uint64 {
	u := uint64(value)
	if width < 64 {
		u &= uint64(1)<<width - 1
	}
	return u
}

func signExtend(u uint64, width int) int64 {
	shift := uint(64 - width)
	return int64(u<<shift) >> shift
}

func render(u uint64, width int) string {
	var b strings.Builder
	b.Grow(width)
	for i := width - 1; i >= 0; i-- {
		if u>>uint(i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func parseUnsigned(bits string) (uint64, error) {
	if bits == "" {
		return 0, apperrors.FormatError{Input: bits, Reason: "empty bit-string"}
	}
	if len(bits) > MaxWidth {
		return 0, apperrors.FormatError{Input: bits, Reason: "longer than 64 bits"}
	}
	var u uint64
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			u <<= 1
		case '1':
			u = u<<1 | 1
		default:
			return 0, apperrors.FormatError{
				Input:  bits,
				Reason: fmt.Sprintf("unexpected character %q at position %d", bits[i], i),
			}
		}
	}
	return u, nil
}

func checkWidth(width int) error {
	if width <= 0 {
		return apperrors.NewConfigError("bit-width must be positive, got %d", width)
	}
	if width > MaxWidth {
		return apperrors.NewConfigError("bit-width %d exceeds the maximum of %d", width, MaxWidth)
	}
	return nil
}
