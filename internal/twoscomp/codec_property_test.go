package twoscomp

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// inRange folds an arbitrary int64 into the signed range of width bits by
// sign-extending its low bits.
func inRange(seed int64, width int) int64 {
	shift := uint(64 - width)
	return seed << shift >> shift
}

// TestRoundTrip_PropertyBased verifies Decode(Encode(x, N)) == x for every
// representable x and every supported width.
func TestRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("Decode(Encode(x, N)) == x", prop.ForAll(
		func(width int, seed int64) bool {
			x := inRange(seed, width)
			bits, err := Encode(x, width)
			if err != nil {
				t.Logf("Encode(%d, %d) error: %v", x, width, err)
				return false
			}
			if len(bits) != width {
				return false
			}
			got, err := Decode(bits)
			return err == nil && got == x
		},
		gen.IntRange(1, MaxWidth),
		gen.Int64(),
	))

	properties.Property("Encode(Decode(s), len(s)) == s", prop.ForAll(
		func(width int, raw uint64) bool {
			if width < 64 {
				raw &= uint64(1)<<width - 1
			}
			s := fmt.Sprintf("%0*b", width, raw)
			v, err := Decode(s)
			if err != nil {
				return false
			}
			back, err := Encode(v, width)
			return err == nil && back == s
		},
		gen.IntRange(1, MaxWidth),
		gen.UInt64(),
	))

	properties.Property("sign bit matches sign of value", prop.ForAll(
		func(width int, seed int64) bool {
			x := inRange(seed, width)
			bits, err := Encode(x, width)
			if err != nil {
				return false
			}
			return (bits[0] == '1') == (x < 0)
		},
		gen.IntRange(1, MaxWidth),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestWrap_PropertyBased verifies that Wrap agrees with Encode inside the
// range and reduces modulo 2^N outside it.
func TestWrap_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("Decode(Wrap(x, N)) == x mod 2^N (signed)", prop.ForAll(
		func(width int, x int64) bool {
			bits, err := Wrap(x, width)
			if err != nil {
				return false
			}
			got, err := Decode(bits)
			return err == nil && got == inRange(x, width)
		},
		gen.IntRange(1, MaxWidth),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
