package format

import (
	"strings"
)

// GroupBits inserts a space every size bits, counting from the least
// significant end, so "1111110100" with size 4 becomes "11 1111 0100".
// A size below 1 returns bits unchanged.
func GroupBits(bits string, size int) string {
	if size < 1 || len(bits) <= size {
		return bits
	}
	var b strings.Builder
	lead := len(bits) % size
	if lead > 0 {
		b.WriteString(bits[:lead])
	}
	for i := lead; i < len(bits); i += size {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(bits[i : i+size])
	}
	return b.String()
}

// FormatProduct splits a 2N-bit product into its P and Q halves: "P | Q".
// Odd-length input is returned unchanged.
func FormatProduct(bits string) string {
	if len(bits) == 0 || len(bits)%2 != 0 {
		return bits
	}
	half := len(bits) / 2
	return bits[:half] + " | " + bits[half:]
}

// FormatNumberString adds thousands separators to a decimal string.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
