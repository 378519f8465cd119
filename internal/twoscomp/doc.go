// Package twoscomp converts between signed integers and fixed-width
// two's-complement bit-strings.
//
// A bit-string is an ASCII string of '0' and '1' characters, most significant
// bit first. Its length is the field width N and its first character is the
// sign bit. Encode rejects values that do not fit in N bits instead of
// truncating them; Wrap is the modular variant used by fixed-width registers.
package twoscomp
