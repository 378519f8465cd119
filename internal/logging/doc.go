// Package logging provides the structured logger used by boothcalc. It
// wraps zerolog behind a small Logger interface so that the multiplier can
// log its iterations without importing zerolog directly. Verbose runs write
// one JSON line per event to stderr.
package logging
