// Package format renders durations, progress bars and bit-strings for the
// CLI and the REPL.
package format
