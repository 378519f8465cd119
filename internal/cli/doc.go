// Package cli implements the terminal front end of boothcalc: result and
// trace rendering, the comparison table, the exhaustive-verification
// progress display, operand prompts, the interactive REPL and shell
// completion scripts.
package cli
