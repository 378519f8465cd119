// Package tui implements the --tui step viewer: a bubbletea program that
// walks forward and backward through the iterations of one multiplication,
// showing the inspected pair, the accumulator operation and the registers
// before and after each arithmetic shift.
package tui
