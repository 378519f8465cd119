package tui

import (
	"fmt"
)

// HeaderModel renders the top bar: title, version and the multiplication
// being stepped through.
type HeaderModel struct {
	version   string
	operation string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version, algorithm string, multiplicand, multiplier int64, width int) HeaderModel {
	return HeaderModel{
		version:   version,
		operation: fmt.Sprintf("%s: %d × %d on %d bits", algorithm, multiplicand, multiplier, width),
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "Booth Stepper"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	row := titleStyle.Render(titleText) + dimStyle.Render(" | ") + h.operation

	style := headerStyle
	if h.width > 0 {
		style = style.Width(h.width)
	}
	return style.Render(row)
}
