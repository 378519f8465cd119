package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/boothcalc/internal/ui"
)

// Style variables for the step viewer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	headerStyle     lipgloss.Style
	titleStyle      lipgloss.Style
	dimStyle        lipgloss.Style
	labelStyle      lipgloss.Style
	bitStyle        lipgloss.Style
	pairStyle       lipgloss.Style
	addStyle        lipgloss.Style
	subStyle        lipgloss.Style
	noopStyle       lipgloss.Style
	resultStyle     lipgloss.Style
	warnStyle       lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	sparklineStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Dim).
		Width(14)

	bitStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	pairStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Underline(true)

	addStyle = lipgloss.NewStyle().
		Foreground(t.Add).
		Bold(true)

	subStyle = lipgloss.NewStyle().
		Foreground(t.Sub).
		Bold(true)

	noopStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	resultStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	warnStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	sparklineStyle = lipgloss.NewStyle().
		Foreground(t.Accent)
}
