package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/boothcalc/internal/booth"
	"github.com/agbru/boothcalc/internal/config"
	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/twoscomp"
)

// ContextCancelledMsg is sent when the parent context is done.
type ContextCancelledMsg struct {
	Err error
}

// Model is the root bubbletea model of the step viewer. The multiplication
// is computed up front; the model only moves a cursor over its trace.
type Model struct {
	header HeaderModel
	keymap KeyMap

	multiplicand int64
	result       booth.Result
	events       []booth.Event
	history      []int64 // signed value of P in each state, initial first

	// cursor is 0 for the initial state and i after iteration i.
	cursor int
	width  int

	ctx context.Context
}

// NewModel multiplies with calc, recording every iteration, and returns a
// model positioned on the initial state.
func NewModel(ctx context.Context, calc booth.Calculator, multiplicand, multiplier int64, width int, version string) (Model, error) {
	var events []booth.Event
	var history []int64
	res, err := calc.Multiply(multiplicand, multiplier, width, booth.ObserverFunc(func(ev booth.Event) {
		events = append(events, ev)
		p, _ := twoscomp.Decode(ev.AfterShift.P)
		history = append(history, p)
	}))
	if err != nil {
		return Model{}, err
	}
	p0, _ := twoscomp.Decode(res.Initial.P)
	return Model{
		header:       NewHeaderModel(version, calc.Name(), multiplicand, multiplier, width),
		keymap:       DefaultKeyMap(),
		multiplicand: multiplicand,
		result:       res,
		events:       events,
		history:      append([]int64{p0}, history...),
		ctx:          ctx,
	}, nil
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return watchContextCmd(m.ctx)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
		return m, nil

	case ContextCancelledMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Next):
		m.cursor = min(m.cursor+1, len(m.events))
	case key.Matches(msg, m.keymap.Prev):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keymap.First):
		m.cursor = 0
	case key.Matches(msg, m.keymap.Last):
		m.cursor = len(m.events)
	}
	return m, nil
}

// Cursor returns the current position: 0 for the initial state, i after
// iteration i.
func (m Model) Cursor() int { return m.cursor }

// State returns the registers at the cursor.
func (m Model) State() booth.State {
	if m.cursor == 0 {
		return m.result.Initial
	}
	return m.events[m.cursor-1].AfterShift
}

// View renders the viewer.
func (m Model) View() string {
	var body strings.Builder
	n := len(m.events)

	if m.cursor == 0 {
		mBits, _ := twoscomp.Encode(m.multiplicand, m.result.Width)
		fmt.Fprintf(&body, "%s\n\n", titleStyle.Render(fmt.Sprintf("Initial state (0/%d)", n)))
		body.WriteString(row("Multiplicand", fmt.Sprintf("%s (%d)", mBits, m.multiplicand)))
		body.WriteString(row("Registers", renderRegisters(m.State(), true)))
	} else {
		ev := m.events[m.cursor-1]
		fmt.Fprintf(&body, "%s\n\n", titleStyle.Render(fmt.Sprintf("Iteration %d/%d", ev.Iteration, n)))
		body.WriteString(row("Pair Q₀Q₋₁", ev.Pair+"  →  "+opStyle(ev.Op).Render(ev.Op.String())))
		body.WriteString(row("After op", renderRegisters(ev.BeforeShift, false)))
		body.WriteString(row("After shift", renderRegisters(ev.AfterShift, m.cursor < n)))
		if ev.Overflow {
			body.WriteString(warnStyle.Render("P ± M overflowed; the shift kept the sign of the true sum.") + "\n")
		}
	}

	body.WriteString(row("P history", sparklineStyle.Render(RenderSparkline(m.accumulatorHistory()))))
	if m.cursor == n {
		body.WriteString("\n" + resultStyle.Render(fmt.Sprintf("Product: %d = %s", m.result.Product, m.result.Bits)))
	}

	panel := panelStyle
	if m.width > 2 {
		panel = panel.Width(m.width - 2)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), panel.Render(body.String()), m.footerView())
}

// accumulatorHistory returns the signed value of P for every state up to
// the cursor.
func (m Model) accumulatorHistory() []int64 {
	return m.history[:m.cursor+1]
}

func (m Model) footerView() string {
	parts := make([]string, 0, len(m.keymap.ShortHelp()))
	for _, b := range m.keymap.ShortHelp() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return " " + strings.Join(parts, dimStyle.Render("  •  "))
}

func row(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

// renderRegisters prints "P Q Q₋₁", underlining the pair inspected by the
// next iteration when highlight is set.
func renderRegisters(s booth.State, highlight bool) string {
	last := len(s.Q) - 1
	q0, q1 := string(s.Q[last]), string(s.Q1)
	if highlight {
		q0, q1 = pairStyle.Render(q0), pairStyle.Render(q1)
	}
	return bitStyle.Render(s.P) + " " + bitStyle.Render(s.Q[:last]) + q0 + " " + q1
}

func opStyle(op booth.Op) lipgloss.Style {
	switch op {
	case booth.OpAdd:
		return addStyle
	case booth.OpSub:
		return subStyle
	}
	return noopStyle
}

// Run is the public entry point for the TUI mode. It steps through
// cfg.Multiplicand × cfg.Multiplier computed by calc and returns the exit
// code. Errors from the multiplication itself are returned for the caller
// to report.
func Run(ctx context.Context, calc booth.Calculator, cfg config.AppConfig, version string) (int, error) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model, err := NewModel(ctx, calc, cfg.Multiplicand, cfg.Multiplier, cfg.Width, version)
	if err != nil {
		return apperrors.ExitCodeFor(err), err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return apperrors.ExitErrorCanceled, nil
		}
		return apperrors.ExitErrorGeneric, err
	}
	return apperrors.ExitSuccess, nil
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
