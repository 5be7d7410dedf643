// Package tui implements the interactive filter explorer: one date
// string under edit, evaluated live against every schedule predicate.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters/schedule"
)

// Model holds the explorer state.
type Model struct {
	sched *schedule.Module

	input      string
	editing    bool
	editBuffer string
	editCursor int

	opIndex   int
	statusMsg string
	width     int
	height    int
}

// NewModel creates an explorer seeded with the given date string.
func NewModel(initial string) Model {
	return Model{
		sched: schedule.New(),
		input: initial,
	}
}

// Run starts the explorer. An empty initial string defaults to today.
func Run(initial string) error {
	if initial == "" {
		initial = time.Now().Format("2006-01-02")
	}
	p := tea.NewProgram(NewModel(initial))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	return m, nil
}

// operator is the is_due operator currently selected with tab.
func (m Model) operator() string {
	ops := schedule.Operators()
	return ops[m.opIndex%len(ops)]
}

type row struct {
	name   string
	result string
}

// rows evaluates every predicate against the current input.
func (m Model) rows() []row {
	op := m.operator()
	entries := []struct {
		name string
		eval func() (bool, error)
	}{
		{"is_due " + op, func() (bool, error) { return m.sched.IsDue(m.input, op) }},
		{"is_past", func() (bool, error) { return m.sched.IsPast(m.input) }},
		{"is_today_or_past", func() (bool, error) { return m.sched.IsTodayOrPast(m.input) }},
		{"is_future", func() (bool, error) { return m.sched.IsFuture(m.input) }},
		{"is_today_or_future", func() (bool, error) { return m.sched.IsTodayOrFuture(m.input) }},
		{"is_today", func() (bool, error) { return m.sched.IsToday(m.input) }},
	}

	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		result, err := e.eval()
		switch {
		case err != nil:
			rows = append(rows, row{e.name, errorStyle.Render(fmt.Sprintf(ErrorFormat, err))})
		case result:
			rows = append(rows, row{e.name, trueStyle.Render("✓ true")})
		default:
			rows = append(rows, row{e.name, falseStyle.Render("✗ false")})
		}
	}
	return rows
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("schedfilter explore"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("date: "))
	if m.editing {
		b.WriteString(renderEditBuffer(m.editBuffer, m.editCursor))
	} else {
		b.WriteString(inputStyle.Render(m.input))
	}
	b.WriteString("\n")

	if r, err := m.sched.Resolve(m.input); err == nil {
		b.WriteString(labelStyle.Render(fmt.Sprintf("      %s, check %s vs now %s",
			r.Precision, formatValue(r.Check, r.Precision), formatValue(r.Now, r.Precision))))
	} else {
		b.WriteString(errorStyle.Render(fmt.Sprintf("      %v", err)))
	}
	b.WriteString("\n\n")

	for _, r := range m.rows() {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", r.name, r.result))
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(helpStyle.Render("enter save · esc cancel"))
	} else {
		b.WriteString(helpStyle.Render("e edit · tab cycle operator · t today · n now · q quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func formatValue(t time.Time, p schedule.Precision) string {
	if p == schedule.PrecisionDateTime {
		return t.Format("2006-01-02 15:04:05")
	}
	return t.Format("2006-01-02")
}

func renderEditBuffer(buffer string, cursor int) string {
	if cursor >= len(buffer) {
		return inputStyle.Render(buffer) + cursorStyle.Render(" ")
	}
	return inputStyle.Render(buffer[:cursor]) +
		cursorStyle.Render(string(buffer[cursor])) +
		inputStyle.Render(buffer[cursor+1:])
}
