package tui

import (
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters/schedule"
)

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// If we're editing the date string, handle input
	if m.editing {
		switch msg.String() {
		case "esc":
			m.editing = false
			m.editBuffer = ""
			m.editCursor = 0

		case "enter":
			m.input = m.editBuffer
			m.editing = false
			m.editBuffer = ""
			m.editCursor = 0
			m.statusMsg = ""

		case "backspace", "ctrl+h":
			if m.editCursor > 0 && len(m.editBuffer) > 0 {
				m.editBuffer = m.editBuffer[:m.editCursor-1] + m.editBuffer[m.editCursor:]
				m.editCursor--
			}

		case "delete", "ctrl+d":
			if m.editCursor < len(m.editBuffer) {
				m.editBuffer = m.editBuffer[:m.editCursor] + m.editBuffer[m.editCursor+1:]
			}

		case "left", "ctrl+b":
			if m.editCursor > 0 {
				m.editCursor--
			}

		case "right", "ctrl+f":
			if m.editCursor < len(m.editBuffer) {
				m.editCursor++
			}

		case "home", "ctrl+a":
			m.editCursor = 0

		case "end", "ctrl+e":
			m.editCursor = len(m.editBuffer)

		case "ctrl+k":
			// Kill to end of line
			m.editBuffer = m.editBuffer[:m.editCursor]

		case "ctrl+u":
			// Kill to beginning of line
			m.editBuffer = m.editBuffer[m.editCursor:]
			m.editCursor = 0

		case "ctrl+w":
			// Delete word backward
			if m.editCursor > 0 {
				i := m.editCursor - 1
				for i > 0 && m.editBuffer[i-1] == ' ' {
					i--
				}
				for i > 0 && m.editBuffer[i-1] != ' ' {
					i--
				}
				m.editBuffer = m.editBuffer[:i] + m.editBuffer[m.editCursor:]
				m.editCursor = i
			}

		default:
			if len(msg.String()) == 1 {
				m.editBuffer = m.editBuffer[:m.editCursor] + msg.String() + m.editBuffer[m.editCursor:]
				m.editCursor++
			}
		}

		return m, nil
	}

	// Normal navigation
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "e", "i":
		m.editing = true
		m.editBuffer = m.input
		m.editCursor = len(m.editBuffer)
		m.statusMsg = "Enter a date (YYYY-MM-DD, with optional HH:MM:SS):"

	case "tab":
		m.opIndex = (m.opIndex + 1) % len(schedule.Operators())
		m.statusMsg = ""

	case "shift+tab":
		ops := schedule.Operators()
		m.opIndex = (m.opIndex + len(ops) - 1) % len(ops)
		m.statusMsg = ""

	case "t":
		m.input = time.Now().Format("2006-01-02")
		m.statusMsg = "Set to today"

	case "n":
		m.input = time.Now().Format("2006-01-02 15:04:05")
		m.statusMsg = "Set to now"
	}

	return m, nil
}
