package preview

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refreshCode()
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.refreshCode()
			}
			return m, nil
		case "home", "g":
			m.cursor = 0
			m.refreshCode()
			return m, nil
		case "end", "G":
			if len(m.entries) > 0 {
				m.cursor = len(m.entries) - 1
				m.refreshCode()
			}
			return m, nil
		}
	}

	// Everything else (page keys, mouse wheel) scrolls the code pane.
	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}
