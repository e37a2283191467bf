package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	codeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1)
)

// View renders the current state of the model. It does not need a running
// program, so it doubles as the non-interactive output.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("flutterbuild • %s", m.displayTitle())),
		sectionStyle.Render(fmt.Sprintf("Text nodes (%d)", len(m.entries))),
	}

	if len(m.entries) == 0 {
		sections = append(sections, emptyStyle.Render("  nothing to preview"))
	} else {
		sections = append(sections, m.renderList())
	}

	sections = append(sections,
		sectionStyle.Render("Widget"),
		m.code.View(),
		helpStyle.Render("↑/k up • ↓/j down • pgup/pgdn scroll • q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderList() string {
	lines := make([]string, 0, len(m.entries))
	for i, entry := range m.entries {
		label := entry.NodeID
		if strings.TrimSpace(entry.NodeName) != "" {
			label = fmt.Sprintf("%s (%s)", entry.NodeName, entry.NodeID)
		}
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("› "+label))
			continue
		}
		lines = append(lines, itemStyle.Render("  "+label))
	}
	return strings.Join(lines, "\n")
}

func (m Model) displayTitle() string {
	if strings.TrimSpace(m.title) != "" {
		return m.title
	}
	return "Preview"
}
