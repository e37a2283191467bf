// Package preview is a terminal browser for generated widgets: a node list on
// top and the selected node's Dart expression below.
package preview

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/flutterbuild/internal/app/codegen"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// rows reserved for title, section headers and help.
	chromeHeight = 6
)

// Model contains the Bubbletea state for the preview.
type Model struct {
	title    string
	entries  []codegen.Entry
	cursor   int
	width    int
	height   int
	code     viewport.Model
	quitting bool
}

// NewModel constructs a preview over the generated entries.
func NewModel(title string, entries []codegen.Entry) Model {
	m := Model{
		title:   title,
		entries: entries,
		width:   defaultWidth,
		height:  defaultHeight,
		code:    viewport.New(defaultWidth, 1),
	}
	m.layout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the index of the selected entry.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the selected entry, if any.
func (m Model) Selected() (codegen.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return codegen.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// layout sizes the code pane to whatever the list leaves over and refreshes its content.
func (m *Model) layout() {
	listHeight := len(m.entries)
	codeHeight := m.height - chromeHeight - listHeight
	if codeHeight < 3 {
		codeHeight = 3
	}
	m.code.Width = m.width
	m.code.Height = codeHeight
	m.refreshCode()
}

func (m *Model) refreshCode() {
	entry, ok := m.Selected()
	if !ok {
		m.code.SetContent(emptyStyle.Render("no text nodes"))
		return
	}
	m.code.SetContent(codeStyle.Width(m.width).Render(entry.Expression))
	m.code.GotoTop()
}
