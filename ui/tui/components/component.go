package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is implemented by widgets embedded inside a view (charts and the
// like). It mirrors tea.Model so a widget can be run standalone.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
}
