package views

import (
	"alphabetter/ui/tui/state"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height  int
	MouseX, MouseY int

	// Component States
	MenuCursor int
	AnimCursor float64
}

// View defines the contract for any stateless page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

// Mounted is a route view owned by the shell while its page is active.
// A fresh instance is created on every activation.
type Mounted interface {
	ID() int
	Page() state.Page
	// Activate resets the view to empty and returns the fetch command.
	Activate() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	SetSize(width, height int)
	View() string
}
