package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is implemented by pages the terminal host can draw. The host only
// talks to the visible page.
type Screen interface {
	// Update handles input and messages addressed to the page.
	Update(msg tea.Msg) tea.Cmd
	// View renders the page body for the given dimensions.
	View(width, height int) string
}

// Helper is optionally implemented by screens that advertise key bindings
// in the footer.
type Helper interface {
	KeyHelp() []key.Binding
}
