package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// loadingOverlay is the modal busy indicator toggled by the loading topics.
type loadingOverlay struct {
	spinner spinner.Model
	message string
	active  bool
}

func newLoadingOverlay() loadingOverlay {
	return loadingOverlay{spinner: spinner.New(spinner.WithSpinner(spinner.Dot))}
}

// show activates the overlay. The returned command starts the spinner when
// it was not already running.
func (l *loadingOverlay) show(message string) tea.Cmd {
	l.message = message
	if l.active {
		return nil
	}
	l.active = true
	return l.spinner.Tick
}

func (l *loadingOverlay) hide() {
	l.active = false
	l.message = ""
}

func (l *loadingOverlay) update(msg spinner.TickMsg) tea.Cmd {
	if !l.active {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

func (l *loadingOverlay) view(width, height int) string {
	text := l.message
	if text == "" {
		text = "Loading..."
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		l.spinner.View()+" "+loadingStyle.Render(text))
}

// toastExpiredMsg clears the toast with the matching id.
type toastExpiredMsg struct{ id int }

type toast struct {
	id     int
	text   string
	center bool
}

func expireToast(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (t *toast) view(width int) string {
	pos := lipgloss.Left
	if t.center {
		pos = lipgloss.Center
	}
	return lipgloss.PlaceHorizontal(width, pos, toastStyle.Render(t.text))
}
