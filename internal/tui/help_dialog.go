package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpDialog lists every binding of the visible page and the host in a
// scrollable box. It has no future: closing it answers nothing.
type helpDialog struct {
	keys     KeyMap
	viewport viewport.Model
	groups   [][]key.Binding
}

func newHelpDialog(keys KeyMap, page []key.Binding) *helpDialog {
	groups := [][]key.Binding{
		{keys.Back, keys.Help, keys.Quit},
		{keys.Up, keys.Down, keys.Left, keys.Right},
		{keys.Confirm, keys.Toggle, keys.Yes, keys.No},
	}
	if len(page) > 0 {
		groups = append([][]key.Binding{page}, groups...)
	}
	return &helpDialog{
		keys:     keys,
		viewport: viewport.New(60, 10),
		groups:   groups,
	}
}

func (d *helpDialog) Update(msg tea.Msg) (bool, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(km, d.keys.Help, d.keys.Back):
		return true, nil
	case key.Matches(km, d.keys.Up):
		d.viewport.LineUp(1)
	case key.Matches(km, d.keys.Down):
		d.viewport.LineDown(1)
	case key.Matches(km, d.keys.PageUp):
		d.viewport.HalfViewUp()
	case key.Matches(km, d.keys.PageDown):
		d.viewport.HalfViewDown()
	}
	return false, nil
}

func (d *helpDialog) View(width int) string {
	w := dialogWidth(width) - 6
	h := help.New()
	h.Width = w
	content := h.FullHelpView(d.groups)

	d.viewport.Width = w
	d.viewport.Height = min(lipgloss.Height(content), 12)
	d.viewport.SetContent(content)

	status := crumbStyle.Render("↑/↓ scroll · f1/esc close")
	return renderDialog(width, "Keys", lipgloss.JoinVertical(lipgloss.Left, d.viewport.View(), status), "")
}

func (d *helpDialog) Dismiss() {}
