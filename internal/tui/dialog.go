package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/vmfirst/internal/model"
)

// Dialog is a self-contained prompt drawn over the visible page. Dialogs
// are managed via a stack on App; the topmost one receives all input.
type Dialog interface {
	// Update processes a message. Return done=true once the dialog resolved
	// its future and should close.
	Update(msg tea.Msg) (done bool, cmd tea.Cmd)
	// View renders the dialog box, unplaced.
	View(width int) string
	// Dismiss resolves the future with the cancel answer.
	Dismiss()
}

func dialogWidth(width int) int {
	w := width - 8
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderDialog(width int, title, body, buttons string) string {
	w := dialogWidth(width)
	parts := make([]string, 0, 3)
	if title != "" {
		parts = append(parts, dialogTitleStyle.Render(title))
	}
	if body != "" {
		parts = append(parts, lipgloss.NewStyle().Width(w-6).Render(body))
	}
	if buttons != "" {
		parts = append(parts, buttons)
	}
	return dialogStyle.Width(w).Render(strings.Join(parts, "\n\n"))
}

func renderButtons(labels []string, selected int) string {
	out := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == selected {
			out = append(out, activeButtonStyle.Render(label))
		} else {
			out = append(out, buttonStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

// alertDialog shows a message with a single button.
type alertDialog struct {
	keys KeyMap
	info *model.DialogAlertInfo
}

func newAlertDialog(keys KeyMap, info *model.DialogAlertInfo) *alertDialog {
	return &alertDialog{keys: keys, info: info}
}

func (d *alertDialog) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, d.keys.Confirm, d.keys.Back) {
			d.info.Done.Resolve(true)
			return true, nil
		}
	}
	return false, nil
}

func (d *alertDialog) View(width int) string {
	label := d.info.Cancel
	if label == "" {
		label = "OK"
	}
	return renderDialog(width, d.info.Title, d.info.Message, renderButtons([]string{label}, 0))
}

func (d *alertDialog) Dismiss() { d.info.Done.Resolve(true) }

// questionDialog asks a yes/no question. The positive answer is selected
// first.
type questionDialog struct {
	keys     KeyMap
	info     *model.DialogQuestionInfo
	negative bool
}

func newQuestionDialog(keys KeyMap, info *model.DialogQuestionInfo) *questionDialog {
	return &questionDialog{keys: keys, info: info}
}

func (d *questionDialog) Update(msg tea.Msg) (bool, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(km, d.keys.Left, d.keys.Right, d.keys.Toggle):
		d.negative = !d.negative
	case key.Matches(km, d.keys.Yes):
		d.info.Done.Resolve(true)
		return true, nil
	case key.Matches(km, d.keys.No, d.keys.Back):
		d.info.Done.Resolve(false)
		return true, nil
	case key.Matches(km, d.keys.Confirm):
		d.info.Done.Resolve(!d.negative)
		return true, nil
	}
	return false, nil
}

func (d *questionDialog) View(width int) string {
	selected := 0
	if d.negative {
		selected = 1
	}
	buttons := renderButtons([]string{orDefault(d.info.Positive, "Yes"), orDefault(d.info.Negative, "No")}, selected)
	return renderDialog(width, d.info.Title, d.info.Question, buttons)
}

func (d *questionDialog) Dismiss() { d.info.Done.Resolve(false) }

// sheetDialog offers a vertical list of actions followed by the destructive
// action and cancel.
type sheetDialog struct {
	keys    KeyMap
	info    *model.DialogSheetInfo
	options []string
	cursor  int
}

func newSheetDialog(keys KeyMap, info *model.DialogSheetInfo) *sheetDialog {
	options := append([]string(nil), info.Items...)
	if info.Destruction != "" {
		options = append(options, info.Destruction)
	}
	if info.Cancel != "" {
		options = append(options, info.Cancel)
	}
	return &sheetDialog{keys: keys, info: info, options: options}
}

func (d *sheetDialog) Update(msg tea.Msg) (bool, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(km, d.keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
	case key.Matches(km, d.keys.Down):
		if d.cursor < len(d.options)-1 {
			d.cursor++
		}
	case key.Matches(km, d.keys.Confirm):
		if len(d.options) == 0 {
			d.Dismiss()
		} else {
			d.info.Done.Resolve(d.options[d.cursor])
		}
		return true, nil
	case key.Matches(km, d.keys.Back):
		d.Dismiss()
		return true, nil
	}
	return false, nil
}

func (d *sheetDialog) View(width int) string {
	var b strings.Builder
	for i, option := range d.options {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := option
		if d.destructive(i) {
			line = destructiveStyle.Render(option)
		}
		if i == d.cursor {
			b.WriteString(activeButtonStyle.Render(option))
			continue
		}
		b.WriteString("  " + line)
	}
	return renderDialog(width, d.info.Title, b.String(), "")
}

// destructive reports whether option i is the destruction entry, which
// follows the items.
func (d *sheetDialog) destructive(i int) bool {
	return d.info.Destruction != "" && i == len(d.info.Items)
}

func (d *sheetDialog) Dismiss() { d.info.Done.Resolve(d.info.Cancel) }

// entryDialog prompts for one line of text.
type entryDialog struct {
	keys  KeyMap
	info  *model.DialogEntryInfo
	input textinput.Model
}

func newEntryDialog(keys KeyMap, info *model.DialogEntryInfo) (*entryDialog, tea.Cmd) {
	input := textinput.New()
	input.Placeholder = info.Placeholder
	input.CharLimit = 200
	cmd := input.Focus()
	return &entryDialog{keys: keys, info: info, input: input}, cmd
}

func (d *entryDialog) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, d.keys.Confirm):
			d.info.Done.Resolve(model.EntryResult{Value: d.input.Value()})
			return true, nil
		case key.Matches(msg, d.keys.Back):
			d.Dismiss()
			return true, nil
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return false, cmd
}

func (d *entryDialog) View(width int) string {
	d.input.Width = dialogWidth(width) - 10
	body := d.input.View()
	if d.info.Message != "" {
		body = d.info.Message + "\n\n" + body
	}
	buttons := renderButtons([]string{orDefault(d.info.OK, "OK") + " ⏎", orDefault(d.info.Cancel, "Cancel") + " esc"}, -1)
	return renderDialog(width, d.info.Title, body, buttons)
}

func (d *entryDialog) Dismiss() { d.info.Done.Resolve(model.EntryResult{Cancelled: true}) }

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
