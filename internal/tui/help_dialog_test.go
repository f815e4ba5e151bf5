package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

type helpfulPage struct {
	*screenPage
}

func (p *helpfulPage) KeyHelp() []key.Binding {
	return []key.Binding{key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "explode"))}
}

func TestHelpDialogListsPageAndHostKeys(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	page := &helpfulPage{screenPage: newScreenPage("Helpful")}
	h.vm.NavigateTo(page, nil, 0, nil, false)
	h.send(drainMsg{})

	h.send(keyMsg("f1"))
	view := h.app.View()
	for _, want := range []string{"Keys", "explode", "back", "quit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("help view missing %q:\n%s", want, view)
		}
	}

	h.send(keyMsg("x"))
	if len(page.keys) != 0 {
		t.Fatalf("help dialog should swallow keys, page got %v", page.keys)
	}

	h.send(keyMsg("esc"))
	if h.app.topDialog() != nil {
		t.Fatal("esc should close the help dialog")
	}
	if h.app.Window().VisiblePage() != page {
		t.Fatal("closing help must not navigate back")
	}
}

func TestHelpDialogTogglesWithF1(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.send(keyMsg("f1"))
	if _, ok := h.app.topDialog().(*helpDialog); !ok {
		t.Fatal("f1 should open the help dialog")
	}
	h.send(keyMsg("f1"))
	if h.app.topDialog() != nil {
		t.Fatal("f1 should close the help dialog")
	}
}
