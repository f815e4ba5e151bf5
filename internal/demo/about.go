package demo

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/vmfirst/internal/future"
	"github.com/tinytelemetry/vmfirst/internal/model"
	"github.com/tinytelemetry/vmfirst/internal/mvvm"
	"github.com/tinytelemetry/vmfirst/internal/tui"
)

// AboutViewModel backs the pages of the modal about stack. Level counts
// how deep inside that stack the page is.
type AboutViewModel struct {
	*mvvm.BaseViewModel
	level int
}

func NewAboutViewModel(env Env) *AboutViewModel {
	vm := &AboutViewModel{level: 1}
	vm.BaseViewModel = mvvm.NewBaseViewModel(env.Deps,
		mvvm.WithSource(vm),
		mvvm.WithParamsHook(func(p model.Params) {
			if level, ok := p["level"].(int); ok && level > 0 {
				vm.level = level
			}
		}),
	)
	return vm
}

// Level is the page's depth inside the modal stack.
func (vm *AboutViewModel) Level() int { return vm.level }

// More pushes another about page inside the modal stack.
func (vm *AboutViewModel) More() (*future.Future[bool], error) {
	return vm.NavigateToRoute("About", model.NavigationModeNormal, model.Params{"level": vm.level + 1}, false)
}

// Dismiss closes the whole modal stack.
func (vm *AboutViewModel) Dismiss() *future.Future[bool] {
	return vm.NavigateBack(model.NavigationModeModal)
}

// AboutPage describes the application.
type AboutPage struct {
	*mvvm.BaseView
	more, dismiss key.Binding
}

var _ tui.Screen = (*AboutPage)(nil)

func NewAboutPage() *AboutPage {
	return &AboutPage{
		BaseView: mvvm.NewBaseView("About"),
		more:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "more")),
		dismiss:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "close about")),
	}
}

func (p *AboutPage) viewModel() *AboutViewModel {
	vm, _ := p.BindingContext().(*AboutViewModel)
	return vm
}

func (p *AboutPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	vm := p.viewModel()
	if !ok || vm == nil {
		return nil
	}
	switch {
	case key.Matches(km, p.more):
		done, err := vm.More()
		settle(vm.Context(), "about more", done, err)
	case key.Matches(km, p.dismiss):
		settle(vm.Context(), "close about", vm.Dismiss(), nil)
	}
	return nil
}

func (p *AboutPage) View(width, height int) string {
	level := 1
	if vm := p.viewModel(); vm != nil {
		level = vm.Level()
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("vmfirst shop"),
		"",
		"View-models navigate by publishing requests on a message bus.",
		"This page lives in its own modal navigation stack.",
		"",
		dimStyle.Render(fmt.Sprintf("about page %d", level)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (p *AboutPage) KeyHelp() []key.Binding { return []key.Binding{p.more, p.dismiss} }
