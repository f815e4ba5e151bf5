package demo

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/vmfirst/internal/future"
	"github.com/tinytelemetry/vmfirst/internal/model"
	"github.com/tinytelemetry/vmfirst/internal/mvvm"
	"github.com/tinytelemetry/vmfirst/internal/tui"
)

// LoginViewModel signs the user in and replaces the root with the catalog.
type LoginViewModel struct {
	*mvvm.BaseViewModel
}

func NewLoginViewModel(env Env) *LoginViewModel {
	vm := &LoginViewModel{}
	vm.BaseViewModel = mvvm.NewBaseViewModel(env.Deps, mvvm.WithSource(vm))
	return vm
}

// ErrNoUser is returned by Login for an empty user name.
var ErrNoUser = errors.New("demo: no user name")

// Login opens the catalog as the new root. An empty name shows an alert
// instead.
func (vm *LoginViewModel) Login(user string) (*future.Future[bool], error) {
	user = strings.TrimSpace(user)
	if user == "" {
		vm.ShowAlert("Sign in", "Enter a user name to continue.", "OK")
		return nil, ErrNoUser
	}
	return vm.NavigateToRoute("Catalog", model.NavigationModeRootPage, model.Params{"user": user}, false)
}

// LoginPage asks for a user name.
type LoginPage struct {
	*mvvm.BaseView
	input  textinput.Model
	submit key.Binding
}

var _ tui.Screen = (*LoginPage)(nil)

func NewLoginPage() *LoginPage {
	input := textinput.New()
	input.Placeholder = "user name"
	input.CharLimit = 40
	input.Focus()
	return &LoginPage{
		BaseView: mvvm.NewBaseView("Sign in"),
		input:    input,
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "sign in"),
		),
	}
}

func (p *LoginPage) viewModel() *LoginViewModel {
	vm, _ := p.BindingContext().(*LoginViewModel)
	return vm
}

func (p *LoginPage) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, p.submit) {
		if vm := p.viewModel(); vm != nil {
			done, err := vm.Login(p.input.Value())
			settle(vm.Context(), "login", done, err)
		}
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *LoginPage) View(width, height int) string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Welcome to the shop"),
		"",
		p.input.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}

func (p *LoginPage) KeyHelp() []key.Binding { return []key.Binding{p.submit} }
