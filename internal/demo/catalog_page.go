package demo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/vmfirst/internal/future"
	"github.com/tinytelemetry/vmfirst/internal/model"
	"github.com/tinytelemetry/vmfirst/internal/mvvm"
	"github.com/tinytelemetry/vmfirst/internal/tui"
)

// CatalogViewModel loads the catalog in the background and opens items.
type CatalogViewModel struct {
	*mvvm.BaseViewModel
	path string

	mu    sync.RWMutex
	user  string
	items []Item
}

func NewCatalogViewModel(env Env) *CatalogViewModel {
	vm := &CatalogViewModel{path: env.CatalogPath}
	vm.BaseViewModel = mvvm.NewBaseViewModel(env.Deps,
		mvvm.WithSource(vm),
		mvvm.WithLoader(vm.load),
		mvvm.WithParamsHook(func(p model.Params) {
			vm.mu.Lock()
			vm.user = p.String("user")
			vm.mu.Unlock()
		}),
	)
	return vm
}

// OnPageAppearing starts the first load.
func (vm *CatalogViewModel) OnPageAppearing() {
	vm.StartLoadData()
}

func (vm *CatalogViewModel) load(ctx context.Context) error {
	if !vm.IsConnected() {
		vm.SetState(model.PageStateNoInternet)
		return nil
	}
	vm.SetState(model.PageStateLoading)
	vm.ShowLoading("Loading catalog")
	defer vm.HideLoading()

	items, err := LoadCatalog(vm.path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	vm.mu.Lock()
	vm.items = items
	vm.mu.Unlock()
	vm.NotifyPropertyChanged("Items")

	if len(items) == 0 {
		vm.SetState(model.PageStateNoData)
	} else {
		vm.SetState(model.PageStateNormal)
	}
	return nil
}

// User is the signed-in user name.
func (vm *CatalogViewModel) User() string {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.user
}

// Items returns the loaded items.
func (vm *CatalogViewModel) Items() []Item {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.items
}

// Open pushes the detail page for item i.
func (vm *CatalogViewModel) Open(i int) (*future.Future[bool], error) {
	items := vm.Items()
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("item %d out of range", i)
	}
	return vm.NavigateToRoute("Detail", model.NavigationModeNormal, model.Params{"item": items[i]}, false)
}

// About presents the about pages in their own modal stack.
func (vm *CatalogViewModel) About() (*future.Future[bool], error) {
	return vm.NavigateToRoute("About", model.NavigationModeModal, model.Params{"level": 1}, true)
}

// Logout goes back to the login page as the new root.
func (vm *CatalogViewModel) Logout() (*future.Future[bool], error) {
	return vm.NavigateToRoute("Login", model.NavigationModeRootPage, nil, false)
}

// Checkout asks for confirmation and toasts the outcome. The returned
// future holds the answer.
func (vm *CatalogViewModel) Checkout() *future.Future[bool] {
	answer := vm.ShowQuestion("Checkout", "Place the order?", "Order", "Not yet")
	go func() {
		ok, err := answer.Wait(vm.Context())
		if err != nil {
			return
		}
		if ok {
			vm.ShowToast("Order placed", false, false)
		} else {
			vm.ShowToast("Order kept in the basket", false, false)
		}
	}()
	return answer
}

type catalogKeys struct {
	Up, Down, Open, About, Checkout, Logout key.Binding
}

// CatalogPage lists the catalog items.
type CatalogPage struct {
	*mvvm.BaseView
	keys   catalogKeys
	cursor int
}

var _ tui.Screen = (*CatalogPage)(nil)

func NewCatalogPage() *CatalogPage {
	return &CatalogPage{
		BaseView: mvvm.NewBaseView("Catalog"),
		keys: catalogKeys{
			Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
			About:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
			Checkout: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "checkout")),
			Logout:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log out")),
		},
	}
}

func (p *CatalogPage) viewModel() *CatalogViewModel {
	vm, _ := p.BindingContext().(*CatalogViewModel)
	return vm
}

func (p *CatalogPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	vm := p.viewModel()
	if !ok || vm == nil {
		return nil
	}
	switch {
	case key.Matches(km, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(km, p.keys.Down):
		if p.cursor < len(vm.Items())-1 {
			p.cursor++
		}
	case key.Matches(km, p.keys.Open):
		done, err := vm.Open(p.cursor)
		settle(vm.Context(), "open item", done, err)
	case key.Matches(km, p.keys.About):
		done, err := vm.About()
		settle(vm.Context(), "about", done, err)
	case key.Matches(km, p.keys.Checkout):
		vm.Checkout()
	case key.Matches(km, p.keys.Logout):
		done, err := vm.Logout()
		settle(vm.Context(), "log out", done, err)
	}
	return nil
}

func (p *CatalogPage) View(width, height int) string {
	vm := p.viewModel()
	if vm == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Hello, "+orGuest(vm.User())) + "  " + stateLabel(vm.State()) + "\n\n")

	switch vm.State() {
	case model.PageStateNoData:
		b.WriteString(dimStyle.Render("The catalog is empty."))
	case model.PageStateError:
		b.WriteString(dimStyle.Render("The catalog could not be loaded."))
	case model.PageStateNoInternet:
		b.WriteString(dimStyle.Render("You are offline."))
	default:
		for i, item := range vm.Items() {
			line := fmt.Sprintf("%-16s %8.2f", item.Name, item.Price)
			if i == p.cursor {
				b.WriteString(cursorStyle.Render("▸ "+line) + "\n")
				continue
			}
			b.WriteString(rowStyle.Render(line) + "\n")
		}
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (p *CatalogPage) KeyHelp() []key.Binding {
	return []key.Binding{p.keys.Up, p.keys.Down, p.keys.Open, p.keys.About, p.keys.Checkout, p.keys.Logout}
}

func orGuest(user string) string {
	if user == "" {
		return "guest"
	}
	return user
}
