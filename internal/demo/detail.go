package demo

import (
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

// Sheet actions offered by the detail page.
const (
	ActionShare     = "Share"
	ActionDuplicate = "Duplicate"
	ActionRemove    = "Remove"
	ActionCancel    = "Cancel"
)

// DetailViewModel shows one item, received as the "item" param.
type DetailViewModel struct {
	*mvvm.BaseViewModel

	mu   sync.RWMutex
	item Item
}

func NewDetailViewModel(env Env) *DetailViewModel {
	vm := &DetailViewModel{}
	vm.BaseViewModel = mvvm.NewBaseViewModel(env.Deps,
		mvvm.WithSource(vm),
		mvvm.WithParamsHook(func(p model.Params) {
			item, _ := p["item"].(Item)
			vm.mu.Lock()
			vm.item = item
			vm.mu.Unlock()
		}),
	)
	return vm
}

// Item returns the item shown.
func (vm *DetailViewModel) Item() Item {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.item
}

// Rename prompts for a new name and applies it unless cancelled. The
// returned future completes once the name is applied or the prompt is
// dismissed; it holds whether the name changed.
func (vm *DetailViewModel) Rename() *future.Future[bool] {
	result := future.New[bool]()
	entry := vm.ShowEntryAlert("Rename", "New name for "+vm.Item().Name, "Cancel", "Rename", vm.Item().Name)
	go func() {
		res, err := entry.Wait(vm.Context())
		name := strings.TrimSpace(res.Value)
		if err != nil || res.Cancelled || name == "" {
			result.Resolve(false)
			return
		}
		vm.mu.Lock()
		vm.item.Name = name
		vm.mu.Unlock()
		vm.NotifyPropertyChanged("Item")
		vm.ShowToast("Renamed to "+name, false, false)
		result.Resolve(true)
	}()
	return result
}

// Actions offers the item actions. Remove goes back to the catalog.
func (vm *DetailViewModel) Actions() *future.Future[string] {
	choice := vm.ShowSheet(vm.Item().Name, ActionCancel, ActionRemove, ActionShare, ActionDuplicate)
	go func() {
		picked, err := choice.Wait(vm.Context())
		if err != nil {
			return
		}
		switch picked {
		case ActionRemove:
			vm.GoBack()
		case ActionCancel, "":
		default:
			vm.ShowToast(picked+": "+vm.Item().Name, false, true)
		}
	}()
	return choice
}

// Info shows the item description in an alert.
func (vm *DetailViewModel) Info() *future.Future[bool] {
	item := vm.Item()
	return vm.ShowAlert(item.Name, item.Description, "Close")
}

type detailKeys struct {
	Rename, Actions, Info key.Binding
}

// DetailPage renders one item.
type DetailPage struct {
	*mvvm.BaseView
	keys detailKeys
}

var _ tui.Screen = (*DetailPage)(nil)

func NewDetailPage() *DetailPage {
	return &DetailPage{
		BaseView: mvvm.NewBaseView("Item"),
		keys: detailKeys{
			Rename:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
			Actions: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "actions")),
			Info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		},
	}
}

func (p *DetailPage) viewModel() *DetailViewModel {
	vm, _ := p.BindingContext().(*DetailViewModel)
	return vm
}

func (p *DetailPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	vm := p.viewModel()
	if !ok || vm == nil {
		return nil
	}
	switch {
	case key.Matches(km, p.keys.Rename):
		vm.Rename()
	case key.Matches(km, p.keys.Actions):
		vm.Actions()
	case key.Matches(km, p.keys.Info):
		vm.Info()
	}
	return nil
}

func (p *DetailPage) View(width, height int) string {
	vm := p.viewModel()
	if vm == nil {
		return ""
	}
	item := vm.Item()
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(item.Name),
		dimStyle.Render(item.ID),
		"",
		item.Description,
		"",
		fmt.Sprintf("Price: %.2f", item.Price),
		dimStyle.Render("Tags: "+strings.Join(item.Tags, ", ")),
	)
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

func (p *DetailPage) KeyHelp() []key.Binding {
	return []key.Binding{p.keys.Rename, p.keys.Actions, p.keys.Info}
}
