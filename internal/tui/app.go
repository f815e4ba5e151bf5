package tui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/vmfirst/internal/bus"
	"github.com/tinytelemetry/vmfirst/internal/future"
	"github.com/tinytelemetry/vmfirst/internal/model"
	"github.com/tinytelemetry/vmfirst/internal/nav"
	"github.com/tinytelemetry/vmfirst/internal/uithread"
)

// App is the top-level Bubble Tea model. It draws whatever page the window
// shows and renders the dialogs view-models request on the bus.
//
// Update is the UI goroutine: work posted to the window's dispatcher runs
// at the end of every Update call.
type App struct {
	bus    *bus.Bus
	window *nav.Window
	queue  *uithread.Queue
	keys   KeyMap
	help   help.Model

	dialogs []Dialog
	loading loadingOverlay

	toast         *toast
	toastSeq      int
	toastDuration time.Duration
	longToast     time.Duration

	// pending collects commands produced by UI-thread work.
	pending  []tea.Cmd
	width    int
	height   int
	quitting bool
}

// Option configures an App.
type Option func(*App)

// WithToastDurations sets how long short and long toasts stay visible.
func WithToastDurations(short, long time.Duration) Option {
	return func(a *App) {
		if short > 0 {
			a.toastDuration = short
		}
		if long > 0 {
			a.longToast = long
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(a *App) { a.keys = keys }
}

// drainMsg wakes the event loop so posted UI work runs.
type drainMsg struct{}

// NewApp creates the host and subscribes it to the dialog topics of b.
func NewApp(b *bus.Bus, opts ...Option) *App {
	a := &App{
		bus:           b,
		queue:         uithread.NewQueue(nil),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		loading:       newLoadingOverlay(),
		toastDuration: model.DefaultToastDuration,
		longToast:     model.DefaultLongToast,
	}
	a.window = nav.NewWindow(a.queue)
	for _, opt := range opts {
		opt(a)
	}
	a.subscribe()
	return a
}

// Window is the application window the navigation service drives.
func (a *App) Window() *nav.Window { return a.window }

// Attach makes posted UI work wake p. Send runs on its own goroutine so
// posting from inside Update cannot block the loop.
func (a *App) Attach(p *tea.Program) {
	a.queue.SetWake(func() {
		go p.Send(drainMsg{})
	})
}

var dialogTopics = []string{
	bus.TopicDialogAlert,
	bus.TopicDialogQuestion,
	bus.TopicDialogSheet,
	bus.TopicDialogEntry,
	bus.TopicDialogToast,
	bus.TopicDialogShowLoading,
	bus.TopicDialogHideLoading,
	bus.TopicPropertyChanged,
}

func (a *App) subscribe() {
	bus.Subscribe(a.bus, a, bus.TopicDialogAlert, func(info *model.DialogAlertInfo) {
		if info == nil {
			return
		}
		if info.Done == nil {
			info.Done = future.New[bool]()
		}
		a.queue.Post(func() { a.pushDialog(newAlertDialog(a.keys, info)) })
	})
	bus.Subscribe(a.bus, a, bus.TopicDialogQuestion, func(info *model.DialogQuestionInfo) {
		if info == nil {
			return
		}
		if info.Done == nil {
			info.Done = future.New[bool]()
		}
		a.queue.Post(func() { a.pushDialog(newQuestionDialog(a.keys, info)) })
	})
	bus.Subscribe(a.bus, a, bus.TopicDialogSheet, func(info *model.DialogSheetInfo) {
		if info == nil {
			return
		}
		if info.Done == nil {
			info.Done = future.New[string]()
		}
		a.queue.Post(func() { a.pushDialog(newSheetDialog(a.keys, info)) })
	})
	bus.Subscribe(a.bus, a, bus.TopicDialogEntry, func(info *model.DialogEntryInfo) {
		if info == nil {
			return
		}
		if info.Done == nil {
			info.Done = future.New[model.EntryResult]()
		}
		a.queue.Post(func() {
			d, cmd := newEntryDialog(a.keys, info)
			a.pushDialog(d)
			a.enqueue(cmd)
		})
	})
	bus.Subscribe(a.bus, a, bus.TopicDialogToast, func(info *model.DialogToastInfo) {
		if info == nil {
			return
		}
		a.queue.Post(func() { a.showToast(info) })
	})
	bus.Subscribe(a.bus, a, bus.TopicDialogShowLoading, func(message string) {
		a.queue.Post(func() { a.enqueue(a.loading.show(message)) })
	})
	bus.Subscribe(a.bus, a, bus.TopicDialogHideLoading, func(any) {
		a.queue.Post(a.loading.hide)
	})
	// Property changes only need a redraw, which any drained work causes.
	bus.Subscribe(a.bus, a, bus.TopicPropertyChanged, func(model.PropertyChanged) {
		a.queue.Post(func() {})
	})
}

// Close unsubscribes from the bus and dismisses open dialogs so no caller
// waits on them forever.
func (a *App) Close() {
	for _, topic := range dialogTopics {
		a.bus.Unsubscribe(a, topic)
	}
	for i := len(a.dialogs) - 1; i >= 0; i-- {
		a.dialogs[i].Dismiss()
	}
	a.dialogs = nil
}

func (a *App) Init() tea.Cmd {
	return func() tea.Msg { return drainMsg{} }
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.handle(msg)
	a.queue.Drain()
	if a.quitting {
		return a, tea.Quit
	}
	cmds := append(a.pending, cmd)
	a.pending = nil
	return a, tea.Batch(cmds...)
}

func (a *App) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case drainMsg:
		return nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a.forward(msg)

	case spinner.TickMsg:
		return a.loading.update(msg)

	case toastExpiredMsg:
		if a.toast != nil && a.toast.id == msg.id {
			a.toast = nil
		}
		return nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.quitting = true
			return nil
		}
		if d := a.topDialog(); d != nil {
			done, cmd := d.Update(msg)
			if done {
				a.popDialog()
			}
			return cmd
		}
		if a.loading.active {
			return nil
		}
		if key.Matches(msg, a.keys.Back) {
			a.back()
			return nil
		}
		if key.Matches(msg, a.keys.Help) {
			a.pushDialog(newHelpDialog(a.keys, a.pageHelp()))
			return nil
		}
		return a.forward(msg)
	}

	var cmds []tea.Cmd
	if d := a.topDialog(); d != nil {
		_, cmd := d.Update(msg)
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, a.forward(msg))
	return tea.Batch(cmds...)
}

// back gives the visible page the back button, then falls back to closing
// what the user sees in the deepest stack: a plain modal, then the top page,
// then the modal stack itself. Pressing back on the root page quits.
func (a *App) back() {
	main := a.window.MainPage()
	if main == nil {
		a.quitting = true
		return
	}
	if main.SendBackButtonPressed() {
		return
	}
	s, ok := main.(nav.Stack)
	if !ok {
		a.quitting = true
		return
	}

	chain := []nav.Stack{s}
	for {
		inner, ok := chain[len(chain)-1].ModalTop().(nav.Stack)
		if !ok {
			break
		}
		chain = append(chain, inner)
	}
	deepest := chain[len(chain)-1]

	var err error
	switch {
	case deepest.ModalTop() != nil:
		_, err = deepest.PopModal()
	case deepest.Depth() > 1:
		_, err = deepest.Pop()
	case len(chain) > 1:
		_, err = chain[len(chain)-2].PopModal()
	default:
		a.quitting = true
	}
	if err != nil {
		log.Printf("tui: back: %v", err)
	}
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	if scr, ok := a.window.VisiblePage().(Screen); ok {
		return scr.Update(msg)
	}
	return nil
}

func (a *App) enqueue(cmd tea.Cmd) {
	if cmd != nil {
		a.pending = append(a.pending, cmd)
	}
}

func (a *App) pushDialog(d Dialog) {
	a.dialogs = append(a.dialogs, d)
}

func (a *App) popDialog() {
	if len(a.dialogs) > 0 {
		a.dialogs = a.dialogs[:len(a.dialogs)-1]
	}
}

func (a *App) topDialog() Dialog {
	if len(a.dialogs) == 0 {
		return nil
	}
	return a.dialogs[len(a.dialogs)-1]
}

func (a *App) showToast(info *model.DialogToastInfo) {
	a.toastSeq++
	a.toast = &toast{id: a.toastSeq, text: info.Text, center: info.Center}
	d := a.toastDuration
	if info.LongTime {
		d = a.longToast
	}
	a.enqueue(expireToast(a.toastSeq, d))
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.width <= 0 || a.height <= 0 {
		return "Starting..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()
	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch d := a.topDialog(); {
	case d != nil:
		body = lipgloss.Place(a.width, bodyHeight, lipgloss.Center, lipgloss.Center, d.View(a.width))
	case a.loading.active:
		body = a.loading.view(a.width, bodyHeight)
	default:
		body = a.renderPage(bodyHeight)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a *App) renderHeader() string {
	page := a.window.VisiblePage()
	if page == nil {
		return headerStyle.Width(a.width).Render("")
	}
	title := headerStyle.Render(page.Title())
	crumbs := strings.Join(breadcrumb(a.window.MainPage()), " › ")
	rest := a.width - lipgloss.Width(title)
	if rest < 0 {
		rest = 0
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, crumbStyle.Width(rest).Render(crumbs))
}

// breadcrumb lists the titles under the visible page, modal levels marked.
func breadcrumb(page model.Page) []string {
	s, ok := page.(*nav.StackPage)
	if !ok {
		if page == nil {
			return nil
		}
		return []string{page.Title()}
	}
	var out []string
	for _, p := range s.Pages() {
		out = append(out, p.Title())
	}
	for _, m := range s.Modals() {
		for _, title := range breadcrumb(m) {
			out = append(out, "▲ "+title)
		}
	}
	return out
}

func (a *App) renderPage(height int) string {
	page := a.window.VisiblePage()
	if page == nil {
		return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center, "No page")
	}
	scr, ok := page.(Screen)
	if !ok {
		return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center, page.Title())
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(scr.View(a.width, height))
}

func (a *App) renderFooter() string {
	if a.toast != nil {
		return a.toast.view(a.width)
	}
	var bindings []key.Binding
	if a.topDialog() == nil {
		bindings = append(bindings, a.pageHelp()...)
	}
	bindings = append(bindings, a.keys.Back, a.keys.Help, a.keys.Quit)
	return a.help.ShortHelpView(bindings)
}

func (a *App) pageHelp() []key.Binding {
	if h, ok := a.window.VisiblePage().(Helper); ok {
		return h.KeyHelp()
	}
	return nil
}
