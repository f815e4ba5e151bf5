package nav

import (
	"sync"

	"github.com/tinytelemetry/vmfirst/internal/model"
	"github.com/tinytelemetry/vmfirst/internal/uithread"
)

// Application is the host capability set the navigation service drives:
// the current root page and a way onto the UI goroutine.
type Application interface {
	MainPage() model.Page
	SetMainPage(page model.Page)
	RunOnUIThread(fn func())
}

// Window holds the application's main page. MainPage may be read from any
// goroutine; SetMainPage must run on the UI goroutine.
type Window struct {
	dispatcher uithread.Dispatcher

	mu   sync.RWMutex
	main model.Page
}

var _ Application = (*Window)(nil)

// NewWindow creates a window whose UI work is posted to d.
func NewWindow(d uithread.Dispatcher) *Window {
	if d == nil {
		d = uithread.Inline
	}
	return &Window{dispatcher: d}
}

// MainPage returns the current root page.
func (w *Window) MainPage() model.Page {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.main
}

// SetMainPage replaces the root page. The old root disappears before the new
// one appears.
func (w *Window) SetMainPage(page model.Page) {
	w.mu.Lock()
	old := w.main
	w.main = page
	w.mu.Unlock()

	if old == page {
		return
	}
	if old != nil {
		old.SendDisappearing()
	}
	if page != nil {
		page.SendAppearing()
	}
}

// RunOnUIThread posts fn to the window's dispatcher.
func (w *Window) RunOnUIThread(fn func()) {
	w.dispatcher.Post(fn)
}

// VisiblePage returns the page the user currently sees: the main page, or
// the innermost page of its navigation stack.
func (w *Window) VisiblePage() model.Page {
	main := w.MainPage()
	s, ok := main.(Stack)
	if !ok {
		return main
	}
	for {
		top := s.ModalTop()
		if top == nil {
			return s.CurrentPage()
		}
		inner, ok := top.(Stack)
		if !ok {
			return top
		}
		s = inner
	}
}
