package nav

import "github.com/tinytelemetry/vmfirst/internal/model"

// Stack is the navigation capability of a stack container. Implementations
// are only touched from the UI goroutine.
type Stack interface {
	Push(page model.Page) error
	Pop() (model.Page, error)
	PushModal(page model.Page) error
	PopModal() (model.Page, error)

	Depth() int
	ModalDepth() int
	CurrentPage() model.Page
	ModalTop() model.Page
}

// StackPage is a page that hosts a stack of pages plus the modal pages
// presented over it. The visible page is the top modal, or the top of the
// page stack when no modal is shown.
//
// Lifecycle events are raised only while the container itself is visible.
type StackPage struct {
	pages   []model.Page
	modals  []model.Page
	vm      model.ViewModel
	visible bool
}

var (
	_ model.Page = (*StackPage)(nil)
	_ Stack      = (*StackPage)(nil)
)

// NewStackPage wraps root in a new stack container.
func NewStackPage(root model.Page) *StackPage {
	s := &StackPage{}
	if root != nil {
		s.pages = append(s.pages, root)
	}
	return s
}

// Title returns the title of the visible page.
func (s *StackPage) Title() string {
	if p := s.Visible(); p != nil {
		return p.Title()
	}
	return ""
}

// Bind sets the container's binding context and hands it down to the root
// page when the root has none of its own.
func (s *StackPage) Bind(vm model.ViewModel) {
	s.vm = vm
	if root := s.Root(); root != nil && root.BindingContext() == nil {
		root.Bind(vm)
	}
}

// BindingContext returns the visible page's binding context, falling back to
// the container's own.
func (s *StackPage) BindingContext() model.ViewModel {
	if p := s.Visible(); p != nil {
		if vm := p.BindingContext(); vm != nil {
			return vm
		}
	}
	return s.vm
}

// SendAppearing marks the container visible and forwards to the visible page.
func (s *StackPage) SendAppearing() {
	s.visible = true
	if p := s.Visible(); p != nil {
		p.SendAppearing()
	}
}

// SendDisappearing marks the container hidden and forwards to the visible page.
func (s *StackPage) SendDisappearing() {
	if p := s.Visible(); p != nil {
		p.SendDisappearing()
	}
	s.visible = false
}

// SendBackButtonPressed lets the visible page handle the back button.
func (s *StackPage) SendBackButtonPressed() bool {
	if p := s.Visible(); p != nil {
		return p.SendBackButtonPressed()
	}
	return false
}

// Root returns the bottom page of the stack.
func (s *StackPage) Root() model.Page {
	if len(s.pages) == 0 {
		return nil
	}
	return s.pages[0]
}

// CurrentPage returns the top of the page stack, ignoring modals.
func (s *StackPage) CurrentPage() model.Page {
	if len(s.pages) == 0 {
		return nil
	}
	return s.pages[len(s.pages)-1]
}

// ModalTop returns the top modal page, or nil.
func (s *StackPage) ModalTop() model.Page {
	if len(s.modals) == 0 {
		return nil
	}
	return s.modals[len(s.modals)-1]
}

// Visible returns the page currently shown by this container.
func (s *StackPage) Visible() model.Page {
	if top := s.ModalTop(); top != nil {
		return top
	}
	return s.CurrentPage()
}

// Depth is the number of pages on the page stack.
func (s *StackPage) Depth() int { return len(s.pages) }

// ModalDepth is the number of modal pages presented.
func (s *StackPage) ModalDepth() int { return len(s.modals) }

// Pages returns a copy of the page stack, bottom first.
func (s *StackPage) Pages() []model.Page {
	return append([]model.Page(nil), s.pages...)
}

// Modals returns a copy of the modal stack, bottom first.
func (s *StackPage) Modals() []model.Page {
	return append([]model.Page(nil), s.modals...)
}

// Push adds page to the top of the page stack.
func (s *StackPage) Push(page model.Page) error {
	if page == nil {
		return ErrNilPage
	}
	if s.contains(page) {
		return ErrPageInStack
	}
	s.transition(func() { s.pages = append(s.pages, page) })
	return nil
}

// Pop removes the top of the page stack. The root page cannot be popped.
func (s *StackPage) Pop() (model.Page, error) {
	if len(s.pages) <= 1 {
		return nil, ErrEmptyStack
	}
	top := s.pages[len(s.pages)-1]
	s.transition(func() { s.pages = s.pages[:len(s.pages)-1] })
	return top, nil
}

// PushModal presents page over everything in this container.
func (s *StackPage) PushModal(page model.Page) error {
	if page == nil {
		return ErrNilPage
	}
	if s.contains(page) {
		return ErrPageInStack
	}
	s.transition(func() { s.modals = append(s.modals, page) })
	return nil
}

// PopModal dismisses the top modal page.
func (s *StackPage) PopModal() (model.Page, error) {
	if len(s.modals) == 0 {
		return nil, ErrNoModal
	}
	top := s.modals[len(s.modals)-1]
	s.transition(func() { s.modals = s.modals[:len(s.modals)-1] })
	return top, nil
}

func (s *StackPage) contains(page model.Page) bool {
	for _, p := range s.pages {
		if p == page {
			return true
		}
	}
	for _, p := range s.modals {
		if p == page {
			return true
		}
	}
	return false
}

// transition applies mutate and raises lifecycle events when the visible
// page changes.
func (s *StackPage) transition(mutate func()) {
	before := s.Visible()
	mutate()
	after := s.Visible()
	if !s.visible || before == after {
		return
	}
	if before != nil {
		before.SendDisappearing()
	}
	if after != nil {
		after.SendAppearing()
	}
}

// Innermost follows modal stack containers down from s and returns the
// deepest one, which is where normal pushes and pops apply.
func Innermost(s Stack) Stack {
	for {
		inner, ok := s.ModalTop().(Stack)
		if !ok {
			return s
		}
		s = inner
	}
}
