package nav

import (
	"errors"
	"testing"
)

func TestStackPagePushPop(t *testing.T) {
	t.Parallel()

	root, second := newTestPage("root"), newTestPage("second")
	s := NewStackPage(root)
	if err := s.Push(second); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if s.Depth() != 2 || s.CurrentPage() != second {
		t.Fatalf("depth = %d, current = %v", s.Depth(), s.CurrentPage())
	}
	popped, err := s.Pop()
	if err != nil || popped != second {
		t.Fatalf("Pop = %v, %v", popped, err)
	}
	if _, err := s.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Fatalf("popping the root: err = %v, want ErrEmptyStack", err)
	}
	if s.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", s.Depth())
	}
}

func TestStackPageRejectsBadPushes(t *testing.T) {
	t.Parallel()

	root := newTestPage("root")
	s := NewStackPage(root)
	if err := s.Push(nil); !errors.Is(err, ErrNilPage) {
		t.Fatalf("Push(nil) = %v", err)
	}
	if err := s.Push(root); !errors.Is(err, ErrPageInStack) {
		t.Fatalf("Push(root) = %v", err)
	}
	if err := s.PushModal(root); !errors.Is(err, ErrPageInStack) {
		t.Fatalf("PushModal(root) = %v", err)
	}
	if _, err := s.PopModal(); !errors.Is(err, ErrNoModal) {
		t.Fatalf("PopModal = %v", err)
	}
}

func TestStackPageModalCoversPages(t *testing.T) {
	t.Parallel()

	root, modal := newTestPage("root"), newTestPage("modal")
	s := NewStackPage(root)
	if err := s.PushModal(modal); err != nil {
		t.Fatalf("PushModal: %v", err)
	}
	if s.Visible() != modal || s.Title() != "modal" {
		t.Fatalf("visible = %v", s.Visible())
	}
	if s.CurrentPage() != root {
		t.Fatal("modal must not change the page stack")
	}
	if _, err := s.PopModal(); err != nil {
		t.Fatalf("PopModal: %v", err)
	}
	if s.Visible() != root || s.ModalDepth() != 0 {
		t.Fatalf("visible = %v, modal depth = %d", s.Visible(), s.ModalDepth())
	}
}

func TestStackPageLifecycleOnlyWhileVisible(t *testing.T) {
	t.Parallel()

	root, second := newTestPage("root"), newTestPage("second")
	s := NewStackPage(root)
	if err := s.Push(second); err != nil {
		t.Fatal(err)
	}
	if root.disappeared != 0 || second.appeared != 0 {
		t.Fatal("hidden container must not raise lifecycle events")
	}

	s.SendAppearing()
	if second.appeared != 1 {
		t.Fatalf("second appeared %d times", second.appeared)
	}
	if _, err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if second.disappeared != 1 || root.appeared != 1 {
		t.Fatalf("second.disappeared = %d, root.appeared = %d", second.disappeared, root.appeared)
	}

	s.SendDisappearing()
	if root.disappeared != 1 {
		t.Fatalf("root disappeared %d times", root.disappeared)
	}
}

func TestStackPageBindHandsDownToRoot(t *testing.T) {
	t.Parallel()

	root := newTestPage("root")
	s := NewStackPage(root)
	vm := &testViewModel{}
	s.Bind(vm)
	if root.BindingContext() != vm || s.BindingContext() != vm {
		t.Fatal("binding should reach the root page")
	}

	own := &testViewModel{}
	bound := newTestPage("bound")
	bound.Bind(own)
	NewStackPage(bound).Bind(vm)
	if bound.BindingContext() != own {
		t.Fatal("an existing binding must be kept")
	}
}

func TestStackPageBackButtonGoesToVisiblePage(t *testing.T) {
	t.Parallel()

	root, modal := newTestPage("root"), newTestPage("modal")
	modal.back = true
	s := NewStackPage(root)
	if s.SendBackButtonPressed() {
		t.Fatal("root does not handle back")
	}
	_ = s.PushModal(modal)
	if !s.SendBackButtonPressed() {
		t.Fatal("modal handles back")
	}
}

func TestInnermostFollowsModalStacks(t *testing.T) {
	t.Parallel()

	main := NewStackPage(newTestPage("root"))
	if Innermost(main) != main {
		t.Fatal("no modal stack: innermost is main")
	}
	_ = main.PushModal(newTestPage("plain modal"))
	if Innermost(main) != main {
		t.Fatal("a plain modal page is not a stack")
	}
	inner := NewStackPage(newTestPage("about"))
	_ = main.PushModal(inner)
	if Innermost(main) != inner {
		t.Fatal("innermost should be the modal stack")
	}
}
