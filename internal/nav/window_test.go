package nav

import (
	"testing"

	"github.com/tinytelemetry/vmfirst/internal/uithread"
)

func TestWindowSetMainPageLifecycle(t *testing.T) {
	t.Parallel()

	w := NewWindow(nil)
	first, second := newTestPage("first"), newTestPage("second")
	w.SetMainPage(first)
	w.SetMainPage(second)
	if w.MainPage() != second {
		t.Fatal("main page not replaced")
	}
	if first.appeared != 1 || first.disappeared != 1 || second.appeared != 1 {
		t.Fatalf("first %d/%d, second %d", first.appeared, first.disappeared, second.appeared)
	}
	w.SetMainPage(second)
	if second.appeared != 1 {
		t.Fatal("setting the same page again must not raise events")
	}
}

func TestWindowVisiblePage(t *testing.T) {
	t.Parallel()

	w := NewWindow(nil)
	if w.VisiblePage() != nil {
		t.Fatal("empty window has no visible page")
	}
	plain := newTestPage("plain")
	w.SetMainPage(plain)
	if w.VisiblePage() != plain {
		t.Fatal("non-stack main page is itself visible")
	}

	root, about, more := newTestPage("root"), newTestPage("about"), newTestPage("more")
	main := NewStackPage(root)
	w.SetMainPage(main)
	inner := NewStackPage(about)
	_ = main.PushModal(inner)
	_ = inner.Push(more)
	if w.VisiblePage() != more {
		t.Fatalf("visible = %v, want more", w.VisiblePage())
	}
}

func TestWindowRunOnUIThreadUsesDispatcher(t *testing.T) {
	t.Parallel()

	q := uithread.NewQueue(nil)
	w := NewWindow(q)
	ran := false
	w.RunOnUIThread(func() { ran = true })
	if ran {
		t.Fatal("work must wait for the UI goroutine")
	}
	q.Drain()
	if !ran {
		t.Fatal("work not run after drain")
	}
}
