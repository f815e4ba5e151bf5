// Package demo is a small shop application built on the navigation
// scaffold: a login page, a catalog, item details and a modal about stack.
package demo

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/vmfirst/internal/future"
	"github.com/tinytelemetry/vmfirst/internal/model"
	"github.com/tinytelemetry/vmfirst/internal/mvvm"
	"github.com/tinytelemetry/vmfirst/internal/nav"
	"github.com/tinytelemetry/vmfirst/internal/tui"
)

// Env carries what the demo view-models need.
type Env struct {
	mvvm.Deps
	// CatalogPath is the YAML catalog to load; empty uses the built-in one.
	CatalogPath string
}

// Register adds the demo routes to routes.
func Register(routes *nav.Routes, env Env) error {
	env.Routes = routes
	pairs := []struct {
		page nav.PageFactory
		vm   nav.ViewModelFactory
	}{
		{func() model.Page { return NewLoginPage() }, func() model.ViewModel { return NewLoginViewModel(env) }},
		{func() model.Page { return NewCatalogPage() }, func() model.ViewModel { return NewCatalogViewModel(env) }},
		{func() model.Page { return NewDetailPage() }, func() model.ViewModel { return NewDetailViewModel(env) }},
		{func() model.Page { return NewAboutPage() }, func() model.ViewModel { return NewAboutViewModel(env) }},
	}
	for _, p := range pairs {
		if _, err := routes.RegisterPair(p.page, p.vm); err != nil {
			return err
		}
	}
	return nil
}

// settle waits for a navigation result off the UI goroutine and logs
// failures. Pages call it because they run on the UI goroutine and must
// not block on the future.
func settle(ctx context.Context, op string, done *future.Future[bool], err error) {
	if err != nil {
		log.Printf("demo: %s: %v", op, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		ok, err := done.Wait(ctx)
		switch {
		case err != nil:
			log.Printf("demo: %s: %v", op, err)
		case !ok:
			log.Printf("demo: %s: navigation failed", op)
		}
	}()
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(tui.ColorBlue)
	dimStyle    = lipgloss.NewStyle().Foreground(tui.ColorGray)
	rowStyle    = lipgloss.NewStyle().PaddingLeft(2)
	cursorStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(tui.ColorWhite).
			Background(tui.ColorNavy).
			Bold(true)
)

func stateLabel(s fmt.Stringer) string {
	return lipgloss.NewStyle().Foreground(tui.StateColor(s.String())).Render("● " + s.String())
}
