// Package nav owns page navigation: the stack container, the application
// window, the bus-driven navigation service and the route table.
package nav

import (
	"fmt"
	"log"

	"github.com/tinytelemetry/vmfirst/internal/bus"
	"github.com/tinytelemetry/vmfirst/internal/future"
	"github.com/tinytelemetry/vmfirst/internal/model"
)

// Service performs push and pop requests published on the bus. Every
// accepted request resolves its completion future exactly once: true when
// the stack mutation succeeded, false otherwise.
type Service struct {
	app Application
	bus *bus.Bus
}

// NewService creates a service bound to app and subscribes it to the
// navigation topics of b.
func NewService(app Application, b *bus.Bus) *Service {
	s := &Service{app: app, bus: b}
	bus.Subscribe(b, s, bus.TopicNavigationPush, func(info *model.NavigationPushInfo) {
		s.Push(info)
	})
	bus.Subscribe(b, s, bus.TopicNavigationPop, func(info *model.NavigationPopInfo) {
		s.Pop(info)
	})
	return s
}

// Close unsubscribes the service from the bus.
func (s *Service) Close() {
	s.bus.Unsubscribe(s, bus.TopicNavigationPush)
	s.bus.Unsubscribe(s, bus.TopicNavigationPop)
}

// Init installs the first root page, whatever mode info carries.
func (s *Service) Init(info *model.NavigationPushInfo) *future.Future[bool] {
	validatePush(info)
	s.initViewModel(info)
	s.rootPush(info)
	return info.Done
}

// Push dispatches info by mode. It panics on a nil request, a nil page or
// a mode it does not implement.
func (s *Service) Push(info *model.NavigationPushInfo) *future.Future[bool] {
	validatePush(info)

	var op func(*model.NavigationPushInfo)
	switch info.Mode {
	case model.NavigationModeNormal:
		op = s.normalPush
	case model.NavigationModeModal:
		op = s.modalPush
	case model.NavigationModeRootPage:
		op = s.rootPush
	default:
		panic(fmt.Errorf("%w: push %s", ErrUnknownMode, info.Mode))
	}

	s.initViewModel(info)
	op(info)
	return info.Done
}

// Pop dispatches info by mode. Only normal and modal pops exist.
func (s *Service) Pop(info *model.NavigationPopInfo) *future.Future[bool] {
	if info == nil {
		panic(ErrNilPopInfo)
	}
	if info.Done == nil {
		info.Done = future.New[bool]()
	}

	switch info.Mode {
	case model.NavigationModeNormal:
		s.execute(info.Done, "pop normal", func() error {
			top, err := s.topNavigation()
			if err != nil {
				return err
			}
			_, err = Innermost(top).Pop()
			return err
		})
	case model.NavigationModeModal:
		s.execute(info.Done, "pop modal", func() error {
			top, err := s.topNavigation()
			if err != nil {
				return err
			}
			_, err = top.PopModal()
			return err
		})
	default:
		panic(fmt.Errorf("%w: pop %s", ErrUnknownMode, info.Mode))
	}
	return info.Done
}

func validatePush(info *model.NavigationPushInfo) {
	if info == nil {
		panic(ErrNilPushInfo)
	}
	if info.Page == nil {
		panic(ErrNilPage)
	}
	if info.Done == nil {
		info.Done = future.New[bool]()
	}
}

// initViewModel applies params before anything is marshaled, so the
// view-model is ready by the time its page appears.
func (s *Service) initViewModel(info *model.NavigationPushInfo) {
	if info.ViewModel == nil {
		return
	}
	params := info.Params
	if params == nil {
		params = model.Params{}
	}
	info.ViewModel.Init(params)
}

func (s *Service) rootPush(info *model.NavigationPushInfo) {
	s.execute(info.Done, "push root", func() error {
		bind(info.Page, info.ViewModel)
		s.app.SetMainPage(NewStackPage(info.Page))
		return nil
	})
}

func (s *Service) normalPush(info *model.NavigationPushInfo) {
	s.execute(info.Done, "push normal", func() error {
		top, err := s.topNavigation()
		if err != nil {
			return err
		}
		bind(info.Page, info.ViewModel)
		return Innermost(top).Push(info.Page)
	})
}

func (s *Service) modalPush(info *model.NavigationPushInfo) {
	s.execute(info.Done, "push modal", func() error {
		top, err := s.topNavigation()
		if err != nil {
			return err
		}
		page := info.Page
		if info.NewNavigationStack {
			page = NewStackPage(page)
		}
		bind(page, info.ViewModel)
		return top.PushModal(page)
	})
}

func bind(page model.Page, vm model.ViewModel) {
	if vm != nil {
		page.Bind(vm)
	}
}

func (s *Service) topNavigation() (Stack, error) {
	main := s.app.MainPage()
	top, ok := main.(Stack)
	if !ok {
		return nil, ErrNoNavigation
	}
	return top, nil
}

// execute runs fn on the UI goroutine and resolves done with its outcome.
// Panics raised by the host while mutating the stack count as failure.
func (s *Service) execute(done *future.Future[bool], op string, fn func() error) {
	s.app.RunOnUIThread(func() {
		ok := false
		defer func() {
			if r := recover(); r != nil {
				log.Printf("nav: %s: recovered panic: %v", op, r)
			}
			done.Resolve(ok)
		}()

		if err := fn(); err != nil {
			log.Printf("nav: %s failed: %v", op, err)
			return
		}
		ok = true
	})
}
