// Package mvvm holds the base types application view-models and views embed.
package mvvm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/vmfirst/internal/bus"
	"github.com/tinytelemetry/vmfirst/internal/future"
	"github.com/tinytelemetry/vmfirst/internal/model"
	"github.com/tinytelemetry/vmfirst/internal/nav"
)

// Connectivity reports whether the network is reachable.
type Connectivity interface {
	IsConnected() bool
}

// Deps are the collaborators every view-model talks to.
type Deps struct {
	Bus *bus.Bus
	// Routes is optional; NavigateToRoute fails without it.
	Routes *nav.Routes
	// Connectivity is optional; without it the network counts as reachable.
	Connectivity Connectivity
}

// Loader fetches a view-model's data. ctx is cancelled when the view-model
// is closed or its requests are cancelled.
type Loader func(ctx context.Context) error

// Option configures a BaseViewModel.
type Option func(*BaseViewModel)

// WithLoader adds a routine to StartLoadData. Loaders run concurrently and
// the first failure cancels the others.
func WithLoader(fn Loader) Option {
	return func(b *BaseViewModel) {
		if fn != nil {
			b.loaders = append(b.loaders, fn)
		}
	}
}

// WithParamsHook sets a callback run by Init with the navigation params,
// before the page appears.
func WithParamsHook(fn func(model.Params)) Option {
	return func(b *BaseViewModel) { b.onParams = fn }
}

// WithSource sets the value published as the source of property changes.
// It defaults to the BaseViewModel itself.
func WithSource(src any) Option {
	return func(b *BaseViewModel) { b.source = src }
}

// BaseViewModel implements model.ViewModel and the navigation and dialog
// helpers shared by every view-model. Embed it by pointer.
type BaseViewModel struct {
	bus    *bus.Bus
	routes *nav.Routes
	conn   Connectivity
	source any

	loaders  []Loader
	onParams func(model.Params)

	ctx    context.Context
	cancel context.CancelFunc

	loadStarted atomic.Bool
	loadDone    chan struct{}
	closed      atomic.Bool

	mu      sync.RWMutex
	params  model.Params
	state   model.PageState
	loadErr error
}

var _ model.ViewModel = (*BaseViewModel)(nil)

// NewBaseViewModel creates a view-model base. deps.Bus is required.
func NewBaseViewModel(deps Deps, opts ...Option) *BaseViewModel {
	if deps.Bus == nil {
		panic("mvvm: nil bus")
	}
	ctx, cancel := context.WithCancel(context.Background())
	b := &BaseViewModel{
		bus:      deps.Bus,
		routes:   deps.Routes,
		conn:     deps.Connectivity,
		ctx:      ctx,
		cancel:   cancel,
		loadDone: make(chan struct{}),
		params:   model.Params{},
	}
	b.source = b
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// OnPageAppearing does nothing. Embedding types override it.
func (b *BaseViewModel) OnPageAppearing() {}

// OnPageDisappearing does nothing. Embedding types override it.
func (b *BaseViewModel) OnPageDisappearing() {}

// Init stores the navigation params and runs the params hook.
func (b *BaseViewModel) Init(params model.Params) {
	params = params.Clone()
	b.mu.Lock()
	b.params = params
	b.mu.Unlock()

	if b.onParams != nil {
		b.onParams(params)
	}
}

// Params returns the params received by Init.
func (b *BaseViewModel) Params() model.Params {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.params
}

// State returns the page state.
func (b *BaseViewModel) State() model.PageState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// SetState changes the page state and announces the change.
func (b *BaseViewModel) SetState(s model.PageState) {
	b.mu.Lock()
	changed := b.state != s
	b.state = s
	b.mu.Unlock()

	if changed {
		b.NotifyPropertyChanged("State")
	}
}

// NotifyPropertyChanged publishes a property change for name.
func (b *BaseViewModel) NotifyPropertyChanged(name string) {
	b.bus.Send(bus.TopicPropertyChanged, model.PropertyChanged{Source: b.source, Name: name})
}

// Context is cancelled when the view-model is closed or CancelRequests is
// called. Background work should watch it.
func (b *BaseViewModel) Context() context.Context { return b.ctx }

// CancelRequests cancels in-flight background work.
func (b *BaseViewModel) CancelRequests() { b.cancel() }

// IsConnected reports network reachability.
func (b *BaseViewModel) IsConnected() bool {
	return b.conn == nil || b.conn.IsConnected()
}

// IsLoadDataStarted reports whether StartLoadData has run.
func (b *BaseViewModel) IsLoadDataStarted() bool { return b.loadStarted.Load() }

// StartLoadData runs the loaders once in the background. Later calls are
// ignored, whether or not the first load has finished.
func (b *BaseViewModel) StartLoadData() {
	if !b.loadStarted.CompareAndSwap(false, true) {
		return
	}
	b.NotifyPropertyChanged("IsLoadDataStarted")

	g, ctx := errgroup.WithContext(b.ctx)
	for _, load := range b.loaders {
		load := load
		g.Go(func() error { return load(ctx) })
	}
	go func() {
		defer close(b.loadDone)
		err := g.Wait()
		if err == nil {
			return
		}
		b.mu.Lock()
		b.loadErr = err
		b.mu.Unlock()
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("mvvm: load data: %v", err)
		b.SetState(model.PageStateError)
	}()
}

// WaitLoad blocks until the load started by StartLoadData finishes and
// returns its error. It returns nil at once when no load was started.
func (b *BaseViewModel) WaitLoad(ctx context.Context) error {
	if !b.loadStarted.Load() {
		return nil
	}
	select {
	case <-b.loadDone:
		b.mu.RLock()
		defer b.mu.RUnlock()
		return b.loadErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close clears dialogs and cancels background work. Only the first call has
// an effect.
func (b *BaseViewModel) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	b.ClearDialogs()
	b.cancel()
	return nil
}

// NavigateTo asks the navigation service to show page bound to vm. Any
// loading indicator is hidden first.
func (b *BaseViewModel) NavigateTo(page model.Page, vm model.ViewModel, mode model.NavigationMode, params model.Params, newStack bool) *future.Future[bool] {
	b.HideLoading()
	info := model.NewPushInfo(page, vm, mode, params, newStack)
	b.bus.Send(bus.TopicNavigationPush, info)
	return info.Done
}

// NavigateToRoute builds the page and view-model registered as name and
// navigates to them.
func (b *BaseViewModel) NavigateToRoute(name string, mode model.NavigationMode, params model.Params, newStack bool) (*future.Future[bool], error) {
	if b.routes == nil {
		return nil, fmt.Errorf("%w: %q: no route table", nav.ErrUnknownRoute, name)
	}
	page, vm, err := b.routes.Build(name)
	if err != nil {
		return nil, err
	}
	return b.NavigateTo(page, vm, mode, params, newStack), nil
}

// NavigateBack clears dialogs and asks the navigation service to pop.
func (b *BaseViewModel) NavigateBack(mode model.NavigationMode) *future.Future[bool] {
	b.ClearDialogs()
	info := model.NewPopInfo(mode)
	b.bus.Send(bus.TopicNavigationPop, info)
	return info.Done
}

// GoBack pops the current page.
func (b *BaseViewModel) GoBack() *future.Future[bool] {
	return b.NavigateBack(model.NavigationModeNormal)
}

// ClearDialogs dismisses the loading indicator.
func (b *BaseViewModel) ClearDialogs() {
	b.HideLoading()
}
