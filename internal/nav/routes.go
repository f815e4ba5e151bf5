package nav

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/tinytelemetry/vmfirst/internal/model"
)

// PageFactory builds a fresh page for a route.
type PageFactory func() model.Page

// ViewModelFactory builds a fresh view-model for a route.
type ViewModelFactory func() model.ViewModel

// Route pairs the factories registered under one name.
type Route struct {
	Name      string
	Page      PageFactory
	ViewModel ViewModelFactory
}

// Routes maps symbolic route names to page and view-model factories. It is
// filled at startup and read afterwards.
type Routes struct {
	mu     sync.RWMutex
	routes map[string]Route
}

// NewRoutes returns an empty route table.
func NewRoutes() *Routes {
	return &Routes{routes: make(map[string]Route)}
}

// Register adds a route. Empty and already registered names are rejected.
func (r *Routes) Register(name string, page PageFactory, vm ViewModelFactory) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoute
	}
	if page == nil {
		return fmt.Errorf("route %q: %w", name, ErrNilPage)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.routes[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRoute, name)
	}
	r.routes[name] = Route{Name: name, Page: page, ViewModel: vm}
	return nil
}

// RegisterPair registers a route named after the page type, with its
// "Page" suffix stripped. The view-model type, stripped of "ViewModel",
// must produce the same name.
func (r *Routes) RegisterPair(page PageFactory, vm ViewModelFactory) (string, error) {
	if page == nil || vm == nil {
		return "", ErrNilPage
	}
	pageName := BaseName(page())
	vmName := BaseName(vm())
	if pageName != vmName {
		return "", fmt.Errorf("%w: %q and %q", ErrRouteMismatch, pageName, vmName)
	}
	return pageName, r.Register(pageName, page, vm)
}

// MustRegister is Register for startup code that cannot continue on error.
func (r *Routes) MustRegister(name string, page PageFactory, vm ViewModelFactory) {
	if err := r.Register(name, page, vm); err != nil {
		panic(err)
	}
}

// Lookup returns the route registered under name. Unknown names fail with
// ErrUnknownRoute and suggest the closest registered name.
func (r *Routes) Lookup(name string) (Route, error) {
	name = strings.TrimSpace(name)
	r.mu.RLock()
	route, ok := r.routes[name]
	r.mu.RUnlock()
	if ok {
		return route, nil
	}
	if hint := r.closest(name); hint != "" {
		return Route{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownRoute, name, hint)
	}
	return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, name)
}

// Build creates a fresh page and view-model for name. The view-model is nil
// when the route has no view-model factory.
func (r *Routes) Build(name string) (model.Page, model.ViewModel, error) {
	route, err := r.Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	page := route.Page()
	if page == nil {
		return nil, nil, fmt.Errorf("route %q: %w", name, ErrNilPage)
	}
	var vm model.ViewModel
	if route.ViewModel != nil {
		vm = route.ViewModel()
	}
	return page, vm, nil
}

// Names returns the registered route names in sorted order.
func (r *Routes) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of registered routes.
func (r *Routes) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.routes)
}

func (r *Routes) closest(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	names := r.Names()
	if ranks := fuzzy.RankFindNormalizedFold(name, names); len(ranks) > 0 {
		sort.Stable(ranks)
		return ranks[0].Target
	}

	best, bestDist := "", -1
	for _, candidate := range names {
		d := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(candidate))
		if d > len(candidate)/2 {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// BaseName derives a route name from a page or view-model value: the Go
// type name without package, pointer marker or "ViewModel"/"Page" suffix.
func BaseName(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	for _, suffix := range []string{"ViewModel", "Page"} {
		if trimmed := strings.TrimSuffix(name, suffix); trimmed != "" && trimmed != name {
			return trimmed
		}
	}
	return name
}
