package model

import "fmt"

// NavigationMode selects how a page is pushed or popped. It is a per-call
// parameter, not persistent state.
type NavigationMode int

const (
	// NavigationModeNormal pushes onto the page stack (full screen).
	NavigationModeNormal NavigationMode = iota
	// NavigationModeModal presents outside the back-stack.
	NavigationModeModal
	// NavigationModeRootPage replaces the application's visible root.
	NavigationModeRootPage
)

func (m NavigationMode) String() string {
	switch m {
	case NavigationModeNormal:
		return "normal"
	case NavigationModeModal:
		return "modal"
	case NavigationModeRootPage:
		return "root"
	default:
		return fmt.Sprintf("NavigationMode(%d)", int(m))
	}
}

// PageState is the UI-affecting condition of a page, owned by its
// view-model and read by the view for conditional rendering.
type PageState int

const (
	PageStateClean PageState = iota
	// PageStateLoading means a load is in progress.
	PageStateLoading
	// PageStateNormal means data is loaded.
	PageStateNormal
	// PageStateNoData means the load returned nothing.
	PageStateNoData
	// PageStateError means the load failed.
	PageStateError
	// PageStateNoInternet means there was no connection.
	PageStateNoInternet
)

func (s PageState) String() string {
	switch s {
	case PageStateClean:
		return "clean"
	case PageStateLoading:
		return "loading"
	case PageStateNormal:
		return "normal"
	case PageStateNoData:
		return "no-data"
	case PageStateError:
		return "error"
	case PageStateNoInternet:
		return "no-internet"
	default:
		return fmt.Sprintf("PageState(%d)", int(s))
	}
}

// Params are navigation parameters handed to a view-model before its page
// becomes visible.
type Params map[string]any

// String returns the string stored under key, or "".
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// Clone returns a shallow copy. A nil map clones to an empty one.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// EntryResult is the outcome of an entry (text prompt) dialog.
type EntryResult struct {
	Value     string
	Cancelled bool
}

// PropertyChanged notifies bindings that Name changed on Source.
type PropertyChanged struct {
	Source any
	Name   string
}
