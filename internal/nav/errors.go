package nav

import "errors"

// Caller-contract violations. The service panics with these.
var (
	ErrNilPushInfo = errors.New("nav: nil push request")
	ErrNilPopInfo  = errors.New("nav: nil pop request")
	ErrNilPage     = errors.New("nav: nil page")
	// ErrUnknownMode is a programming error: the request carried a mode the
	// operation does not implement.
	ErrUnknownMode = errors.New("nav: navigation mode not implemented")
)

// Execution failures. These resolve the completion future to false.
var (
	ErrNoNavigation = errors.New("nav: main page has no navigation stack")
	ErrEmptyStack   = errors.New("nav: nothing to pop")
	ErrNoModal      = errors.New("nav: no modal page to pop")
	ErrPageInStack  = errors.New("nav: page is already on the stack")
)

// Route table errors.
var (
	ErrEmptyRoute     = errors.New("nav: empty route name")
	ErrDuplicateRoute = errors.New("nav: duplicate route")
	ErrUnknownRoute   = errors.New("nav: unknown route")
	ErrRouteMismatch  = errors.New("nav: page and view-model names differ")
)
