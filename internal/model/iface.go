package model

// Lifecycle is the view-model capability set: the hooks a bound object
// receives when its page becomes visible or invisible.
type Lifecycle interface {
	OnPageAppearing()
	OnPageDisappearing()
}

// ViewModel is bound to a page as its binding context.
type ViewModel interface {
	Lifecycle
	// Init applies navigation parameters. It is called before the page
	// is shown.
	Init(params Params)
}

// Page is a navigable view.
type Page interface {
	Title() string
	// Bind sets the page's binding context.
	Bind(vm ViewModel)
	BindingContext() ViewModel

	// SendAppearing and SendDisappearing are raised by the host when the
	// page becomes visible or stops being visible.
	SendAppearing()
	SendDisappearing()
	// SendBackButtonPressed reports whether the page handled the back
	// button. false lets the host apply its default behaviour.
	SendBackButtonPressed() bool
}
