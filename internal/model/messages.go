package model

import "github.com/tinytelemetry/vmfirst/internal/future"

// NavigationPushInfo is a single-use push request.
type NavigationPushInfo struct {
	Page      Page
	ViewModel ViewModel
	Params    Params
	Mode      NavigationMode
	// NewNavigationStack wraps a modal page in its own stack container.
	NewNavigationStack bool
	Done               *future.Future[bool]
}

// NewPushInfo builds a push request with a pending completion future.
func NewPushInfo(page Page, vm ViewModel, mode NavigationMode, params Params, newStack bool) *NavigationPushInfo {
	return &NavigationPushInfo{
		Page:               page,
		ViewModel:          vm,
		Params:             params,
		Mode:               mode,
		NewNavigationStack: newStack,
		Done:               future.New[bool](),
	}
}

// NavigationPopInfo is a single-use pop request.
type NavigationPopInfo struct {
	Mode NavigationMode
	Done *future.Future[bool]
}

// NewPopInfo builds a pop request with a pending completion future.
func NewPopInfo(mode NavigationMode) *NavigationPopInfo {
	return &NavigationPopInfo{Mode: mode, Done: future.New[bool]()}
}

// DialogAlertInfo asks the dialog renderer for a one-button alert.
type DialogAlertInfo struct {
	Title   string
	Message string
	Cancel  string
	Done    *future.Future[bool]
}

// DialogSheetInfo asks for an action sheet. Done receives the chosen item,
// Cancel or Destruction.
type DialogSheetInfo struct {
	Title       string
	Cancel      string
	Destruction string
	Items       []string
	Done        *future.Future[string]
}

// DialogQuestionInfo asks a yes/no question.
type DialogQuestionInfo struct {
	Title    string
	Question string
	Positive string
	Negative string
	Done     *future.Future[bool]
}

// DialogEntryInfo asks for a line of text.
type DialogEntryInfo struct {
	Title       string
	Message     string
	Cancel      string
	OK          string
	Placeholder string
	Done        *future.Future[EntryResult]
}

// DialogToastInfo shows a transient notice. It has no completion.
type DialogToastInfo struct {
	Text     string
	LongTime bool
	Center   bool
}
