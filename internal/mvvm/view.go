package mvvm

import "github.com/tinytelemetry/vmfirst/internal/model"

// BaseView implements model.Page by forwarding lifecycle events to the bound
// view-model. Embed it by pointer and add rendering.
type BaseView struct {
	title  string
	vm     model.ViewModel
	onBack func() bool
}

var _ model.Page = (*BaseView)(nil)

// NewBaseView creates a view with the given title.
func NewBaseView(title string) *BaseView {
	return &BaseView{title: title}
}

func (v *BaseView) Title() string { return v.title }

// SetTitle changes the title shown by the host.
func (v *BaseView) SetTitle(title string) { v.title = title }

func (v *BaseView) Bind(vm model.ViewModel) { v.vm = vm }

func (v *BaseView) BindingContext() model.ViewModel { return v.vm }

// SendAppearing forwards to the view-model's OnPageAppearing.
func (v *BaseView) SendAppearing() {
	if v.vm != nil {
		v.vm.OnPageAppearing()
	}
}

// SendDisappearing forwards to the view-model's OnPageDisappearing.
func (v *BaseView) SendDisappearing() {
	if v.vm != nil {
		v.vm.OnPageDisappearing()
	}
}

// SetBackHandler installs fn as the back-button handler. fn returns true
// when it handled the press.
func (v *BaseView) SetBackHandler(fn func() bool) { v.onBack = fn }

// SendBackButtonPressed runs the back handler. Without one it returns false
// and the host applies its default.
func (v *BaseView) SendBackButtonPressed() bool {
	if v.onBack != nil {
		return v.onBack()
	}
	return false
}
