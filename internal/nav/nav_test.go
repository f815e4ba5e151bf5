package nav

import (
	"github.com/tinytelemetry/vmfirst/internal/model"
)

type testPage struct {
	title       string
	vm          model.ViewModel
	appeared    int
	disappeared int
	back        bool
}

func newTestPage(title string) *testPage { return &testPage{title: title} }

func (p *testPage) Title() string                   { return p.title }
func (p *testPage) Bind(vm model.ViewModel)         { p.vm = vm }
func (p *testPage) BindingContext() model.ViewModel { return p.vm }
func (p *testPage) SendAppearing()                  { p.appeared++ }
func (p *testPage) SendDisappearing()               { p.disappeared++ }
func (p *testPage) SendBackButtonPressed() bool     { return p.back }

type testViewModel struct {
	params model.Params
	inits  int
}

func (vm *testViewModel) Init(params model.Params) {
	vm.inits++
	vm.params = params
}
func (vm *testViewModel) OnPageAppearing()    {}
func (vm *testViewModel) OnPageDisappearing() {}

// DetailPage and DetailViewModel exercise suffix stripping.
type DetailPage struct{ testPage }
type DetailViewModel struct{ testViewModel }
type OtherViewModel struct{ testViewModel }
