package mvvm

import (
	"testing"

	"github.com/tinytelemetry/vmfirst/internal/bus"
)

type countingViewModel struct {
	*BaseViewModel
	appearing    int
	disappearing int
}

func (vm *countingViewModel) OnPageAppearing()    { vm.appearing++ }
func (vm *countingViewModel) OnPageDisappearing() { vm.disappearing++ }

func TestBaseViewForwardsLifecycle(t *testing.T) {
	t.Parallel()

	v := NewBaseView("Catalog")
	v.SendAppearing()
	v.SendDisappearing()

	vm := &countingViewModel{BaseViewModel: NewBaseViewModel(Deps{Bus: bus.New()})}
	v.Bind(vm)
	v.SendAppearing()
	v.SendDisappearing()
	v.SendAppearing()
	if vm.appearing != 2 || vm.disappearing != 1 {
		t.Fatalf("appearing = %d, disappearing = %d", vm.appearing, vm.disappearing)
	}
	if v.BindingContext() != vm {
		t.Fatal("binding context not kept")
	}
}

func TestBaseViewBackButton(t *testing.T) {
	t.Parallel()

	v := NewBaseView("x")
	if v.SendBackButtonPressed() {
		t.Fatal("default back handling belongs to the host")
	}
	v.SetBackHandler(func() bool { return true })
	if !v.SendBackButtonPressed() {
		t.Fatal("handler should win")
	}
	v.SetTitle("y")
	if v.Title() != "y" {
		t.Fatalf("Title = %q", v.Title())
	}
}
