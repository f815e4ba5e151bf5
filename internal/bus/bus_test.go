package bus

import (
	"reflect"
	"testing"
)

type owner struct{ name string }

func TestSendWithoutSubscribersIsNoOp(t *testing.T) {
	t.Parallel()

	b := New()
	b.Send("nobody", 42)
	b.Signal("nobody")
}

func TestSendRunsSubscribersInOrder(t *testing.T) {
	t.Parallel()

	b := New()
	var got []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		Subscribe(b, &owner{name}, "topic", func(v int) {
			got = append(got, name)
		})
	}
	b.Send("topic", 1)

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSubscribeTwiceDeliversTwice(t *testing.T) {
	t.Parallel()

	b := New()
	sub := &owner{"dup"}
	calls := 0
	Subscribe(b, sub, "topic", func(string) { calls++ })
	Subscribe(b, sub, "topic", func(string) { calls++ })
	b.Send("topic", "x")
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestPayloadTypeFiltering(t *testing.T) {
	t.Parallel()

	b := New()
	var ints []int
	var strs []string
	Subscribe(b, &owner{"ints"}, "topic", func(v int) { ints = append(ints, v) })
	Subscribe(b, &owner{"strs"}, "topic", func(v string) { strs = append(strs, v) })

	b.Send("topic", 7)
	b.Send("topic", "seven")

	if !reflect.DeepEqual(ints, []int{7}) {
		t.Fatalf("ints = %v", ints)
	}
	if !reflect.DeepEqual(strs, []string{"seven"}) {
		t.Fatalf("strs = %v", strs)
	}
}

func TestNilPayloadDeliversZeroValue(t *testing.T) {
	t.Parallel()

	b := New()
	var got *owner
	called := false
	Subscribe(b, &owner{"p"}, "topic", func(v *owner) {
		called = true
		got = v
	})
	b.Signal("topic")
	if !called {
		t.Fatal("expected subscriber to be called for nil payload")
	}
	if got != nil {
		t.Fatalf("expected nil pointer, got %#v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	t.Parallel()

	b := New()
	a, c := &owner{"a"}, &owner{"c"}
	var got []string
	Subscribe(b, a, "topic", func(string) { got = append(got, "a") })
	Subscribe(b, c, "topic", func(string) { got = append(got, "c") })
	Subscribe(b, a, "other", func(string) { got = append(got, "a-other") })

	b.Unsubscribe(a, "topic")
	if n := b.Subscribers("topic"); n != 1 {
		t.Fatalf("Subscribers = %d, want 1", n)
	}
	b.Send("topic", "")
	b.Send("other", "")

	want := []string{"c", "a-other"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCallbackMaySubscribeDuringSend(t *testing.T) {
	t.Parallel()

	b := New()
	calls := 0
	Subscribe(b, &owner{"outer"}, "topic", func(int) {
		calls++
		Subscribe(b, &owner{"inner"}, "topic", func(int) { calls++ })
	})

	b.Send("topic", 1)
	if calls != 1 {
		t.Fatalf("late subscriber must not see the in-flight message, calls = %d", calls)
	}
	b.Send("topic", 2)
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestCallbackPanicPropagates(t *testing.T) {
	t.Parallel()

	b := New()
	Subscribe(b, &owner{"boom"}, "topic", func(int) { panic("boom") })

	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recover = %v, want boom", r)
		}
	}()
	b.Send("topic", 1)
	t.Fatal("Send should have panicked")
}
