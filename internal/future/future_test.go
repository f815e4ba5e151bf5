package future

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestResolveOnce(t *testing.T) {
	t.Parallel()

	f := New[bool]()
	if f.IsResolved() {
		t.Fatal("new future should be pending")
	}
	if _, ok := f.Value(); ok {
		t.Fatal("Value should report pending")
	}
	if !f.Resolve(true) {
		t.Fatal("first Resolve should win")
	}
	if f.Resolve(false) {
		t.Fatal("second Resolve should be ignored")
	}
	v, ok := f.Value()
	if !ok || !v {
		t.Fatalf("Value = %v, %v; want true, true", v, ok)
	}
}

func TestResolveConcurrent(t *testing.T) {
	t.Parallel()

	f := New[int]()
	var wg sync.WaitGroup
	wins := make(chan int, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if f.Resolve(n) {
				wins <- n
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	count := 0
	var winner int
	for n := range wins {
		count++
		winner = n
	}
	if count != 1 {
		t.Fatalf("expected exactly one winner, got %d", count)
	}
	if got, _ := f.Value(); got != winner {
		t.Fatalf("Value = %d, want winner %d", got, winner)
	}
}

func TestWaitBlocksUntilResolved(t *testing.T) {
	t.Parallel()

	f := New[string]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Resolve("done")
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := f.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if got != "done" {
		t.Fatalf("Wait = %q, want done", got)
	}
}

func TestWaitHonoursContext(t *testing.T) {
	t.Parallel()

	f := New[bool]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := f.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Wait error = %v, want deadline exceeded", err)
	}
	if f.IsResolved() {
		t.Fatal("timing out must not resolve the future")
	}
}

func TestResolved(t *testing.T) {
	t.Parallel()

	f := Resolved(false)
	select {
	case <-f.Done():
	default:
		t.Fatal("Resolved future should be done")
	}
	if v, ok := f.Value(); !ok || v {
		t.Fatalf("Value = %v, %v; want false, true", v, ok)
	}
}
