// Package uithread marshals work onto a single UI-affinity goroutine.
//
// Every stack mutation runs through a Dispatcher. Post never blocks, so a
// callback already running on the UI goroutine may post more work without
// deadlocking; posted work runs in FIFO order.
package uithread

import (
	"log"
	"sync"
)

// Dispatcher schedules fn on the UI goroutine.
type Dispatcher interface {
	Post(fn func())
}

// Queue buffers posted work until the owning event loop drains it. wake is
// called whenever the queue goes from empty to non-empty.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	wake    func()
}

// NewQueue creates a queue. wake may be nil when the owner polls Drain.
func NewQueue(wake func()) *Queue {
	return &Queue{wake: wake}
}

// SetWake replaces the wake callback.
func (q *Queue) SetWake(wake func()) {
	q.mu.Lock()
	q.wake = wake
	q.mu.Unlock()
}

// Post implements Dispatcher.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	first := len(q.pending) == 1
	wake := q.wake
	q.mu.Unlock()

	if first && wake != nil {
		wake()
	}
}

// Len reports how many callbacks are waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs queued callbacks on the calling goroutine until the queue is
// empty, including callbacks posted while draining. A panicking callback is
// logged and does not stop the others. It returns the number of callbacks
// run.
func (q *Queue) Drain() int {
	ran := 0
	for {
		q.mu.Lock()
		batch := q.pending
		q.pending = nil
		q.mu.Unlock()

		if len(batch) == 0 {
			return ran
		}
		for _, fn := range batch {
			runSafely(fn)
			ran++
		}
	}
}

func runSafely(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("uithread: recovered panic in posted callback: %v", r)
		}
	}()
	fn()
}

// Func adapts a function to the Dispatcher interface.
type Func func(fn func())

// Post implements Dispatcher.
func (f Func) Post(fn func()) { f(fn) }

// Inline runs posted work immediately on the caller's goroutine. It suits
// tests and hosts that are already single threaded.
var Inline Dispatcher = Func(func(fn func()) { fn() })
