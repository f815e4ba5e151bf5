package uithread

import (
	"context"
	"sync"
)

// Loop is a Dispatcher backed by its own goroutine. It serves headless hosts
// that have no event loop of their own.
type Loop struct {
	queue  *Queue
	signal chan struct{}

	mu      sync.Mutex
	running bool
}

// NewLoop creates a loop. Call Run to start processing.
func NewLoop() *Loop {
	l := &Loop{signal: make(chan struct{}, 1)}
	l.queue = NewQueue(l.notify)
	return l
}

func (l *Loop) notify() {
	select {
	case l.signal <- struct{}{}:
	default:
	}
}

// Post implements Dispatcher.
func (l *Loop) Post(fn func()) {
	l.queue.Post(fn)
}

// Run drains posted work until ctx is done. Work still queued when ctx ends
// is left unexecuted.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	l.running = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	// Work posted before Run started must not wait for another Post.
	l.queue.Drain()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.signal:
			l.queue.Drain()
		}
	}
}

// Running reports whether Run is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Start runs the loop on a new goroutine and returns a function that stops
// it and waits for it to exit.
func (l *Loop) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = l.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}
