// Package bus is the in-process message bus that decouples view-models from
// the navigation service and the dialog renderer.
//
// Unlike a general broker, delivery is synchronous: Send runs every matching
// callback on the caller's goroutine, in subscription order, and does not
// recover panics raised by callbacks.
package bus

import (
	"log"
	"sync"
)

type subscription struct {
	subscriber any
	deliver    func(payload any)
}

// Bus dispatches payloads to subscribers by topic.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]subscription
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[string][]subscription)}
}

// Subscribe registers fn for topic on behalf of subscriber. subscriber is
// only used as the key for Unsubscribe and must be comparable (a pointer in
// practice). Subscribing twice registers two callbacks.
//
// A non-nil payload reaches fn only when it is a T. A nil payload reaches fn
// as the zero value of T.
func Subscribe[T any](b *Bus, subscriber any, topic string, fn func(T)) {
	if fn == nil {
		return
	}
	deliver := func(payload any) {
		if payload == nil {
			var zero T
			fn(zero)
			return
		}
		v, ok := payload.(T)
		if !ok {
			log.Printf("bus: topic %q: dropping %T for subscriber %T", topic, payload, subscriber)
			return
		}
		fn(v)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], subscription{subscriber: subscriber, deliver: deliver})
}

// Unsubscribe removes every callback subscriber registered for topic.
func (b *Bus) Unsubscribe(subscriber any, topic string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[topic]
	kept := subs[:0:0]
	for _, s := range subs {
		if s.subscriber != subscriber {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(b.subs, topic)
		return
	}
	b.subs[topic] = kept
}

// Send delivers payload to the subscribers of topic. Sending to a topic with
// no subscribers does nothing.
func (b *Bus) Send(topic string, payload any) {
	b.mu.RLock()
	subs := b.subs[topic]
	b.mu.RUnlock()

	// subs is never mutated in place, so callbacks may (un)subscribe freely.
	for _, s := range subs {
		s.deliver(payload)
	}
}

// Signal sends topic without a payload.
func (b *Bus) Signal(topic string) {
	b.Send(topic, nil)
}

// Subscribers reports how many callbacks are registered for topic.
func (b *Bus) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
