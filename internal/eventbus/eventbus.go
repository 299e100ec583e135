// ABOUTME: Typed event bus with ordered subscriber delivery for decoded key events.
// ABOUTME: Subscribe returns an unsubscribe func; Publish calls handlers in subscription order.

package eventbus

import "sync"

// Handler is a callback function for events.
type Handler[T any] func(T)

// subscriber pairs a handler with its registration id.
type subscriber[T any] struct {
	id int
	fn Handler[T]
}

// Bus delivers events to registered handlers in subscription order.
// Delivery order matters here: downstream consumers rely on seeing key
// events exactly as emitted, so handlers are kept in a slice rather than
// a map.
type Bus[T any] struct {
	mu       sync.RWMutex
	handlers []subscriber[T]
	nextID   int
}

// New creates a new event bus.
func New[T any]() *Bus[T] {
	return &Bus[T]{}
}

// Subscribe registers a handler and returns an unsubscribe function.
// Unsubscribing is idempotent.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers = append(b.handlers, subscriber[T]{id: id, fn: handler})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.handlers {
			if s.id == id {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Publish sends an event to all registered handlers, synchronously, in
// subscription order.
func (b *Bus[T]) Publish(event T) {
	b.mu.RLock()
	// Snapshot to avoid holding the lock during callbacks.
	snapshot := make([]subscriber[T], len(b.handlers))
	copy(snapshot, b.handlers)
	b.mu.RUnlock()

	for _, s := range snapshot {
		s.fn(event)
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
