// Package eventbus is a process-wide publish/subscribe channel used to
// keep independently-mounted views consistent without a push transport.
package eventbus

import (
	"context"
	"sync"
	"time"
)

// Event types shared between the list view and the form.
const (
	EventTodoChanged = "todo.changed"
)

// Event carries a type tag, an optional payload, and the publish time.
type Event struct {
	Type      string
	Data      any
	Timestamp time.Time
}

// Handler receives published events. Handlers must not block.
type Handler func(ctx context.Context, event Event)

// Bus is an in-memory event bus. Publishing is fire-and-forget: handler
// order is the subscription order and failures stay inside the handler.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func New() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe adds a handler for an event type.
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish delivers the event to every handler of its type, synchronously
// and in subscription order.
func (b *Bus) Publish(ctx context.Context, eventType string, data any) {
	b.mu.RLock()
	handlers := b.handlers[eventType]
	b.mu.RUnlock()

	event := Event{Type: eventType, Data: data, Timestamp: time.Now()}
	for _, handler := range handlers {
		handler(ctx, event)
	}
}

// SubscriberCount reports how many handlers an event type has.
func (b *Bus) SubscriberCount(eventType string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
