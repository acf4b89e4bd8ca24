// Package notify delivers sync events to observers.
package notify

import (
	"context"
	"sync"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
)

const subscriberBuffer = 16

var _ ports.Notifier = (*Hub)(nil)

// Hub fans events out to subscribers. A subscriber whose buffer is full
// misses the event; Notify never blocks.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan domain.Event]struct{}
	closed bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan domain.Event]struct{})}
}

// Subscribe registers a subscriber. The returned cancel func unregisters it
// and closes the channel.
func (h *Hub) Subscribe() (<-chan domain.Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan domain.Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[ch]; ok {
				delete(h.subs, ch)
				close(ch)
			}
		})
	}
}

// Notify delivers event to every subscriber with room in its buffer.
func (h *Hub) Notify(_ context.Context, event domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close closes every subscriber channel. Later subscriptions are closed immediately.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for ch := range h.subs {
		close(ch)
	}
	clear(h.subs)
}
