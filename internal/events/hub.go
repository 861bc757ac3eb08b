// Package events implements the live-update hub that fans named events out
// to every currently-subscribed listener. Subscriber lifecycle is owned by
// the transport handlers; the ingest path only sees Broadcast.
package events

import (
	"sync"
)

// subscriberBuffer bounds how far a slow listener may fall behind before
// events are dropped for it.
const subscriberBuffer = 16

// Event is one named live-update notification.
type Event struct {
	Name string
	Data interface{}
}

// Hub tracks active subscribers and broadcasts events to all of them.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[chan Event]struct{})}
}

// Subscribe registers a new listener and returns its event channel.
func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[ch]; !ok {
		return
	}

	delete(h.subscribers, ch)
	close(ch)
}

// Broadcast delivers an event to every current subscriber. Sends never
// block: a listener with a full buffer misses the event.
func (h *Hub) Broadcast(name string, data interface{}) {
	ev := Event{Name: name, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribers reports how many listeners are currently registered.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}
