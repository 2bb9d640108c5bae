// Package events carries redraw broadcasts from modules to the renderer.
package events

import "sync"

// Event names.
const (
	// Redraw asks the renderer to re-pull module output.
	Redraw = "render.redraw"
)

// Event is a broadcast from a module. Source names the module that
// requested it; the renderer pulls current state itself, so events carry
// no payload.
type Event struct {
	Name   string
	Source string
}

// Hub fans broadcasts out to subscribers. Publishing never blocks: a
// subscriber that cannot keep up drops events, which is fine because a
// redraw request carries no state of its own.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub { return &Hub{subs: make(map[chan Event]struct{})} }

func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
	h.mu.Unlock()
}

func (h *Hub) Publish(name, source string) {
	if h == nil {
		return
	}
	msg := Event{Name: name, Source: source}
	h.mu.RLock()
	for ch := range h.subs {
		// Non-blocking send; drop if subscriber is slow
		select {
		case ch <- msg:
		default:
		}
	}
	h.mu.RUnlock()
}
