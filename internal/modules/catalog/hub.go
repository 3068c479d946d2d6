package catalog

import "sync"

// Hub fans catalog snapshots out to subscribers. Each subscriber gets a
// buffered channel; a subscriber that falls behind has its pending snapshot
// replaced by the newer one rather than blocking the publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan []Product
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan []Product)}
}

// Subscribe registers a listener. The returned cancel func releases the
// subscription and closes the channel; callers must invoke it on teardown.
func (h *Hub) Subscribe() (<-chan []Product, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan []Product, 1)
	h.subs[id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// Publish delivers a fresh snapshot to every subscriber. Stale undelivered
// snapshots are dropped in favor of the new one.
func (h *Hub) Publish(snapshot []Product) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

// Len reports the number of active subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
